package pubsub

import (
	"context"
	"encoding/json"
)

type Pack struct {
	Key []byte
	Msg []byte
}

type Publisher interface {
	Publish(context.Context, string, *Pack) error
}

// PublishJSON publishes event encoded as JSON, keyed by key so that every
// event of the same entity lands on the same partition.
func PublishJSON(ctx context.Context, p Publisher, topic, key string, event any) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.Publish(ctx, topic, &Pack{Key: []byte(key), Msg: b})
}

type noopPublisher struct{}

// NewNoopPublisher returns a Publisher dropping every message, used when no
// message queue is configured.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, string, *Pack) error {
	return nil
}
