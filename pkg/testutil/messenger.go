package testutil

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type MockMessenger struct {
	SendMessageFunc   func(ctx context.Context, channelID string, msg *discordgo.MessageSend) (string, error)
	DeleteMessageFunc func(ctx context.Context, channelID, messageID string) error
}

func (m *MockMessenger) SendMessage(
	ctx context.Context, channelID string, msg *discordgo.MessageSend,
) (string, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, channelID, msg)
	}

	return "", nil
}

func (m *MockMessenger) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	if m.DeleteMessageFunc != nil {
		return m.DeleteMessageFunc(ctx, channelID, messageID)
	}

	return nil
}
