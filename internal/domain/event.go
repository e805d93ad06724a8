package domain

import (
	"context"
	"time"

	"github.com/questx-lab/clubbot/internal/entity"
	"github.com/questx-lab/clubbot/pkg/pubsub"
	"github.com/questx-lab/clubbot/pkg/xcontext"
)

const (
	TopicQuestFinished = "quest_finished"
	TopicClubLog       = "club_log"
)

type QuestFinishedEvent struct {
	OwnerID    string             `json:"owner_id"`
	Category   string             `json:"category"`
	QuestID    string             `json:"quest_id"`
	Type       entity.QuestType   `json:"type"`
	Reward     entity.QuestReward `json:"reward"`
	FinishedAt time.Time          `json:"finished_at"`
}

type ClubLogEvent struct {
	ID     int64                 `json:"id"`
	ClubID string                `json:"club_id"`
	UserID string                `json:"user_id"`
	Type   entity.ClubActionType `json:"type"`
	Target string                `json:"target"`
	Amount int64                 `json:"amount"`
	Reason string                `json:"reason"`
	Time   time.Time             `json:"time"`
}

// publish never fails, events are sent after the change is stored and a lost
// event must not undo it.
func (f *Factory) publish(ctx context.Context, topic, key string, event any) {
	if err := pubsub.PublishJSON(ctx, f.publisher, topic, key, event); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot publish %s event of %s: %v", topic, key, err)
	}
}

func (f *Factory) publishQuestFinished(
	ctx context.Context, ownerID, category string, quest entity.QuestProgress,
) {
	f.publish(ctx, TopicQuestFinished, ownerID, QuestFinishedEvent{
		OwnerID:    ownerID,
		Category:   category,
		QuestID:    quest.QuestID,
		Type:       quest.Type,
		Reward:     quest.Reward,
		FinishedAt: f.now(),
	})
}

func (f *Factory) publishClubLogs(ctx context.Context, logs []entity.ClubLog) {
	for _, l := range logs {
		f.publish(ctx, TopicClubLog, l.ClubID, ClubLogEvent{
			ID:     l.ID,
			ClubID: l.ClubID,
			UserID: l.UserID,
			Type:   l.Type,
			Target: l.Target,
			Amount: l.Amount,
			Reason: l.Reason,
			Time:   l.CreatedAt,
		})
	}
}
