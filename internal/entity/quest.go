package entity

import (
	"time"

	"github.com/questx-lab/clubbot/pkg/enum"
)

type QuestCategory string

var (
	QuestDaily  = enum.New(QuestCategory("daily"))
	QuestWeekly = enum.New(QuestCategory("weekly"))
	QuestClub   = enum.New(QuestCategory("club"))
)

type QuestType string

var (
	QuestMessage = enum.New(QuestType("message"))
	QuestVoice   = enum.New(QuestType("voice"))
	QuestDonate  = enum.New(QuestType("donate"))
	QuestGift    = enum.New(QuestType("gift"))
	QuestBuy     = enum.New(QuestType("buy"))
	QuestUseItem = enum.New(QuestType("use_item"))
)

type QuestReward struct {
	Balance int64 `json:"balance" mapstructure:"balance" structs:"balance"`
	Gems    int64 `json:"gems" mapstructure:"gems" structs:"gems"`
	Point   int64 `json:"point" mapstructure:"point" structs:"point"`
	Fund    int64 `json:"fund" mapstructure:"fund" structs:"fund"`
}

// Quest is a template of the quest pool. Generating a quest picks a target in
// [MinTarget, MaxTarget] and copies the reward into a QuestProgress.
type Quest struct {
	Base

	Category  QuestCategory `gorm:"index"`
	Type      QuestType
	Label     string // formatted with the target, e.g. "Send %d messages"
	MinTarget int64
	MaxTarget int64
	Reward    Map
	Weight    int
}

type QuestProgress struct {
	ID        string      `json:"id"`
	QuestID   string      `json:"quest_id"`
	Type      QuestType   `json:"type"`
	Label     string      `json:"label"`
	Target    int64       `json:"target"`
	Progress  int64       `json:"progress"`
	Reward    QuestReward `json:"reward"`
	Finished  bool        `json:"finished"`
	CreatedAt time.Time   `json:"created_at"`
}

type UserQuest struct {
	QuestProgress
	Category QuestCategory `json:"category"`
}

type ClubQuestData struct {
	QuestProgress
}
