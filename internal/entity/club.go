package entity

import (
	"database/sql"
	"time"

	"github.com/questx-lab/clubbot/pkg/enum"
)

type ClubRole string

var (
	ClubOwner     = enum.New(ClubRole("owner"))
	ClubModerator = enum.New(ClubRole("moderator"))
	ClubMember    = enum.New(ClubRole("member"))
)

type ClubMemberData struct {
	UserID   string    `json:"user_id"`
	Role     ClubRole  `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type Donation struct {
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
}

type ClubRoom struct {
	ChannelID string
	Protect   bool
}

type Club struct {
	Base

	Name      string
	Icon      string
	Thumbnail string
	OwnerID   string

	Level int
	Point int64
	Fund  int64

	Members   Array[ClubMemberData]
	Donations Array[Donation]
	Quests    Array[ClubQuestData]

	Premium          bool
	PremiumExpiresAt sql.NullTime

	Room ClubRoom `gorm:"embedded;embeddedPrefix:room_"`

	DailyRefreshedAt sql.NullTime
}

// ClubMembership mirrors Club.Members, it indexes the club of a user.
type ClubMembership struct {
	UserID string `gorm:"primaryKey"`
	ClubID string `gorm:"index"`
}

type ClubActionType string

var (
	ClubActionMemberAdd    = enum.New(ClubActionType("member_add"))
	ClubActionMemberRemove = enum.New(ClubActionType("member_remove"))
	ClubActionFundAdd      = enum.New(ClubActionType("fund_add"))
	ClubActionFundTake     = enum.New(ClubActionType("fund_take"))
	ClubActionPointAdd     = enum.New(ClubActionType("point_add"))
	ClubActionLevelUp      = enum.New(ClubActionType("level_up"))
	ClubActionQuestAdd     = enum.New(ClubActionType("quest_add"))
	ClubActionQuestFinish  = enum.New(ClubActionType("quest_finish"))
	ClubActionPremiumOn    = enum.New(ClubActionType("premium_on"))
	ClubActionPremiumOff   = enum.New(ClubActionType("premium_off"))
	ClubActionRoomProtect  = enum.New(ClubActionType("room_protect"))
)

type ClubLog struct {
	SnowFlakeBase

	ClubID string `gorm:"index"`
	UserID string
	Type   ClubActionType
	Target string
	Amount int64
	Reason string
}
