package entity

import "github.com/questx-lab/clubbot/pkg/enum"

type RelationKind string

var (
	RelationMarriage   = enum.New(RelationKind("marriage"))
	RelationFriendship = enum.New(RelationKind("friendship"))
)

type GiftCount struct {
	ItemID string `json:"item_id"`
	Amount int64  `json:"amount"`
}

type Relation struct {
	Base

	Kind RelationKind
	M1   string `gorm:"index"`
	M2   string `gorm:"index"`

	// Points and gifts are tracked per giver, the relation level uses their sum.
	M1Points int64
	M2Points int64
	M1Gifts  Array[GiftCount]
	M2Gifts  Array[GiftCount]

	RingItemID string
}
