package entity

import "github.com/questx-lab/clubbot/pkg/enum"

type ItemType string

var (
	ItemBalanceBox   = enum.New(ItemType("balance_box"))
	ItemGemBox       = enum.New(ItemType("gem_box"))
	ItemRerollTicket = enum.New(ItemType("reroll_ticket"))
	ItemGift         = enum.New(ItemType("gift"))
	ItemRing         = enum.New(ItemType("ring"))
	ItemAppellation  = enum.New(ItemType("appellation"))
)

type Item struct {
	Base

	Name        string
	Emoji       string
	Description string
	Type        ItemType
	Effect      Map

	// GiftPoint is the number of relation points one unit gives when it is
	// offered as a gift.
	GiftPoint int64
}
