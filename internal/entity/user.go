package entity

import "database/sql"

type InventoryItem struct {
	ItemID string   `json:"item_id"`
	Type   ItemType `json:"type"`
	Amount int64    `json:"amount"`
}

type User struct {
	Base

	Balance int64
	Gems    int64

	Inventory Array[InventoryItem]
	Quests    Array[UserQuest]
	Friends   Array[string]

	DailyRefreshedAt  sql.NullTime
	WeeklyRefreshedAt sql.NullTime
}
