package model

type InventoryEntry struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
	Emoji  string `json:"emoji"`
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

type Inventory struct {
	UserID  string           `json:"user_id"`
	Entries []InventoryEntry `json:"entries"`
	Pager   Pager            `json:"pager"`
}

type Profile struct {
	UserID       string   `json:"user_id"`
	Balance      string   `json:"balance"`
	Gems         string   `json:"gems"`
	ClubName     string   `json:"club_name,omitempty"`
	Appellations []string `json:"appellations,omitempty"`
	Relations    int      `json:"relations"`
	Friends      int      `json:"friends"`
}

type Quest struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Progress int64  `json:"progress"`
	Target   int64  `json:"target"`
	Finished bool   `json:"finished"`
	Reward   string `json:"reward"`
}

type QuestList struct {
	OwnerID   string  `json:"owner_id"`
	Scope     string  `json:"scope"`
	Category  string  `json:"category"`
	Quests    []Quest `json:"quests"`
	RerollFee string  `json:"reroll_fee,omitempty"`
}

type RelationSummary struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Partner string `json:"partner"`
	Level   string `json:"level"`
	Points  string `json:"points"`
}

type RelationList struct {
	UserID    string            `json:"user_id"`
	Relations []RelationSummary `json:"relations"`
}

type Gift struct {
	Name   string `json:"name"`
	Emoji  string `json:"emoji"`
	Amount string `json:"amount"`
}

type GiftList struct {
	UserID string `json:"user_id"`
	Gifts  []Gift `json:"gifts"`
}
