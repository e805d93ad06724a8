package model

type ShopEntry struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
	Emoji  string `json:"emoji"`
	Price  string `json:"price"`
}

type Shop struct {
	ShopID      string      `json:"shop_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PageTitle   string      `json:"page_title"`
	Entries     []ShopEntry `json:"entries"`
	Balance     string      `json:"balance"`
	Gems        string      `json:"gems"`
	Pager       Pager       `json:"pager"`
}

type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Amount      string `json:"amount,omitempty"`
	Cost        string `json:"cost,omitempty"`
	ShopID      string `json:"shop_id,omitempty"`
	Usable      bool   `json:"usable"`
}
