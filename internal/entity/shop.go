package entity

import "github.com/questx-lab/clubbot/pkg/enum"

type Currency string

var (
	CurrencyBalance = enum.New(Currency("balance"))
	CurrencyGem     = enum.New(Currency("gem"))
)

type ShopEntry struct {
	ItemID   string   `json:"item_id"`
	Currency Currency `json:"currency"`
	Price    int64    `json:"price"`
}

type ShopPage struct {
	Title   string      `json:"title"`
	Entries []ShopEntry `json:"entries"`
}

type Shop struct {
	Base

	Name        string
	Description string
	Pages       Array[ShopPage]
}
