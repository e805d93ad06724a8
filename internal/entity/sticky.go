package entity

import "time"

type StickyButton struct {
	Label    string `json:"label"`
	URL      string `json:"url,omitempty"`
	CustomID string `json:"custom_id,omitempty"`
}

type Sticky struct {
	ChannelID string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Content     string
	Title       string
	Description string
	Color       int
	Buttons     Array[StickyButton]

	LastMessageID string
}
