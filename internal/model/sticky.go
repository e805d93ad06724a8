package model

type Button struct {
	Label    string `json:"label"`
	URL      string `json:"url,omitempty"`
	CustomID string `json:"custom_id,omitempty"`
}

type Sticky struct {
	ChannelID   string   `json:"channel_id"`
	Content     string   `json:"content"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Color       int      `json:"color"`
	Buttons     []Button `json:"buttons"`
}
