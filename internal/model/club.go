package model

type Club struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Thumbnail string `json:"thumbnail"`
	OwnerID   string `json:"owner_id"`
	Level     string `json:"level"`
	Point     string `json:"point"`
	NextLevel string `json:"next_level"`
	Fund      string `json:"fund"`
	Members   int    `json:"members"`
	Premium   bool   `json:"premium"`
}

type ClubPremium struct {
	ClubID       string `json:"club_id"`
	Name         string `json:"name"`
	Premium      bool   `json:"premium"`
	ExpiresAt    string `json:"expires_at,omitempty"`
	DonatorBonus int    `json:"donator_bonus"`
}

type ClubMember struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type ClubMemberList struct {
	ClubID  string       `json:"club_id"`
	Name    string       `json:"name"`
	Members []ClubMember `json:"members"`
	Offset  int          `json:"offset"`
	Pager   Pager        `json:"pager"`
}

type ClubRoom struct {
	ClubID    string `json:"club_id"`
	Name      string `json:"name"`
	ChannelID string `json:"channel_id"`
	Protect   bool   `json:"protect"`
	Premium   bool   `json:"premium"`
}

type Donator struct {
	UserID string `json:"user_id"`
	Amount string `json:"amount"`
}

type ClubFund struct {
	ClubID   string    `json:"club_id"`
	Name     string    `json:"name"`
	Fund     string    `json:"fund"`
	Donators []Donator `json:"donators"`
}

type ClubLogList struct {
	ClubID string   `json:"club_id"`
	Name   string   `json:"name"`
	Lines  []string `json:"lines"`
	Pager  Pager    `json:"pager"`
}
