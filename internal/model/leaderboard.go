package model

type LeaderboardRow struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	Value string `json:"value"`
}

type Leaderboard struct {
	Title string           `json:"title"`
	Rows  []LeaderboardRow `json:"rows"`

	// ViewerRank is 0 when the viewer is unknown or not ranked.
	ViewerRank int   `json:"viewer_rank"`
	Pager      Pager `json:"pager"`
}
