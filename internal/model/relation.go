package model

type Relation struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	M1         string `json:"m1"`
	M2         string `json:"m2"`
	Level      int    `json:"level"`
	LevelName  string `json:"level_name"`
	Points     string `json:"points"`
	NextPoints string `json:"next_points,omitempty"`
	M1Gifts    []Gift `json:"m1_gifts"`
	M2Gifts    []Gift `json:"m2_gifts"`
	Ring       string `json:"ring,omitempty"`
}

type Ring struct {
	RelationID  string `json:"relation_id"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}
