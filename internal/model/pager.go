package model

// Pager describes the page controls of a list. Scope and Args are used to
// build the action ids of the previous and next buttons.
type Pager struct {
	Scope string   `json:"scope"`
	Args  []string `json:"args,omitempty"`
	Index int      `json:"index"`
	Total int      `json:"total"`
}
