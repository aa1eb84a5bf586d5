package entities

import "time"

// RankingEntry is one pack's result inside a published ranking
type RankingEntry struct {
	ExpansionID   string  `json:"expansion_id"`
	ExpansionName string  `json:"expansion_name"`
	Pack          string  `json:"pack,omitempty"`
	Probability   float64 `json:"probability"`
	Owned         int     `json:"owned"`
	Total         int     `json:"total"`
}

// Key identifies the entry within its snapshot
func (e RankingEntry) Key() string {
	if e.Pack == "" {
		return e.ExpansionID
	}
	return e.ExpansionID + "/" + e.Pack
}

// RankingSnapshot is a ranked list of packs computed at one point in time.
// Entries are ordered from most to least likely to yield a new card.
type RankingSnapshot struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Entries   []RankingEntry `json:"entries"`
}
