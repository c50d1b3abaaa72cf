package types

import "time"

// Snapshot is the raw source output of one run, archived before
// classification so a run can be replayed.
type Snapshot struct {
	RunID     string        `json:"run_id"`
	Country   string        `json:"country"`
	FetchedAt time.Time     `json:"fetched_at"`
	Vendor    []RawNewsItem `json:"vendor"`
	Feed      []RawNewsItem `json:"feed"`
}

// ScorecardEvent is published after every completed run.
type ScorecardEvent struct {
	RunID        string    `json:"run_id"`
	Country      string    `json:"country"`
	Score        float64   `json:"score"`
	Regime       Regime    `json:"regime"`
	ArticleCount int       `json:"article_count"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// RefreshRequest asks a worker to recompute one country.
type RefreshRequest struct {
	Country     string `json:"country"`
	RequestedBy string `json:"requested_by,omitempty"`
}
