package types

// EconomicData is the full indicator catalogue served to dashboards.
type EconomicData struct {
	Indicators  []Reading `json:"indicators"`
	Policy      string    `json:"policy"`
	LastUpdated string    `json:"last_updated"`
}
