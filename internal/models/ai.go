package models

// AdviceRequest carries a single position's numbers for the advice composer.
type AdviceRequest struct {
	Ticker       string  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	BuyPrice     float64 `json:"buyPrice"`
	CurrentPrice float64 `json:"currentPrice"`
}

// Recommendation is one market-wide stock pick returned by the
// recommendation composer.
type Recommendation struct {
	Ticker string `json:"ticker"`
	Reason string `json:"reason"`
}
