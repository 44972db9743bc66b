// Package models defines data structures for folio
package models

import (
	"strings"
	"time"
)

// Position represents a user-recorded stock holding.
// Positions are immutable once created — there is no update operation,
// only create and delete.
type Position struct {
	ID        string    `json:"id"`
	Ticker    string    `json:"ticker"`
	Quantity  float64   `json:"quantity"`
	BuyPrice  float64   `json:"buyPrice"`
	DateAdded time.Time `json:"dateAdded"`
}

// NormalizeTicker uppercases and trims a ticker symbol for storage and
// cache keys.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// EnrichedPosition is a Position joined with its current market price.
// It is assembled by the presentation layer and submitted back for
// portfolio-level summaries; it is never persisted.
type EnrichedPosition struct {
	Ticker       string  `json:"ticker"`
	Quantity     float64 `json:"quantity"`
	BuyPrice     float64 `json:"buyPrice"`
	CurrentPrice float64 `json:"currentPrice"`
}

// GainPct returns the percentage change from buy price to current price.
func (p EnrichedPosition) GainPct() float64 {
	if p.BuyPrice == 0 {
		return 0
	}
	return (p.CurrentPrice - p.BuyPrice) / p.BuyPrice * 100
}

// GainValue returns the absolute gain or loss across the whole position.
func (p EnrichedPosition) GainValue() float64 {
	return (p.CurrentPrice - p.BuyPrice) * p.Quantity
}
