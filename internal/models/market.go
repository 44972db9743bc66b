package models

import "time"

// Quote is a point-in-time market snapshot for a ticker. Quotes are never
// persisted; the quote service holds them in memory with a fetch timestamp.
type Quote struct {
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	Percent   float64 `json:"percent"`
	PrevClose float64 `json:"prevClose"`
}

// SymbolMatch is a raw symbol-search result from the market-data provider.
type SymbolMatch struct {
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Suggestion is a ranked ticker candidate for a partial query. Score orders
// the output and is not part of the response body.
type Suggestion struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Score  int    `json:"-"`
}

// NewsItem is a general-news headline from the market-data provider.
type NewsItem struct {
	Headline string    `json:"headline"`
	Source   string    `json:"source"`
	URL      string    `json:"url"`
	Datetime time.Time `json:"datetime"`
}
