package models

import "errors"

// Domain error taxonomy. Services wrap these with context via fmt.Errorf
// and %w; handlers map them to HTTP status codes with errors.Is.
var (
	// ErrValidation marks malformed or missing caller input (4xx).
	ErrValidation = errors.New("validation error")

	// ErrStoreUnavailable marks a document-store failure (5xx).
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrQuoteUnavailable marks a quote lookup that returned no usable
	// current price or could not reach the provider (5xx).
	ErrQuoteUnavailable = errors.New("quote unavailable")

	// ErrSuggestionSource marks a symbol-search provider failure (5xx).
	ErrSuggestionSource = errors.New("suggestion source error")

	// ErrAdviceGeneration marks a language-model failure while composing
	// single-position advice (5xx).
	ErrAdviceGeneration = errors.New("advice generation error")

	// ErrRecommendation marks a language-model failure or unparseable
	// response while composing market recommendations (5xx).
	ErrRecommendation = errors.New("recommendation error")

	// ErrSummaryGeneration marks a language-model failure while composing
	// the portfolio summary (5xx).
	ErrSummaryGeneration = errors.New("summary generation error")
)
