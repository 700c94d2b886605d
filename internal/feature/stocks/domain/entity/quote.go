// Package entity defines the domain models for the stocks feature.
package entity

import "time"

// Quote represents the latest traded price for a stock symbol.
type Quote struct {
	Symbol        string    `json:"symbol"`         // Ticker symbol (e.g., "AAPL")
	Price         float64   `json:"price"`          // Last traded price, always > 0
	Change        float64   `json:"change"`         // Absolute change since previous close
	ChangePercent float64   `json:"change_percent"` // Percentage change since previous close
	Timestamp     time.Time `json:"timestamp"`      // When the quote was produced
}
