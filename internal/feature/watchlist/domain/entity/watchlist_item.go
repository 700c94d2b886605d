// Package entity defines the domain models for the watchlist feature.
package entity

import "time"

// WatchlistItem is one tracked stock with the user-entered price targets the
// analysis views overlay on the chart.
type WatchlistItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Symbol          string    `gorm:"size:10;not null;uniqueIndex" json:"symbol"`
	Name            string    `gorm:"size:255" json:"name"`
	TargetBuyPrice  float64   `gorm:"not null;default:0" json:"target_buy_price"`
	TargetSellPrice float64   `gorm:"not null;default:0" json:"target_sell_price"`
	Notes           string    `gorm:"size:1000" json:"notes"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
