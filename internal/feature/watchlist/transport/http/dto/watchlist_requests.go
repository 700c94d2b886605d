// Package dto defines data transfer objects for the watchlist feature's
// HTTP transport layer.
package dto

// AddItemReq represents the request body for POST /watchlist.
// It uses Gin's binding tags for validation.
type AddItemReq struct {
	Symbol          string  `json:"symbol" binding:"required,max=10"`
	Name            string  `json:"name" binding:"max=255"`
	TargetBuyPrice  float64 `json:"target_buy_price" binding:"gte=0"`
	TargetSellPrice float64 `json:"target_sell_price" binding:"gte=0"`
	Notes           string  `json:"notes" binding:"max=1000"`
}

// UpdateItemReq represents the request body for PUT /watchlist/:id.
type UpdateItemReq struct {
	TargetBuyPrice  float64 `json:"target_buy_price" binding:"gte=0"`
	TargetSellPrice float64 `json:"target_sell_price" binding:"gte=0"`
	Notes           string  `json:"notes" binding:"max=1000"`
}
