// Package dto defines data transfer objects for the Finnhub API responses.
package dto

// QuoteResponse represents the JSON response from the Finnhub quote endpoint.
type QuoteResponse struct {
	Current       float64 `json:"c"`  // Current price
	Change        float64 `json:"d"`  // Change since previous close
	ChangePercent float64 `json:"dp"` // Percentage change since previous close
	High          float64 `json:"h"`  // High of the day
	Low           float64 `json:"l"`  // Low of the day
	Open          float64 `json:"o"`  // Open of the day
	PrevClose     float64 `json:"pc"` // Previous close
	Timestamp     int64   `json:"t"`  // Unix seconds
}

// ProfileResponse represents the JSON response from the stock/profile2
// endpoint. Only the fields the engine consumes are mapped.
type ProfileResponse struct {
	Name     string `json:"name"`
	Ticker   string `json:"ticker"`
	Currency string `json:"currency"`
	Exchange string `json:"exchange"`
}

// CandleResponse represents the JSON response from the stock/candle
// endpoint: parallel arrays plus a status flag ("ok" or "no_data").
type CandleResponse struct {
	Status     string    `json:"s"`
	Timestamps []int64   `json:"t"`
	Opens      []float64 `json:"o"`
	Highs      []float64 `json:"h"`
	Lows       []float64 `json:"l"`
	Closes     []float64 `json:"c"`
	Volumes    []float64 `json:"v"`
}
