package entity

import "time"

// Candle represents OHLCV (Open, High, Low, Close, Volume) candlestick data
// for a stock symbol on a single trading day. A price series is a slice of
// candles ordered ascending by date with no duplicate dates.
type Candle struct {
	Date   time.Time `json:"date"`   // Trading day (time component is midnight UTC)
	Open   float64   `json:"open"`   // Opening price
	High   float64   `json:"high"`   // Highest price of the day
	Low    float64   `json:"low"`    // Lowest price of the day
	Close  float64   `json:"close"`  // Closing price
	Volume int64     `json:"volume"` // Trading volume
}

// Closes extracts the closing prices of a series in chronological order.
func Closes(candles []Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}
