package entity

// IndicatorSet holds all technical indicators computed from a price series.
// Every field is derived; the set is rebuilt on each analysis and never
// mutated in place.
type IndicatorSet struct {
	ShortMA        float64 `json:"short_ma"`        // 20-day simple moving average
	LongMA         float64 `json:"long_ma"`         // 50-day simple moving average
	EMA            float64 `json:"ema"`             // 12-day exponential moving average
	RSI            float64 `json:"rsi"`             // Relative strength index, in [0,100]
	MACDLine       float64 `json:"macd"`            // MACD line (EMA12 - EMA26)
	MACDSignal     float64 `json:"macd_signal"`     // Approximated MACD signal line
	BollingerUpper float64 `json:"bollinger_upper"` // Upper Bollinger band
	BollingerLower float64 `json:"bollinger_lower"` // Lower Bollinger band
	Support        float64 `json:"support"`         // Nearest support level below current price
	Resistance     float64 `json:"resistance"`      // Nearest resistance level above current price
}
