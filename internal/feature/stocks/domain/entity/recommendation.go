package entity

// Verdict is the final buy/hold/sell call of the recommendation engine.
type Verdict string

const (
	VerdictBuy  Verdict = "buy"
	VerdictHold Verdict = "hold"
	VerdictSell Verdict = "sell"
)

// Recommendation is the scored output of the recommendation engine.
// It is derived solely from an IndicatorSet and the current price.
type Recommendation struct {
	Verdict    Verdict   `json:"verdict"`
	BuyScore   int       `json:"buy_score"`
	SellScore  int       `json:"sell_score"`
	Reasons    []string  `json:"reasons"`     // At most 3, in evaluation order
	BuyPoints  []float64 `json:"buy_points"`  // Suggested entry prices (buy/hold verdicts)
	SellPoints []float64 `json:"sell_points"` // Suggested exit prices (sell/hold verdicts)
}
