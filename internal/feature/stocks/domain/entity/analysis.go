package entity

// Analysis is the full result of analyzing one ticker: current quote,
// technical indicators, recommendation, and the historical series the
// indicators were computed from.
type Analysis struct {
	Symbol         string         `json:"symbol"`
	CompanyName    string         `json:"company_name"`
	Quote          Quote          `json:"quote"`
	Indicators     IndicatorSet   `json:"indicators"`
	Recommendation Recommendation `json:"recommendation"`
	History        []Candle       `json:"history"` // Ascending by date, deduplicated
	IsDemoData     bool           `json:"is_demo_data"`
}
