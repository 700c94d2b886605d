// Package dto defines the response DTOs for the stocks feature.
package dto

import (
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/domain/entity"
)

// AnalysisResponse is the flat JSON payload of the analysis endpoint,
// shaped for direct consumption by the web frontend (chart arrays are
// parallel, ordered oldest first).
type AnalysisResponse struct {
	Status                string    `json:"status"`
	Message               string    `json:"message,omitempty"`
	Ticker                string    `json:"ticker"`
	CompanyName           string    `json:"company_name"`
	CurrentPrice          float64   `json:"current_price"`
	PriceChange           float64   `json:"price_change"`
	PriceChangePercent    float64   `json:"price_change_percent"`
	ShortMA               float64   `json:"short_ma"`
	LongMA                float64   `json:"long_ma"`
	RSI                   float64   `json:"rsi"`
	EMA                   float64   `json:"ema"`
	MACD                  float64   `json:"macd"`
	MACDSignal            float64   `json:"macd_signal"`
	BollingerUpper        float64   `json:"bollinger_upper"`
	BollingerLower        float64   `json:"bollinger_lower"`
	Support               float64   `json:"support"`
	Resistance            float64   `json:"resistance"`
	Recommendation        string    `json:"recommendation"`
	RecommendationReasons []string  `json:"recommendation_reasons"`
	BuyPoints             []float64 `json:"buy_points"`
	SellPoints            []float64 `json:"sell_points"`
	HistoricalDates       []string  `json:"historical_dates"`
	HistoricalPrices      []float64 `json:"historical_prices"`
	HistoricalVolumes     []int64   `json:"historical_volumes"`
	IsDemoData            bool      `json:"is_demo_data,omitempty"`
}

// NewAnalysisResponse flattens a domain analysis into the response shape.
func NewAnalysisResponse(a entity.Analysis) AnalysisResponse {
	dates := make([]string, 0, len(a.History))
	prices := make([]float64, 0, len(a.History))
	volumes := make([]int64, 0, len(a.History))
	for _, bar := range a.History {
		dates = append(dates, bar.Date.UTC().Format("2006-01-02"))
		prices = append(prices, bar.Close)
		volumes = append(volumes, bar.Volume)
	}

	return AnalysisResponse{
		Status:                "success",
		Ticker:                a.Symbol,
		CompanyName:           a.CompanyName,
		CurrentPrice:          a.Quote.Price,
		PriceChange:           a.Quote.Change,
		PriceChangePercent:    a.Quote.ChangePercent,
		ShortMA:               a.Indicators.ShortMA,
		LongMA:                a.Indicators.LongMA,
		RSI:                   a.Indicators.RSI,
		EMA:                   a.Indicators.EMA,
		MACD:                  a.Indicators.MACDLine,
		MACDSignal:            a.Indicators.MACDSignal,
		BollingerUpper:        a.Indicators.BollingerUpper,
		BollingerLower:        a.Indicators.BollingerLower,
		Support:               a.Indicators.Support,
		Resistance:            a.Indicators.Resistance,
		Recommendation:        string(a.Recommendation.Verdict),
		RecommendationReasons: a.Recommendation.Reasons,
		BuyPoints:             a.Recommendation.BuyPoints,
		SellPoints:            a.Recommendation.SellPoints,
		HistoricalDates:       dates,
		HistoricalPrices:      prices,
		HistoricalVolumes:     volumes,
		IsDemoData:            a.IsDemoData,
	}
}
