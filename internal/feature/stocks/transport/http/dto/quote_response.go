package dto

import (
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/domain/entity"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/usecase"
)

// QuoteResponse is the payload of the single-quote endpoint.
type QuoteResponse struct {
	Status     string  `json:"status"`
	Ticker     string  `json:"ticker"`
	Price      float64 `json:"price"`
	IsDemoData bool    `json:"is_demo_data,omitempty"`
}

// BatchQuoteEntry is one resolved symbol in a batch response.
type BatchQuoteEntry struct {
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// BatchQuoteResponse is the payload of the batch-quote endpoint. Status is
// "partial" when only some of the requested symbols resolved.
type BatchQuoteResponse struct {
	Status string                     `json:"status"`
	Quotes map[string]BatchQuoteEntry `json:"quotes"`
}

// NewBatchQuoteResponse maps resolved quotes into the batch response shape.
func NewBatchQuoteResponse(quotes map[string]entity.Quote, status usecase.BatchStatus) BatchQuoteResponse {
	out := make(map[string]BatchQuoteEntry, len(quotes))
	for symbol, q := range quotes {
		out[symbol] = BatchQuoteEntry{
			Price:         q.Price,
			Change:        q.Change,
			ChangePercent: q.ChangePercent,
		}
	}
	return BatchQuoteResponse{Status: string(status), Quotes: out}
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewErrorResponse wraps a message in the error payload shape.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: message}
}
