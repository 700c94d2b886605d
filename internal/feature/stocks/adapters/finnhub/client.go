package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/adapters/finnhub/dto"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/domain/entity"
	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/usecase"
)

// CallBudget gates each outbound call. A denied acquisition is reported as
// usecase.ErrRateLimited so the orchestrator can route to its fallbacks.
type CallBudget interface {
	TryAcquire() bool
}

// Client fetches quote, profile, and candle data from the Finnhub API.
// Every method consumes one budget unit; a full analysis may consume three.
type Client struct {
	cfg    Config
	client *http.Client
	budget CallBudget
}

// Client implements usecase.MarketRepository.
var _ usecase.MarketRepository = (*Client)(nil)

// NewClient creates a Finnhub client with the given configuration, HTTP
// client, and call budget.
func NewClient(cfg Config, client *http.Client, budget CallBudget) *Client {
	return &Client{cfg: cfg, client: client, budget: budget}
}

// GetQuote fetches the latest quote for a symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	if !c.budget.TryAcquire() {
		return entity.Quote{}, usecase.ErrRateLimited
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("token", c.cfg.APIKey)

	var body dto.QuoteResponse
	if err := c.getJSON(ctx, "/quote", q, &body); err != nil {
		return entity.Quote{}, err
	}
	// Finnhub reports unknown symbols as an all-zero quote.
	if body.Current <= 0 {
		return entity.Quote{}, fmt.Errorf("finnhub: no quote for %q", symbol)
	}

	ts := time.Unix(body.Timestamp, 0).UTC()
	if body.Timestamp == 0 {
		ts = time.Now().UTC()
	}
	return entity.Quote{
		Symbol:        symbol,
		Price:         body.Current,
		Change:        body.Change,
		ChangePercent: body.ChangePercent,
		Timestamp:     ts,
	}, nil
}

// GetProfile fetches the company name for a symbol. Callers treat any
// failure as "use the symbol itself".
func (c *Client) GetProfile(ctx context.Context, symbol string) (string, error) {
	if !c.budget.TryAcquire() {
		return "", usecase.ErrRateLimited
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("token", c.cfg.APIKey)

	var body dto.ProfileResponse
	if err := c.getJSON(ctx, "/stock/profile2", q, &body); err != nil {
		return "", err
	}
	if body.Name == "" {
		return "", fmt.Errorf("finnhub: no profile for %q", symbol)
	}
	return body.Name, nil
}

// GetCandles fetches up to days daily candles ending now, ascending by date
// with duplicate dates removed. A "no_data" status yields an empty series
// and no error.
func (c *Client) GetCandles(ctx context.Context, symbol string, days int) ([]entity.Candle, error) {
	if !c.budget.TryAcquire() {
		return nil, usecase.ErrRateLimited
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("resolution", "D")
	q.Set("from", strconv.FormatInt(from.Unix(), 10))
	q.Set("to", strconv.FormatInt(to.Unix(), 10))
	q.Set("token", c.cfg.APIKey)

	var body dto.CandleResponse
	if err := c.getJSON(ctx, "/stock/candle", q, &body); err != nil {
		return nil, err
	}
	if body.Status != "ok" {
		return nil, nil
	}
	n := len(body.Timestamps)
	if len(body.Opens) != n || len(body.Highs) != n || len(body.Lows) != n ||
		len(body.Closes) != n || len(body.Volumes) != n {
		return nil, fmt.Errorf("finnhub: mismatched candle arrays for %q", symbol)
	}

	candles := make([]entity.Candle, 0, n)
	var lastDate time.Time
	for i := 0; i < n; i++ {
		ts := time.Unix(body.Timestamps[i], 0).UTC()
		date := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)

		candle := entity.Candle{
			Date:   date,
			Open:   body.Opens[i],
			High:   body.Highs[i],
			Low:    body.Lows[i],
			Close:  body.Closes[i],
			Volume: int64(body.Volumes[i]),
		}
		// Provider data is ascending; a repeated date keeps the later bar.
		if !lastDate.IsZero() && !date.After(lastDate) {
			if date.Equal(lastDate) {
				candles[len(candles)-1] = candle
			}
			continue
		}
		candles = append(candles, candle)
		lastDate = date
	}
	return candles, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := fmt.Sprintf("%s%s?%s", c.cfg.BaseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("finnhub http %d", res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("finnhub decode: %w", err)
	}
	return nil
}
