package finnhub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/usecase"
)

// openBudget always grants acquisitions.
type openBudget struct{}

func (openBudget) TryAcquire() bool { return true }

// closedBudget always denies acquisitions.
type closedBudget struct{}

func (closedBudget) TryAcquire() bool { return false }

func testClient(serverURL string, server *httptest.Server, budget CallBudget) *Client {
	cfg := Config{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Timeout: 15 * time.Second,
	}
	return NewClient(cfg, server.Client(), budget)
}

func TestClient_GetQuote_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quote" {
			t.Errorf("expected path /quote, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("symbol") != "AAPL" {
			t.Errorf("expected symbol AAPL, got %s", r.URL.Query().Get("symbol"))
		}
		if r.URL.Query().Get("token") != "test-key" {
			t.Errorf("expected token test-key, got %s", r.URL.Query().Get("token"))
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"c":261.74,"d":2.29,"dp":0.8827,"h":263.31,"l":260.68,"o":261.07,"pc":259.45,"t":1718444400}`))
	}))
	defer server.Close()

	client := testClient(server.URL, server, openBudget{})

	quote, err := client.GetQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL", quote.Symbol)
	}
	if quote.Price != 261.74 {
		t.Errorf("price = %v, want 261.74", quote.Price)
	}
	if quote.Change != 2.29 {
		t.Errorf("change = %v, want 2.29", quote.Change)
	}
	if quote.ChangePercent != 0.8827 {
		t.Errorf("change percent = %v, want 0.8827", quote.ChangePercent)
	}
}

func TestClient_GetQuote_ZeroPriceIsFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"c":0,"d":null,"dp":null,"h":0,"l":0,"o":0,"pc":0,"t":0}`))
	}))
	defer server.Close()

	client := testClient(server.URL, server, openBudget{})

	if _, err := client.GetQuote(context.Background(), "ZZZZINVALID"); err == nil {
		t.Fatal("expected error for all-zero quote")
	}
}

func TestClient_GetQuote_RateLimited(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no HTTP request should be issued when the budget denies the call")
	}))
	defer server.Close()

	client := testClient(server.URL, server, closedBudget{})

	_, err := client.GetQuote(context.Background(), "AAPL")
	if !errors.Is(err, usecase.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestClient_GetQuote_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"unauthorized", http.StatusUnauthorized},
		{"too many requests", http.StatusTooManyRequests},
		{"internal server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := testClient(server.URL, server, openBudget{})
			if _, err := client.GetQuote(context.Background(), "AAPL"); err == nil {
				t.Fatal("expected error for non-200 response")
			}
		})
	}
}

func TestClient_GetQuote_MalformedPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	client := testClient(server.URL, server, openBudget{})
	if _, err := client.GetQuote(context.Background(), "AAPL"); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestClient_GetProfile(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/stock/profile2" {
				t.Errorf("expected path /stock/profile2, got %s", r.URL.Path)
			}
			_, _ = w.Write([]byte(`{"name":"Apple Inc","ticker":"AAPL","currency":"USD","exchange":"NASDAQ"}`))
		}))
		defer server.Close()

		client := testClient(server.URL, server, openBudget{})
		name, err := client.GetProfile(context.Background(), "AAPL")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if name != "Apple Inc" {
			t.Errorf("name = %q, want Apple Inc", name)
		}
	})

	t.Run("empty profile is failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := testClient(server.URL, server, openBudget{})
		if _, err := client.GetProfile(context.Background(), "ZZZZINVALID"); err == nil {
			t.Fatal("expected error for empty profile")
		}
	})
}

func TestClient_GetCandles(t *testing.T) {
	t.Parallel()

	t.Run("success ascending with duplicate date deduplicated", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/stock/candle" {
				t.Errorf("expected path /stock/candle, got %s", r.URL.Path)
			}
			if r.URL.Query().Get("resolution") != "D" {
				t.Errorf("expected daily resolution, got %s", r.URL.Query().Get("resolution"))
			}
			// 2024-06-12, 2024-06-13, and a second bar on 2024-06-13.
			_, _ = w.Write([]byte(`{
				"s":"ok",
				"t":[1718150400,1718236800,1718240400],
				"o":[100,102,103],
				"h":[105,106,107],
				"l":[99,101,102],
				"c":[102,104,105],
				"v":[1000,2000,2500]
			}`))
		}))
		defer server.Close()

		client := testClient(server.URL, server, openBudget{})
		candles, err := client.GetCandles(context.Background(), "AAPL", 61)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candles) != 2 {
			t.Fatalf("expected 2 deduplicated candles, got %d", len(candles))
		}
		for i := 1; i < len(candles); i++ {
			if !candles[i].Date.After(candles[i-1].Date) {
				t.Errorf("dates not strictly ascending at %d", i)
			}
		}
		// The later bar wins for a duplicated date.
		if candles[1].Close != 105 {
			t.Errorf("deduplicated close = %v, want 105", candles[1].Close)
		}
	})

	t.Run("no_data yields empty series without error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"s":"no_data"}`))
		}))
		defer server.Close()

		client := testClient(server.URL, server, openBudget{})
		candles, err := client.GetCandles(context.Background(), "AAPL", 61)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(candles) != 0 {
			t.Errorf("expected empty series, got %d candles", len(candles))
		}
	})

	t.Run("mismatched arrays are malformed", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"s":"ok","t":[1718150400,1718236800],"o":[100],"h":[105],"l":[99],"c":[102],"v":[1000]}`))
		}))
		defer server.Close()

		client := testClient(server.URL, server, openBudget{})
		if _, err := client.GetCandles(context.Background(), "AAPL", 61); err == nil {
			t.Fatal("expected error for mismatched candle arrays")
		}
	})
}
