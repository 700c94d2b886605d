// Package demo generates deterministic synthetic market data. It is the
// resilience backstop of the analysis engine: when the provider is down and
// the cache is empty, the generator still produces internally consistent
// quotes and OHLCV series, with no network access and no error path.
//
// All output is a pure function of (symbol, calendar date). The same symbol
// queried on the same day always yields the same numbers, which keeps tests
// stable and prevents cache thrash.
package demo

import (
	"math"
	"strings"
	"time"

	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/domain/entity"
)

const (
	// DefaultSeriesDays is the synthetic history length for a full analysis.
	DefaultSeriesDays = 61

	// priceFloor prevents a falling synthetic walk from going negative.
	priceFloor = 10.0

	// Two distinct base-price bands exist on purpose: single quotes span a
	// wide 10..500 range, analysis series start in a narrower 50..250 band
	// so 61 days of drift stay in a plausible chart range.
	quoteBandBase    = 10
	quoteBandSpan    = 490
	analysisBandBase = 50
	analysisBandSpan = 200
)

// Generator produces deterministic synthetic prices and series. The clock is
// injected so tests can pin the calendar date.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a Generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock creates a Generator with an explicit clock.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// seedOf derives the per-symbol seed: the sum of the character codes of the
// upper-cased symbol.
func seedOf(symbol string) int {
	seed := 0
	for _, c := range strings.ToUpper(symbol) {
		seed += int(c)
	}
	return seed
}

// dateKey encodes a calendar date as yyyymmdd.
func dateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// Price returns today's synthetic price for a symbol, in the wide quote band.
func (g *Generator) Price(symbol string) float64 {
	return priceOn(symbol, g.now())
}

// Quote returns today's synthetic quote. Change figures are derived from the
// synthetic price of the previous calendar day, so they are deterministic too.
func (g *Generator) Quote(symbol string) entity.Quote {
	now := g.now()
	price := priceOn(symbol, now)
	prev := priceOn(symbol, now.AddDate(0, 0, -1))

	change := round2(price - prev)
	changePct := 0.0
	if prev > 0 {
		changePct = round2(change / prev * 100)
	}
	return entity.Quote{
		Symbol:        strings.ToUpper(symbol),
		Price:         price,
		Change:        change,
		ChangePercent: changePct,
		Timestamp:     now,
	}
}

func priceOn(symbol string, day time.Time) float64 {
	seed := seedOf(symbol)
	base := float64(quoteBandBase + seed%quoteBandSpan)

	d := dateKey(day)
	drift := float64(d%60) / 1000
	if d%2 == 1 {
		drift = -drift
	}
	return round2(base * (1 + drift))
}

// Series generates a synthetic daily OHLCV series ending today, oldest bar
// first. The walk combines a per-symbol trend shape (rising, falling,
// cyclic, or volatile, chosen by seed mod 4) with a pseudo-random term keyed
// by (seed + date), so the sequence is repeatable for a given calendar date.
// Volume scales with the magnitude of the day's move.
func (g *Generator) Series(symbol string, days int) []entity.Candle {
	if days <= 0 {
		days = DefaultSeriesDays
	}
	seed := seedOf(symbol)
	trend := seed % 4

	now := g.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	price := float64(analysisBandBase + seed%analysisBandSpan)
	candles := make([]entity.Candle, 0, days)

	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		d := dateKey(day)
		r := float64((seed+d)%1000) / 1000 // repeatable, in [0, 1)

		var trendComponent float64
		amplitude := 0.01
		switch trend {
		case 0: // rising
			trendComponent = 0.002
		case 1: // falling
			trendComponent = -0.002
		case 2: // cyclic
			trendComponent = 0.004 * math.Sin(float64(days-1-i)*0.3)
		case 3: // volatile
			amplitude = 0.03
		}
		dayReturn := trendComponent + (r-0.5)*2*amplitude

		open := price
		close := price * (1 + dayReturn)
		if close < priceFloor {
			close = priceFloor
		}

		high := math.Max(open, close) * (1 + r*0.005)
		low := math.Min(open, close) * (1 - (1-r)*0.005)

		// Bigger moves bring higher volume, with a +-20% jitter.
		jitter := 0.8 + 0.4*float64((seed+d*7)%1000)/1000
		volume := int64(1_000_000 * (1 + math.Abs(dayReturn)*50) * jitter)

		candles = append(candles, entity.Candle{
			Date:   day,
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(close),
			Volume: volume,
		})
		price = close
	}
	return candles
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
