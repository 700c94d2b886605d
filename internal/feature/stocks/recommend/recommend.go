// Package recommend scores an indicator set into a buy/hold/sell verdict.
// Each signal contributes an integer weight to a buy or sell score; the
// verdict requires a margin of more than 2 points over the opposing score.
package recommend

import (
	"math"

	"github.com/Gotppsn/iGotMoney-sub003/internal/feature/stocks/domain/entity"
)

// Inputs carries everything the scoring needs: the current price and the
// already-computed indicators.
type Inputs struct {
	Current        float64
	ShortMA        float64
	LongMA         float64
	RSI            float64
	MACDLine       float64
	MACDSignal     float64
	BollingerUpper float64
	BollingerLower float64
}

// maxReasons caps how many explanations are surfaced to the user.
const maxReasons = 3

// Recommend evaluates the signals in a fixed order and returns the scored
// recommendation. Reasons are collected in evaluation order and truncated to
// the first three; the order is part of the contract because it decides
// which explanations users actually see.
func Recommend(in Inputs) entity.Recommendation {
	var buyScore, sellScore int
	var reasons []string

	addReason := func(r string) {
		if len(reasons) < maxReasons {
			reasons = append(reasons, r)
		}
	}

	// RSI bands
	switch {
	case in.RSI < 30:
		buyScore += 3
		addReason("RSI indicates the stock is oversold")
	case in.RSI < 40:
		buyScore++
		addReason("RSI is approaching oversold territory")
	case in.RSI > 70:
		sellScore += 3
		addReason("RSI indicates the stock is overbought")
	case in.RSI > 60:
		sellScore++
		addReason("RSI is approaching overbought territory")
	}

	// Moving average crossover
	if in.ShortMA > in.LongMA {
		buyScore += 2
		addReason("Short-term MA is above long-term MA (uptrend)")
	} else {
		sellScore += 2
		addReason("Short-term MA is below long-term MA (downtrend)")
	}

	// Price relative to the short MA
	if in.Current < in.ShortMA {
		buyScore++
		addReason("Price is below the short-term moving average")
	} else {
		sellScore++
		addReason("Price is above the short-term moving average")
	}

	// MACD relation
	if in.MACDLine > in.MACDSignal {
		buyScore += 2
		addReason("MACD line is above its signal line")
	} else {
		sellScore += 2
		addReason("MACD line is below its signal line")
	}

	// Bollinger band breaches
	if in.Current < in.BollingerLower {
		buyScore += 3
		addReason("Price is below the lower Bollinger band")
	} else if in.Current > in.BollingerUpper {
		sellScore += 3
		addReason("Price is above the upper Bollinger band")
	}

	verdict := entity.VerdictHold
	switch {
	case buyScore > sellScore+2:
		verdict = entity.VerdictBuy
	case sellScore > buyScore+2:
		verdict = entity.VerdictSell
	}

	rec := entity.Recommendation{
		Verdict:   verdict,
		BuyScore:  buyScore,
		SellScore: sellScore,
		Reasons:   reasons,
	}

	// Target prices come from the Bollinger bands. Buy entries are shown for
	// buy/hold verdicts, sell exits for sell/hold verdicts.
	if verdict == entity.VerdictBuy || verdict == entity.VerdictHold {
		rec.BuyPoints = []float64{round2(in.BollingerLower), round2(in.BollingerLower * 0.95)}
	}
	if verdict == entity.VerdictSell || verdict == entity.VerdictHold {
		rec.SellPoints = []float64{round2(in.BollingerUpper), round2(in.BollingerUpper * 1.05)}
	}

	return rec
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
