// Package indicator provides pure technical-indicator functions over a
// chronological price series (oldest value first). Every function tolerates
// empty or short input and returns a neutral default instead of an error, so
// a degraded series can never abort an analysis.
package indicator

import "math"

// SMA computes the simple moving average over the last min(n, len(prices))
// values. Returns 0 for an empty series.
func SMA(prices []float64, n int) float64 {
	if len(prices) == 0 || n <= 0 {
		return 0
	}
	window := n
	if len(prices) < window {
		window = len(prices)
	}
	sum := 0.0
	for i := len(prices) - window; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(window)
}

// EMA computes the exponential moving average with period n, seeded with the
// SMA of the first n values. Degrades to SMA when the series is shorter than
// the period.
func EMA(prices []float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if len(prices) < n {
		return SMA(prices, n)
	}
	ema := SMA(prices[:n], n)
	multiplier := 2.0 / float64(n+1)
	for i := n; i < len(prices); i++ {
		ema = (prices[i]-ema)*multiplier + ema
	}
	return ema
}

// MACD computes the MACD line as EMA(12) - EMA(26). The signal line is
// approximated as 0.9 x line: a true signal would be a 9-period EMA over a
// rolling MACD history, which this engine does not retain. The approximation
// is deliberate; recommendation thresholds are tuned against it.
// All three values are 0 when fewer than 26 prices are available.
func MACD(prices []float64) (line, signal, histogram float64) {
	if len(prices) < 26 {
		return 0, 0, 0
	}
	line = EMA(prices, 12) - EMA(prices, 26)
	signal = 0.9 * line
	histogram = line - signal
	return line, signal, histogram
}

// Bollinger computes Bollinger bands with period n and width k standard
// deviations. The standard deviation uses population variance (divisor is
// the sample count) over the last min(n, len(prices)) values.
func Bollinger(prices []float64, n int, k float64) (upper, middle, lower float64) {
	if len(prices) == 0 || n <= 0 {
		return 0, 0, 0
	}
	middle = SMA(prices, n)

	window := n
	if len(prices) < window {
		window = len(prices)
	}
	variance := 0.0
	for i := len(prices) - window; i < len(prices); i++ {
		d := prices[i] - middle
		variance += d * d
	}
	variance /= float64(window)
	sigma := math.Sqrt(variance)

	return middle + k*sigma, middle, middle - k*sigma
}

// RSI computes a relative strength index with period n. Unlike classic
// Wilder RSI, gains and losses are averaged across the entire series rather
// than a rolling window; the divisor stays n. This matches the behavior the
// recommendation thresholds were calibrated against.
// Returns the neutral 50 when the series has n or fewer points, and 100 when
// the series never declined.
func RSI(prices []float64, n int) float64 {
	if n <= 0 || len(prices) <= n {
		return 50
	}
	var gains, losses float64
	for i := 1; i < len(prices); i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}
	avgGain := gains / float64(n)
	avgLoss := losses / float64(n)
	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}
