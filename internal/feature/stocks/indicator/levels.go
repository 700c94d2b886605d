package indicator

// Support returns the nearest support level below the current price: the
// highest local minimum of the series still below current. Falls back to
// current x 0.9 when the series has no qualifying minimum.
func Support(prices []float64, current float64) float64 {
	support := 0.0
	for i := 1; i < len(prices)-1; i++ {
		if prices[i] < prices[i-1] && prices[i] < prices[i+1] && prices[i] < current {
			if prices[i] > support {
				support = prices[i]
			}
		}
	}
	if support == 0 {
		return current * 0.9
	}
	return support
}

// Resistance returns the nearest resistance level above the current price:
// the lowest local maximum of the series above current. Falls back to
// current x 1.1 when the series has no qualifying maximum.
func Resistance(prices []float64, current float64) float64 {
	resistance := 0.0
	for i := 1; i < len(prices)-1; i++ {
		if prices[i] > prices[i-1] && prices[i] > prices[i+1] && prices[i] > current {
			if resistance == 0 || prices[i] < resistance {
				resistance = prices[i]
			}
		}
	}
	if resistance == 0 {
		return current * 1.1
	}
	return resistance
}
