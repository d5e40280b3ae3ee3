package shared

// History represents a chronological closing-price history for a market.
type History struct {
	// Market is the symbol the history belongs to.
	Market string
	// High is the period high bounding the series.
	High float64
	// Low is the period low bounding the series.
	Low float64
	// Prices holds the closing prices in chronological order.
	Prices []float64
}

// Last returns the most recent price of the history.
func (h *History) Last() float64 {
	if len(h.Prices) == 0 {
		return 0
	}

	return h.Prices[len(h.Prices)-1]
}
