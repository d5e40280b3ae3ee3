package shared

import (
	"github.com/dnldd/sparkline/chart"
	"github.com/google/uuid"
)

// ChartResponse represents the outcome of a chart request.
type ChartResponse struct {
	Chart *chart.Chart
	Err   error
}

// ChartRequest represents a request to render a market's price history
// as a braille chart.
type ChartRequest struct {
	ID         string
	Market     string
	Series     []float64
	IdealRange float64
	Response   chan ChartResponse
}

// NewChartRequest initializes a new chart request.
func NewChartRequest(market string, series []float64, idealRange float64) *ChartRequest {
	return &ChartRequest{
		ID:         uuid.New().String(),
		Market:     market,
		Series:     series,
		IdealRange: idealRange,
		Response:   make(chan ChartResponse, 1),
	}
}
