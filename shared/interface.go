package shared

import (
	"context"
	"io"

	"github.com/dnldd/sparkline/chart"
)

// QuoteSource defines the requirements for supplying chronologically
// ordered price history for a market.
type QuoteSource interface {
	// FetchHistory fetches the price history for the provided market.
	FetchHistory(ctx context.Context, market string) (*History, error)
}

// Surface defines the requirements for a mutable text surface charts
// are placed on.
type Surface interface {
	// PlaceChart places the provided chart's grid rows and labels at
	// the surface's insertion point.
	PlaceChart(chart *chart.Chart) error
	// WriteTo writes the surface contents to the provided writer.
	WriteTo(w io.Writer) (int64, error)
}
