package source

import (
	"context"
	"fmt"
	"os"

	"github.com/dnldd/sparkline/shared"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// HistoricQuotesConfig represents the historic quote source configuration.
type HistoricQuotesConfig struct {
	// FilePath is the filepath to the historic quote data.
	FilePath string
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// HistoricQuotes represents a file backed quote source.
type HistoricQuotes struct {
	cfg     *HistoricQuotesConfig
	history *shared.History
}

// Ensure HistoricQuotes implements the QuoteSource interface.
var _ shared.QuoteSource = (*HistoricQuotes)(nil)

// loadHistoricQuotes loads the historic quote bytes from the provided file path.
func loadHistoricQuotes(filepath string) (*gjson.Result, error) {
	readb, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading historic quotes from file with path '%s': %v", filepath, err)
	}

	b := gjson.ParseBytes(readb)

	return &b, nil
}

// clampPrices bounds the provided prices to the period high and low.
// Samples outside [low, high] are snapped to the midpoint of the two
// before any chart normalization sees them. Returns the number of
// clamped samples.
func clampPrices(prices []float64, high float64, low float64) int {
	if high <= low {
		return 0
	}

	mid := (high + low) / 2
	clamped := 0
	for idx := range prices {
		if prices[idx] > high || prices[idx] < low {
			prices[idx] = mid
			clamped++
		}
	}

	return clamped
}

// NewHistoricQuotes initializes a new historic quote source.
func NewHistoricQuotes(cfg *HistoricQuotesConfig) (*HistoricQuotes, error) {
	b, err := loadHistoricQuotes(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("loading historic quotes: %v", err)
	}

	market := b.Get("market").String()
	if market == "" {
		return nil, fmt.Errorf("historic quotes missing a market symbol")
	}

	data := b.Get("prices").Array()
	if len(data) == 0 {
		return nil, fmt.Errorf("no price history for %s", market)
	}

	prices := make([]float64, len(data))
	for idx := range data {
		prices[idx] = data[idx].Float()
	}

	history := &shared.History{
		Market: market,
		High:   b.Get("high").Float(),
		Low:    b.Get("low").Float(),
		Prices: prices,
	}

	clamped := clampPrices(history.Prices, history.High, history.Low)
	if clamped > 0 {
		cfg.Logger.Info().Msgf("clamped %d out of range samples for %s to the period midpoint",
			clamped, market)
	}

	return &HistoricQuotes{
		cfg:     cfg,
		history: history,
	}, nil
}

// Market returns the market symbol of the loaded history.
func (h *HistoricQuotes) Market() string {
	return h.history.Market
}

// FetchHistory fetches the price history for the provided market.
func (h *HistoricQuotes) FetchHistory(ctx context.Context, market string) (*shared.History, error) {
	if market != h.history.Market {
		return nil, fmt.Errorf("no price history for market %s", market)
	}

	return h.history, nil
}
