package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/dnldd/sparkline/service"
	"github.com/dnldd/sparkline/shared"
	"github.com/dnldd/sparkline/source"
	"github.com/dnldd/sparkline/surface"
)

// handleTermination processes context cancellation signals or interrupt signals from the OS.
func handleTermination(ctx context.Context, cancel context.CancelFunc) {
	// Listen for interrupt signals.
	signals := []os.Signal{os.Interrupt}
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, signals...)

	// Wait for the context to be cancelled or an interrupt signal.
	for {
		select {
		case <-ctx.Done():
			return

		case <-interrupt:
			cancel()
		}
	}
}

func main() {
	var cfg Config
	err := loadConfig(&cfg, "")
	if err != nil {
		log.Printf("loading config: %v", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	logger := zlog.With().Str("service", "sparkline").Logger()

	sourceLogger := logger.With().Str("component", "source").Logger()
	quotes, err := source.NewHistoricQuotes(&source.HistoricQuotesConfig{
		FilePath: cfg.QuotesFilepath,
		Logger:   &sourceLogger,
	})
	if err != nil {
		logger.Error().Msgf("creating quote source: %v", err)
		return
	}

	market := cfg.Market
	if market == "" {
		market = quotes.Market()
	}

	history, err := quotes.FetchHistory(ctx, market)
	if err != nil {
		logger.Error().Msgf("fetching history for %s: %v", market, err)
		return
	}

	mgrLogger := logger.With().Str("component", "chartmanager").Logger()
	chartMgr, err := service.NewManager(&service.ManagerConfig{
		IdealRange: cfg.IdealRange,
		Logger:     &mgrLogger,
	})
	if err != nil {
		logger.Error().Msgf("creating chart manager: %v", err)
		return
	}

	go handleTermination(ctx, cancel)
	go chartMgr.Run(ctx)

	req := shared.NewChartRequest(market, history.Prices, cfg.IdealRange)
	chartMgr.SendChartRequest(req)

	var resp shared.ChartResponse
	select {
	case resp = <-req.Response:
	case <-ctx.Done():
		return
	}
	if resp.Err != nil {
		logger.Error().Msgf("rendering chart: %v", resp.Err)
		return
	}

	surfaceLogger := logger.With().Str("component", "surface").Logger()
	buf := surface.NewBuffer(&surface.BufferConfig{Logger: &surfaceLogger})
	buf.InsertLine(market)
	err = buf.PlaceChart(resp.Chart)
	if err != nil {
		logger.Error().Msgf("placing chart: %v", err)
		return
	}

	_, err = buf.WriteTo(os.Stdout)
	if err != nil {
		logger.Error().Msgf("writing chart: %v", err)
	}
}
