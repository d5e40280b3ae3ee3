package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/dnldd/sparkline/chart"
	"github.com/dnldd/sparkline/shared"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

const (
	// bufferSize is the default buffer size for channels.
	bufferSize = 64
	// maxWorkers is the maximum number of concurrent render workers.
	maxWorkers = 4
)

// ManagerConfig represents the chart manager configuration.
type ManagerConfig struct {
	// IdealRange is the vertical sub-dot span used for requests that
	// do not carry their own.
	IdealRange float64
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config has sane inputs.
func (cfg *ManagerConfig) Validate() error {
	var errs error

	if cfg.IdealRange <= 0 {
		errs = errors.Join(errs, fmt.Errorf("ideal range must be positive"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// Manager renders braille charts on request and tracks the most
// recently rendered chart.
type Manager struct {
	cfg           *ManagerConfig
	chartRequests chan *shared.ChartRequest
	lastChart     atomic.Pointer[chart.Chart]
	workers       chan struct{}
}

// NewManager initializes a new chart manager.
func NewManager(cfg *ManagerConfig) (*Manager, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating chart manager config: %w", err)
	}

	return &Manager{
		cfg:           cfg,
		chartRequests: make(chan *shared.ChartRequest, bufferSize),
		workers:       make(chan struct{}, maxWorkers),
	}, nil
}

// SendChartRequest relays the provided chart request for processing.
func (m *Manager) SendChartRequest(req *shared.ChartRequest) {
	select {
	case m.chartRequests <- req:
		// do nothing.
	default:
		m.cfg.Logger.Error().Msgf("chart request channel at capacity: %d/%d",
			len(m.chartRequests), bufferSize)
	}
}

// handleChartRequest processes the provided chart request.
func (m *Manager) handleChartRequest(req *shared.ChartRequest) {
	if req.Response == nil {
		m.cfg.Logger.Error().Msgf("chart request has no response channel: %s", spew.Sdump(req))
		return
	}

	idealRange := req.IdealRange
	if idealRange <= 0 {
		idealRange = m.cfg.IdealRange
	}

	cht, err := chart.Plot(req.Series, idealRange)
	if err != nil {
		m.cfg.Logger.Error().Msgf("rendering chart %s for %s: %v", req.ID, req.Market, err)
		req.Response <- shared.ChartResponse{
			Err: fmt.Errorf("rendering chart for %s: %w", req.Market, err),
		}
		return
	}

	m.lastChart.Store(cht)
	req.Response <- shared.ChartResponse{Chart: cht}
}

// LastChart returns the most recently rendered chart, nil when no
// chart has been rendered yet.
func (m *Manager) LastChart() *chart.Chart {
	return m.lastChart.Load()
}

// Run manages the lifecycle processes of the chart manager.
func (m *Manager) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-m.chartRequests:
			// use workers to process chart requests concurrently.
			m.workers <- struct{}{}
			go func(req *shared.ChartRequest) {
				m.handleChartRequest(req)
				<-m.workers
			}(req)
		}
	}
}
