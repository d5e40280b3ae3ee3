package chart

import (
	"errors"
	"fmt"
	"math"
)

const (
	// DefaultIdealRange is the default number of vertical sub-dot
	// units the full price range is rescaled to span. At four
	// sub-dots per text row it keeps a typical intraday history
	// around a dozen rows tall.
	DefaultIdealRange = 50
)

// ErrInvalidInput is returned for structurally unusable chart input.
var ErrInvalidInput = errors.New("invalid chart input")

// seriesBounds returns the minimum and maximum of the provided series.
func seriesBounds(series []float64) (float64, float64) {
	min, max := series[0], series[0]
	for idx := range series {
		if series[idx] < min {
			min = series[idx]
		}
		if series[idx] > max {
			max = series[idx]
		}
	}

	return min, max
}

// Normalize rescales the provided chronological price series into the
// renderer's sub-dot space. Each sample becomes
// round((value - min) * idealRange / (max - min)), so the series
// minimum maps to zero and the maximum to idealRange. A flat series
// (max == min) normalizes to all zeros instead of dividing by zero.
func Normalize(series []float64, idealRange float64) ([]int, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: empty price series", ErrInvalidInput)
	}
	if idealRange <= 0 {
		return nil, fmt.Errorf("%w: ideal range must be positive, got %v",
			ErrInvalidInput, idealRange)
	}

	normalized := make([]int, len(series))

	min, max := seriesBounds(series)
	if max == min {
		return normalized, nil
	}

	scale := idealRange / (max - min)
	for idx := range series {
		normalized[idx] = int(math.Round((series[idx] - min) * scale))
	}

	return normalized, nil
}
