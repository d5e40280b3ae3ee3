package chart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/peterldowns/testy/assert"
)

func TestNormalize(t *testing.T) {
	// Ensure an empty series cannot be normalized.
	_, err := Normalize([]float64{}, DefaultIdealRange)
	assert.Error(t, err)

	// Ensure a non-positive ideal range is rejected.
	_, err = Normalize([]float64{1, 2}, 0)
	assert.Error(t, err)
	_, err = Normalize([]float64{1, 2}, -5)
	assert.Error(t, err)

	// Ensure a flat series normalizes to all zeros instead of
	// dividing by zero.
	normalized, err := Normalize([]float64{5, 5, 5}, DefaultIdealRange)
	assert.NoError(t, err)
	assert.Equal(t, normalized, []int{0, 0, 0})

	// Ensure the series extrema map to zero and the ideal range.
	normalized, err = Normalize([]float64{1, 2, 3, 4}, 50)
	assert.NoError(t, err)
	assert.Equal(t, normalized, []int{0, 17, 33, 50})
}

func TestNormalizePreservesShape(t *testing.T) {
	series := []float64{103.2, 99.7, 101.4, 98.5, 104.9, 100.1}

	normalized, err := Normalize(series, DefaultIdealRange)
	assert.NoError(t, err)

	// Ensure the output length matches the input length.
	assert.Equal(t, len(normalized), len(series))

	// Ensure the extremal indices of the input and output correspond.
	minIdx, maxIdx := 0, 0
	for idx := range series {
		if series[idx] < series[minIdx] {
			minIdx = idx
		}
		if series[idx] > series[maxIdx] {
			maxIdx = idx
		}
	}

	nMin, nMax := normalizedBounds(normalized)
	assert.Equal(t, normalized[minIdx], nMin)
	assert.Equal(t, normalized[maxIdx], nMax)
	assert.Equal(t, nMin, 0)
	assert.Equal(t, nMax, DefaultIdealRange)

	// Ensure normalization is deterministic.
	again, err := Normalize(series, DefaultIdealRange)
	assert.NoError(t, err)
	assert.Equal(t, cmp.Diff(normalized, again), "")
}
