package chart

import (
	"math/bits"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/peterldowns/testy/assert"
)

func TestRenderSinglePoint(t *testing.T) {
	// Ensure a single-sample series renders a 1x1 grid with one dot
	// at the bottom-left of the cell.
	chart, err := Render([]int{0}, 42, 42, 42)
	assert.NoError(t, err)
	assert.Equal(t, chart.Rows(), 1)
	assert.Equal(t, chart.Cols(), 1)
	assert.Equal(t, chart.Grid[0][0], '⡀')

	// Ensure both axis labels carry the sole value and no separate
	// last-value label is emitted.
	assert.Equal(t, chart.TopLabel, "42")
	assert.Equal(t, chart.BottomLabel, "42")
	assert.Equal(t, chart.LastLabel, "")
}

func TestRenderFlatSeries(t *testing.T) {
	// Ensure a flat series renders a single-row chart with every
	// sample plotted at the bottom sub-dot, without a division error.
	chart, err := Plot([]float64{5, 5, 5}, DefaultIdealRange)
	assert.NoError(t, err)
	assert.Equal(t, chart.Rows(), 1)
	assert.Equal(t, chart.Cols(), 2)

	// Samples 0 and 1 share the first cell and are joined; sample 2
	// holds the left half of the second cell alone.
	assert.Equal(t, chart.Grid[0][0], '⣀')
	assert.Equal(t, chart.Grid[0][1], '⡀')
	assert.Equal(t, chart.TopLabel, "5")
	assert.Equal(t, chart.BottomLabel, "5")
}

func TestRenderGridSizing(t *testing.T) {
	// Ensure the grid spans floor(range/4)+1 rows and ceil(n/2)
	// columns.
	chart, err := Render([]int{0, 17, 33, 50}, 1, 4, 4)
	assert.NoError(t, err)
	assert.Equal(t, chart.Rows(), 13)
	assert.Equal(t, chart.Cols(), 2)

	// Ensure the extrema land in the bottom and top rows.
	assert.Equal(t, chart.Grid[12][0], cellRune(dotBit(0, 0)))
	assert.NotEqual(t, chart.Grid[0][1], cellRune(0))

	// Ensure a range that is an exact multiple of four still places
	// its maximum in the top row rather than overflowing it.
	chart, err = Render([]int{0, 48}, 10, 58, 58)
	assert.NoError(t, err)
	assert.Equal(t, chart.Rows(), 13)
	assert.Equal(t, chart.Grid[0][0], cellRune(dotBit(1, 0)))
}

func TestRenderJoinRule(t *testing.T) {
	// Consecutive samples landing in the same cell must merge into a
	// single cell with exactly two raised dots.
	chart, err := Render([]int{0, 1}, 10, 11, 11)
	assert.NoError(t, err)
	assert.Equal(t, chart.Rows(), 1)
	assert.Equal(t, chart.Cols(), 1)
	assert.Equal(t, bits.OnesCount8(cellMask(chart.Grid[0][0])), 2)
	assert.Equal(t, chart.Grid[0][0], cellRune(dotBit(0, 0)|dotBit(1, 1)))

	// Samples landing in distinct cells contribute exactly one dot
	// each, with continuity implied by adjacency.
	chart, err = Render([]int{0, 7}, 10, 17, 17)
	assert.NoError(t, err)
	assert.Equal(t, chart.Rows(), 2)
	assert.Equal(t, bits.OnesCount8(cellMask(chart.Grid[1][0])), 1)
	assert.Equal(t, bits.OnesCount8(cellMask(chart.Grid[0][0])), 1)
}

func TestRenderIdempotence(t *testing.T) {
	normalized := []int{0, 17, 33, 50, 41, 12, 50, 0}

	first, err := Render(normalized, 97.5, 108.25, 97.5)
	assert.NoError(t, err)
	second, err := Render(normalized, 97.5, 108.25, 97.5)
	assert.NoError(t, err)

	assert.Equal(t, cmp.Diff(first, second), "")
}

func TestRenderLabels(t *testing.T) {
	// Ensure a last value equal to an extremum emits no separate
	// last-value label.
	chart, err := Plot([]float64{10, 20, 10}, DefaultIdealRange)
	assert.NoError(t, err)
	assert.Equal(t, chart.TopLabel, "20")
	assert.Equal(t, chart.BottomLabel, "10")
	assert.Equal(t, chart.LastLabel, "")

	// Ensure an interior last value is emitted as a trailing label.
	chart, err = Plot([]float64{10, 20, 15}, DefaultIdealRange)
	assert.NoError(t, err)
	assert.Equal(t, chart.LastLabel, "15")

	// Ensure large values are formatted with thousand separators.
	chart, err = Plot([]float64{4890.25, 4901.5, 4895.75}, DefaultIdealRange)
	assert.NoError(t, err)
	assert.Equal(t, chart.TopLabel, "4,901.5")
	assert.Equal(t, chart.BottomLabel, "4,890.25")
	assert.Equal(t, chart.LastLabel, "4,895.75")
}

func TestRenderInvalidInput(t *testing.T) {
	// Ensure an empty normalized series cannot be rendered.
	_, err := Render([]int{}, 0, 0, 0)
	assert.Error(t, err)
}
