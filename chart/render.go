package chart

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

const (
	// dotsPerCellColumn is the number of vertical sub-dots in a
	// braille cell column, and therefore per text row.
	dotsPerCellColumn = 4
	// samplesPerCell is the number of series samples a braille cell
	// holds, one per dot column.
	samplesPerCell = 2
)

// Chart is a fully painted braille chart: a rectangular character
// grid plus its axis labels. Placing the rows and labels on a display
// surface is the caller's concern, the renderer never touches one.
type Chart struct {
	// Grid holds the painted cells, row 0 at the top. Every row has
	// the same length and unpainted cells are blank braille cells.
	Grid [][]rune
	// TopLabel is the series maximum, placed beside the top row.
	TopLabel string
	// BottomLabel is the series minimum, placed beside the bottom row.
	BottomLabel string
	// LastLabel is the most recent value. It is empty when the last
	// value equals either extremum and already reads off an axis label.
	LastLabel string
}

// Rows returns the number of text rows in the chart grid.
func (c *Chart) Rows() int {
	return len(c.Grid)
}

// Cols returns the number of text columns in the chart grid.
func (c *Chart) Cols() int {
	if len(c.Grid) == 0 {
		return 0
	}

	return len(c.Grid[0])
}

// joinState tracks the previously painted sample during a render pass
// so consecutive samples landing in the same cell merge into one cell
// with both dots raised.
type joinState struct {
	row int
	col int
	bit uint8
}

// normalizedBounds returns the minimum and maximum of the provided
// normalized series.
func normalizedBounds(normalized []int) (int, int) {
	min, max := normalized[0], normalized[0]
	for idx := range normalized {
		if normalized[idx] < min {
			min = normalized[idx]
		}
		if normalized[idx] > max {
			max = normalized[idx]
		}
	}

	return min, max
}

// formatLabel renders an axis value as display text.
func formatLabel(value float64) string {
	return humanize.Commaf(value)
}

// Render paints the provided normalized series onto a fresh braille
// grid and returns it with its axis labels. Samples are placed in
// chronological order, alternating between the left and right dot
// column of a cell, with the sub-dot row selected by the sample's
// height above the series minimum. A sample sharing a cell with its
// predecessor is merged into that cell rather than overwriting it,
// keeping the plotted line visually continuous. The pass is a pure
// fold over the series, deterministic and free of side effects.
func Render(normalized []int, originalMin float64, originalMax float64, originalLast float64) (*Chart, error) {
	if len(normalized) == 0 {
		return nil, fmt.Errorf("%w: empty normalized series", ErrInvalidInput)
	}

	min, max := normalizedBounds(normalized)

	// A sample at height h above the minimum occupies the bottom-up
	// text row h/4, so the grid needs (max-min)/4 + 1 rows. A flat
	// series renders a single row instead of erroring.
	rows := (max-min)/dotsPerCellColumn + 1
	cols := (len(normalized) + samplesPerCell - 1) / samplesPerCell

	grid := make([][]rune, rows)
	for row := range grid {
		grid[row] = make([]rune, cols)
		for col := range grid[row] {
			grid[row][col] = cellRune(0)
		}
	}

	var last joinState
	for idx := range normalized {
		height := normalized[idx] - min
		row := rows - 1 - height/dotsPerCellColumn
		col := idx / samplesPerCell
		bit := dotBit(idx%samplesPerCell, height%dotsPerCellColumn)

		mask := bit
		if idx > 0 && row == last.row && col == last.col {
			// The predecessor landed in the same cell, raise both dots.
			mask |= last.bit
		}

		grid[row][col] = cellRune(mask)
		last = joinState{row: row, col: col, bit: bit}
	}

	chart := &Chart{
		Grid:        grid,
		TopLabel:    formatLabel(originalMax),
		BottomLabel: formatLabel(originalMin),
	}

	if originalLast != originalMax && originalLast != originalMin {
		chart.LastLabel = formatLabel(originalLast)
	}

	return chart, nil
}

// Plot normalizes the provided price series and renders it, labelling
// the axes with the series' own extrema and final value.
func Plot(series []float64, idealRange float64) (*Chart, error) {
	normalized, err := Normalize(series, idealRange)
	if err != nil {
		return nil, fmt.Errorf("normalizing series: %w", err)
	}

	min, max := seriesBounds(series)

	return Render(normalized, min, max, series[len(series)-1])
}
