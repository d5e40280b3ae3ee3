package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/dnldd/sparkline/chart"
	"github.com/dnldd/sparkline/shared"
	"github.com/rs/zerolog"
)

// BufferConfig represents the text buffer configuration.
type BufferConfig struct {
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Buffer is an in-memory text surface. Chart rows and labels are
// written at the buffer's insertion point with direct indexed writes,
// the buffer never addresses a live display.
type Buffer struct {
	cfg   *BufferConfig
	lines []string
}

// Ensure Buffer implements the Surface interface.
var _ shared.Surface = (*Buffer)(nil)

// NewBuffer initializes a new text buffer.
func NewBuffer(cfg *BufferConfig) *Buffer {
	return &Buffer{
		cfg:   cfg,
		lines: make([]string, 0, 32),
	}
}

// InsertLine places the provided text at the buffer's insertion point.
func (b *Buffer) InsertLine(text string) {
	b.lines = append(b.lines, text)
}

// PlaceChart places the provided chart's grid rows and labels at the
// buffer's insertion point. The maximum label sits just right of the
// last data column on the top row and the minimum label on the bottom
// row, with the last-value label trailing the bottom row when the
// chart carries one.
func (b *Buffer) PlaceChart(c *chart.Chart) error {
	if c == nil || len(c.Grid) == 0 {
		b.cfg.Logger.Error().Msg("cannot place an empty chart")
		return fmt.Errorf("cannot place an empty chart")
	}

	bottom := len(c.Grid) - 1
	for row := range c.Grid {
		line := string(c.Grid[row])

		labels := make([]string, 0, 3)
		if row == 0 {
			labels = append(labels, c.TopLabel)
		}
		if row == bottom {
			// On a single row chart the top label already covers an
			// identical bottom label.
			if row != 0 || c.BottomLabel != c.TopLabel {
				labels = append(labels, c.BottomLabel)
			}
			if c.LastLabel != "" {
				labels = append(labels, c.LastLabel)
			}
		}
		if len(labels) > 0 {
			line = line + " " + strings.Join(labels, " ")
		}

		b.lines = append(b.lines, line)
	}

	return nil
}

// Len returns the number of lines placed on the buffer.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Reset clears the buffer contents.
func (b *Buffer) Reset() {
	b.lines = b.lines[:0]
}

// String returns the buffer contents as displayable text.
func (b *Buffer) String() string {
	if len(b.lines) == 0 {
		return ""
	}

	return strings.Join(b.lines, "\n") + "\n"
}

// WriteTo writes the buffer contents to the provided writer.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	if err != nil {
		return int64(n), fmt.Errorf("writing surface contents: %w", err)
	}

	return int64(n), nil
}
