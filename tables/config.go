package tables

import (
	"errors"
	"fmt"
	"math"

	"github.com/tsawler/pdfrows/rows"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid table config")

// Config holds reconstruction parameters
type Config struct {
	// RowGap is the clustering tolerance for baselines (points). Baselines
	// closer than this to their neighbour share a row.
	RowGap float64

	// CellGap is the largest horizontal gap between two characters of one
	// cell (points).
	CellGap float64

	// KeepFirstChar stores the character that opens a new row bucket. By
	// default it is dropped, which loses the first glyph encountered in
	// every row.
	KeepFirstChar bool

	// Normalize applies NFKC to every cell.
	Normalize bool
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		RowGap:  rows.DefaultGap,
		CellGap: 1.0,
	}
}

// Validate checks that the gaps are usable
func (c Config) Validate() error {
	if math.IsNaN(c.RowGap) || c.RowGap <= 0 {
		return fmt.Errorf("%w: row gap must be positive, got %g", ErrInvalidConfig, c.RowGap)
	}
	if math.IsNaN(c.CellGap) || c.CellGap < 0 {
		return fmt.Errorf("%w: cell gap must not be negative, got %g", ErrInvalidConfig, c.CellGap)
	}
	return nil
}
