package pdfrows

import (
	"go.uber.org/zap"

	"github.com/tsawler/pdfrows/rows"
	"github.com/tsawler/pdfrows/tables"
)

// extractOptions holds configuration for table extraction.
type extractOptions struct {
	// Page selection (1-indexed, stored as-is)
	pages []int

	// Reconstruction
	rowGap        float64
	cellGap       float64
	keepFirstChar bool
	normalize     bool

	// Decryption
	password string

	logger *zap.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() extractOptions {
	return extractOptions{
		pages:   nil, // nil means all pages
		rowGap:  rows.DefaultGap,
		cellGap: tables.DefaultConfig().CellGap,
		logger:  zap.NewNop(),
	}
}

// clone creates a deep copy of extractOptions.
func (o extractOptions) clone() extractOptions {
	newOpts := o
	newOpts.pages = nil

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}

// tableConfig returns the reconstruction parameters.
func (o extractOptions) tableConfig() tables.Config {
	return tables.Config{
		RowGap:        o.rowGap,
		CellGap:       o.cellGap,
		KeepFirstChar: o.keepFirstChar,
		Normalize:     o.normalize,
	}
}
