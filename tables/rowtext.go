package tables

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/tsawler/pdfrows/layout"
	"github.com/tsawler/pdfrows/rows"
)

// MergeState is the accumulator of the cell merging fold. Characters are fed
// left to right; a horizontal gap wider than Gap closes the current cell.
type MergeState struct {
	Gap       float64
	LastRight float64
	Cells     []string

	cell []byte
}

// NewMergeState returns an empty accumulator
func NewMergeState(gap float64) *MergeState {
	return &MergeState{Gap: gap}
}

// NewRow resets the right edge so the next character is measured from the
// page's left margin. The open cell is kept.
func (s *MergeState) NewRow() {
	s.LastRight = 0
}

// Step folds one character into the state.
func (s *MergeState) Step(c *layout.Char) {
	if c.BBox.X0-s.LastRight > s.Gap {
		s.flush()
	}
	s.cell = append(s.cell, c.Text...)
	s.LastRight = c.BBox.X1
}

// Cell returns the text of the open cell
func (s *MergeState) Cell() string {
	return string(s.cell)
}

// Finish closes the open cell, even when empty, and returns all cells.
func (s *MergeState) Finish() []string {
	s.flush()
	return s.Cells
}

func (s *MergeState) flush() {
	s.Cells = append(s.Cells, string(s.cell))
	s.cell = s.cell[:0]
}

// RowToText turns characters into cell strings. Characters are grouped by
// canonical row, rows are visited top of the page first, and within a row
// characters are merged left to right by X0. An empty input has no cells.
func RowToText(chars []*layout.Char, rm *rows.RowMap, gap float64) ([]string, error) {
	if len(chars) == 0 {
		return nil, nil
	}

	byRow := make(map[float64][]*layout.Char)
	var keys []float64
	for _, c := range chars {
		key, err := rm.Lookup(c.BBox.Y0)
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", c.Text, err)
		}
		if _, ok := byRow[key]; !ok {
			keys = append(keys, key)
		}
		byRow[key] = append(byRow[key], c)
	}
	slices.SortFunc(keys, func(x, y float64) int { return cmp.Compare(y, x) })

	state := NewMergeState(gap)
	for _, key := range keys {
		row := byRow[key]
		slices.SortStableFunc(row, func(a, b *layout.Char) int {
			return cmp.Compare(a.BBox.X0, b.BBox.X0)
		})

		state.NewRow()
		for _, c := range row {
			state.Step(c)
		}
	}

	return state.Finish(), nil
}
