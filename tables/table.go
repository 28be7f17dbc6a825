package tables

import (
	"fmt"

	"github.com/tsawler/pdfrows/layout"
	"github.com/tsawler/pdfrows/model"
	"github.com/tsawler/pdfrows/rows"
	"github.com/tsawler/pdfrows/text"
)

// Result is the reconstructed table of one page.
type Result struct {
	// Cells is the flat cell sequence, rows top to bottom
	Cells []string

	// Grid holds the same cells grouped by row bucket. A bucket whose only
	// character was dropped becomes an empty row.
	Grid [][]string

	// RowYs is the canonical baseline of each grid row
	RowYs []float64

	TextBoxes int
	Rects     int
	Other     int
	Dropped   int // characters lost to bucket creation

	bbox model.BBox
}

// Table converts the grid into a model.Table for the given page number.
func (r *Result) Table(page int) *model.Table {
	t := model.NewTableFromStrings(r.Grid)
	t.Page = page
	t.BBox = r.bbox
	t.RowYs = append([]float64(nil), r.RowYs...)
	return t
}

// Partition splits a page's top-level nodes into horizontal text boxes,
// rectangles and everything else, keeping page order within each group.
func Partition(page *layout.Page) (boxes []*layout.Container, rects []*layout.Rect, other []layout.Node) {
	for _, n := range page.Nodes {
		switch v := n.(type) {
		case *layout.Container:
			if v.Kind == layout.KindTextBoxHorizontal {
				boxes = append(boxes, v)
				continue
			}
			other = append(other, v)
		case *layout.Rect:
			rects = append(rects, v)
		default:
			other = append(other, n)
		}
	}
	return boxes, rects, other
}

// PageToTable reconstructs the table of one page from the characters of its
// horizontal text boxes. Rectangles are counted but not used. An unmapped
// baseline fails the page with an error wrapping rows.ErrRowNotFound.
func PageToTable(page *layout.Page, cfg Config) (*Result, error) {
	res := &Result{}
	if page == nil {
		return res, nil
	}

	boxes, rects, other := Partition(page)
	res.TextBoxes = len(boxes)
	res.Rects = len(rects)
	res.Other = len(other)

	var chars []*layout.Char
	for _, box := range boxes {
		chars = append(chars, layout.ExtractCharacters(box)...)
		res.bbox = res.bbox.Union(box.BBox)
	}
	if len(chars) == 0 {
		return res, nil
	}

	ys := make([]float64, len(chars))
	for i, c := range chars {
		ys[i] = c.BBox.Y0
	}
	rm := rows.NewRowMap(ys, cfg.RowGap)

	buckets, err := BucketByRow(chars, rm, cfg.KeepFirstChar)
	if err != nil {
		return nil, err
	}
	res.Dropped = len(buckets.Dropped())

	for _, key := range buckets.Keys() {
		cells, err := RowToText(buckets.Chars(key), rm, cfg.CellGap)
		if err != nil {
			return nil, fmt.Errorf("row %g: %w", key, err)
		}
		if cells == nil {
			cells = []string{}
		}
		if cfg.Normalize {
			text.NormalizeAll(cells)
		}

		res.Grid = append(res.Grid, cells)
		res.RowYs = append(res.RowYs, key)
		res.Cells = append(res.Cells, cells...)
	}

	return res, nil
}

// PageToGrid is PageToTable reduced to its grid of cell strings.
func PageToGrid(page *layout.Page, cfg Config) ([][]string, error) {
	res, err := PageToTable(page, cfg)
	if err != nil {
		return nil, err
	}
	return res.Grid, nil
}
