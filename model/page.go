package model

// Page represents a single processed page
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in points
	Height float64 // Page height in points

	// Cells is the flat cell sequence: rows top to bottom, cells left to
	// right, row boundaries dropped.
	Cells []string

	// Table holds the same cells grouped by row. Nil when the page has no
	// text.
	Table *Table

	// Rects is the number of rectangles found on the page. They are not
	// used to build the table.
	Rects int
}

// NewPage creates a new page with given dimensions
func NewPage(number int, width, height float64) *Page {
	return &Page{
		Number: number,
		Width:  width,
		Height: height,
	}
}

// HasText reports whether any cell on the page carries text.
func (p *Page) HasText() bool {
	for _, c := range p.Cells {
		if c != "" {
			return true
		}
	}
	return false
}
