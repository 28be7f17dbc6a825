package model

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Table is the reconstructed table of one page. Rows are ordered top to
// bottom and cells left to right. Rows may hold different numbers of cells;
// nothing here pads or validates the shape.
type Table struct {
	Rows  [][]Cell
	BBox  BBox
	Page  int       // 1-indexed page number the table came from
	RowYs []float64 // canonical baseline of each row, parallel to Rows
}

// Cell represents a table cell
type Cell struct {
	Text string
	BBox BBox
}

// NewTable creates a table of empty cells with the given dimensions
func NewTable(rows, cols int) *Table {
	table := &Table{Rows: make([][]Cell, rows)}
	for i := 0; i < rows; i++ {
		table.Rows[i] = make([]Cell, cols)
	}
	return table
}

// NewTableFromStrings builds a table from row-major cell text.
func NewTableFromStrings(rows [][]string) *Table {
	table := &Table{Rows: make([][]Cell, len(rows))}
	for i, row := range rows {
		table.Rows[i] = make([]Cell, len(row))
		for j, text := range row {
			table.Rows[i][j] = Cell{Text: text}
		}
	}
	return table
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the number of cells in the widest row
func (t *Table) ColCount() int {
	cols := 0
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// IsRectangular reports whether every row holds the same number of cells.
func (t *Table) IsRectangular() bool {
	for _, row := range t.Rows {
		if len(row) != len(t.Rows[0]) {
			return false
		}
	}
	return true
}

// GetCell returns the cell at the given row and column (0-indexed)
func (t *Table) GetCell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return nil
	}
	return &t.Rows[row][col]
}

// SetCell sets the cell at the given position
func (t *Table) SetCell(row, col int, cell Cell) error {
	if row < 0 || row >= len(t.Rows) {
		return fmt.Errorf("row index %d out of bounds", row)
	}
	if col < 0 || col >= len(t.Rows[row]) {
		return fmt.Errorf("col index %d out of bounds", col)
	}
	t.Rows[row][col] = cell
	return nil
}

// Strings returns the cell text row by row.
func (t *Table) Strings() [][]string {
	out := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = cell.Text
		}
	}
	return out
}

// Flat returns every cell's text in row order, dropping row boundaries.
func (t *Table) Flat() []string {
	var out []string
	for _, row := range t.Rows {
		for _, cell := range row {
			out = append(out, cell.Text)
		}
	}
	return out
}

// GetText returns the table as tab-separated lines.
func (t *Table) GetText() string {
	var sb strings.Builder
	for _, row := range t.Rows {
		for j, cell := range row {
			sb.WriteString(cell.Text)
			if j < len(row)-1 {
				sb.WriteString("\t")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToMarkdown converts the table to markdown format. The first row is the
// header; short rows are padded with empty cells to the widest row.
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	cols := t.ColCount()
	if cols == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []Cell) {
		for j := 0; j < cols; j++ {
			text := ""
			if j < len(row) {
				text = strings.ReplaceAll(row[j].Text, "\n", " ")
				text = strings.ReplaceAll(text, "|", "\\|")
			}
			sb.WriteString("| ")
			sb.WriteString(text)
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(t.Rows[0])
	for j := 0; j < cols; j++ {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}

	return sb.String()
}

// WriteCSV writes the table as CSV to w. Rows keep their own length; a row
// without cells becomes a blank line.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	for _, row := range t.Strings() {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToCSV converts the table to CSV format.
func (t *Table) ToCSV() string {
	var buf bytes.Buffer
	// Writing into a bytes.Buffer cannot fail.
	_ = t.WriteCSV(&buf)
	return buf.String()
}
