// Package model provides the user-facing result types of table extraction.
//
// # Document Structure
//
// A [Document] holds metadata and one [Page] per processed page. Each page
// carries the flat cell sequence (Cells) and the same cells grouped by row
// (Table):
//
//	doc, _, err := pdfrows.Open("report.pdf").Document()
//	for _, page := range doc.Pages {
//	    fmt.Println(page.Number, page.Cells)
//	}
//
// # Tables
//
// [Table] rows are ordered top to bottom and may have different lengths.
// Export methods:
//
//   - ToMarkdown() - pipe table, short rows padded for display
//   - ToCSV() - one record per row, ragged rows kept
//   - ToHTML() / WriteHTML() - an HTML <table> element
//
// # Geometry
//
// [BBox] is a corner-form rectangle (X0, Y0, X1, Y1) in PDF coordinates with
// helpers for width, height, union, overlap and horizontal distance.
package model
