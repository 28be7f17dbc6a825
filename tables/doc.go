// Package tables reconstructs tables from the characters of a page.
//
// No grid lines are used. Characters are grouped into rows by clustering
// their baselines (see package rows), rows are ordered top of the page
// first, and within a row neighbouring characters are merged into one cell
// while the horizontal gap between them stays within [Config.CellGap].
//
// # Pipeline
//
// [PageToTable] runs the full reconstruction for one layout page:
//
//  1. [Partition] the page into text boxes, rectangles and other nodes
//  2. extract characters from the text boxes in layout order
//  3. build a rows.RowMap over the character baselines
//  4. [BucketByRow] and, for each bucket top to bottom, [RowToText]
//
// The flat [Result.Cells] concatenates the rows of [Result.Grid].
//
// # First character of a row
//
// By default the character that opens a row bucket is not stored, so each
// row loses one glyph: the first one encountered in extraction order, which
// is not necessarily the leftmost. Set [Config.KeepFirstChar] to keep it.
//
// # Detectors
//
// [RowDetector] wraps PageToTable behind the [Detector] interface:
//
//	detector := tables.NewRowDetector()
//	table, err := detector.Detect(page)
package tables
