package pdfrows

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/tsawler/pdfrows/layout"
	"github.com/tsawler/pdfrows/model"
	"github.com/tsawler/pdfrows/reader"
	"github.com/tsawler/pdfrows/tables"
)

// extractedPage holds the reconstruction of a single page.
type extractedPage struct {
	number int
	width  float64
	height float64
	result *tables.Result
}

// Extractor provides a fluent interface for extracting tables from PDFs.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source (a file, an open reader, or analyzed pages)
	filename string
	reader   *reader.Reader
	layouts  []*layout.Page

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options extractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during configuration
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
// A reader already opened by e stays owned by e, so terminal operations on
// the copy leave it open.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		reader:       e.reader,
		layouts:      e.layouts,
		ownsReader:   false,
		readerOpened: e.readerOpened,
		options:      e.options.clone(),
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// ensureReader opens the reader if not already open and checks that text
// may be extracted.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return e.checkPermissions()
	}
	if e.filename == "" {
		return ErrNoSource
	}

	r, err := reader.OpenWithPassword(e.filename, e.options.password)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true

	e.options.logger.Debug("opened document",
		zap.String("file", e.filename),
		zap.Int("pages", r.PageCount()),
	)

	if err := e.checkPermissions(); err != nil {
		e.Close()
		return err
	}
	return nil
}

func (e *Extractor) checkPermissions() error {
	if e.reader == nil {
		return nil
	}
	return e.reader.CheckExtractable()
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times. Extractors derived from e after
// it opened the document share its reader and must not be used after Close.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		e.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to extract from (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	tables, _, err := pdfrows.Open("doc.pdf").Pages(1, 3, 5).Tables()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to extract (1-indexed, inclusive).
//
// Example:
//
//	tables, _, err := pdfrows.Open("doc.pdf").PageRange(5, 10).Tables()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// RowGap sets the baseline clustering tolerance in points (default 1).
// Baselines closer than gap to their neighbour share a row. The gap must be
// positive.
func (e *Extractor) RowGap(gap float64) *Extractor {
	newExt := e.clone()
	if newExt.err == nil && (math.IsNaN(gap) || gap <= 0) {
		newExt.err = fmt.Errorf("%w: row gap must be positive, got %g", ErrInvalidOption, gap)
		return newExt
	}
	newExt.options.rowGap = gap
	return newExt
}

// CellGap sets the largest horizontal gap between two characters of one
// cell in points (default 1).
//
// Example:
//
//	tables, _, err := pdfrows.Open("doc.pdf").CellGap(3).Tables()
func (e *Extractor) CellGap(gap float64) *Extractor {
	newExt := e.clone()
	if newExt.err == nil && (math.IsNaN(gap) || gap < 0) {
		newExt.err = fmt.Errorf("%w: cell gap must not be negative, got %g", ErrInvalidOption, gap)
		return newExt
	}
	newExt.options.cellGap = gap
	return newExt
}

// KeepFirstChar keeps the character that opens each row. By default it is
// dropped: each row loses the first glyph met in extraction order, which is
// not necessarily the leftmost one.
func (e *Extractor) KeepFirstChar() *Extractor {
	newExt := e.clone()
	newExt.options.keepFirstChar = true
	return newExt
}

// Normalize applies Unicode NFKC to every cell, so ligatures and
// full-width forms come out as plain text.
func (e *Extractor) Normalize() *Extractor {
	newExt := e.clone()
	newExt.options.normalize = true
	return newExt
}

// Password sets the password used to open an encrypted document.
func (e *Extractor) Password(password string) *Extractor {
	newExt := e.clone()
	newExt.options.password = password
	return newExt
}

// Logger sets the logger for debug output. A nil logger disables logging.
func (e *Extractor) Logger(logger *zap.Logger) *Extractor {
	newExt := e.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newExt.options.logger = logger
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Tables extracts one flat cell sequence per selected page, in page order.
// Within a page, rows run top to bottom and cells left to right; row
// boundaries are not kept. This is a terminal operation that closes the
// underlying reader.
//
// Example:
//
//	tables, warnings, err := pdfrows.Open("document.pdf").Tables()
//	for i, cells := range tables {
//	    fmt.Println(i+1, strings.Join(cells, " | "))
//	}
func (e *Extractor) Tables() ([][]string, []Warning, error) {
	pages, warnings, err := e.extract()
	if err != nil {
		return nil, nil, err
	}

	out := make([][]string, len(pages))
	for i, p := range pages {
		out[i] = p.result.Cells
	}
	return out, warnings, nil
}

// Grids extracts one grid per selected page: one row of cells per row band,
// top to bottom. Concatenating a grid's rows gives the page's entry in
// Tables(). This is a terminal operation that closes the underlying reader.
func (e *Extractor) Grids() ([][][]string, []Warning, error) {
	pages, warnings, err := e.extract()
	if err != nil {
		return nil, nil, err
	}

	out := make([][][]string, len(pages))
	for i, p := range pages {
		out[i] = p.result.Grid
	}
	return out, warnings, nil
}

// Document extracts the selected pages into a model.Document with the
// document metadata. This is a terminal operation that closes the
// underlying reader.
//
// Example:
//
//	doc, _, err := pdfrows.Open("document.pdf").Document()
//	for _, p := range doc.Pages {
//	    if p.Table != nil {
//	        fmt.Println(p.Table.ToMarkdown())
//	    }
//	}
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	doc := model.NewDocument()
	if e.reader != nil {
		doc.Metadata = e.reader.Metadata()
	}

	pages, warnings, err := e.extractOpen()
	if err != nil {
		return nil, nil, err
	}

	for _, p := range pages {
		page := model.NewPage(p.number, p.width, p.height)
		page.Cells = p.result.Cells
		page.Rects = p.result.Rects
		if len(p.result.Grid) > 0 {
			page.Table = p.result.Table(p.number)
		}
		doc.AddPage(page)
	}

	return doc, warnings, nil
}

// PageCount returns the total number of pages in the document.
// Note: This does NOT close the reader, allowing further operations.
//
// Example:
//
//	ext := pdfrows.Open("document.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureReader(); err != nil {
		return 0, err
	}
	return e.pageCount(), nil
}

// Layouts returns the analyzed layout of each selected page. This is a
// terminal operation that closes the underlying reader.
func (e *Extractor) Layouts() ([]*layout.Page, error) {
	if e.err != nil {
		return nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, err
	}
	defer e.Close()

	numbers, err := e.resolvePages()
	if err != nil {
		return nil, err
	}

	out := make([]*layout.Page, 0, len(numbers))
	for _, n := range numbers {
		page, err := e.layout(n)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", n, err)
		}
		out = append(out, page)
	}
	return out, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// extract opens the source, reconstructs every selected page and closes the
// source again.
func (e *Extractor) extract() ([]extractedPage, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	return e.extractOpen()
}

// extractOpen reconstructs every selected page of an open source. Any page
// error fails the whole call.
func (e *Extractor) extractOpen() ([]extractedPage, []Warning, error) {
	numbers, err := e.resolvePages()
	if err != nil {
		return nil, nil, err
	}

	detector := tables.NewRowDetector().WithLogger(e.options.logger)
	if err := detector.Configure(e.options.tableConfig()); err != nil {
		return nil, nil, err
	}

	warnings := append([]Warning(nil), e.warnings...)
	pages := make([]extractedPage, 0, len(numbers))

	for _, n := range numbers {
		page, err := e.layout(n)
		if err != nil {
			return nil, nil, fmt.Errorf("page %d: %w", n, err)
		}

		res, err := detector.Run(page)
		if err != nil {
			return nil, nil, fmt.Errorf("page %d: %w", n, err)
		}

		warnings = append(warnings, pageWarnings(n, res, e.options.keepFirstChar)...)
		pages = append(pages, extractedPage{
			number: n,
			width:  page.Width,
			height: page.Height,
			result: res,
		})
	}

	e.options.logger.Debug("extracted tables",
		zap.Int("pages", len(pages)),
		zap.Int("warnings", len(warnings)),
	)

	return pages, warnings, nil
}

func pageWarnings(number int, res *tables.Result, keepFirst bool) []Warning {
	var warnings []Warning
	if res.TextBoxes == 0 {
		warnings = append(warnings, Warning{
			Code:    WarnNoText,
			Page:    number,
			Message: "no text found; the page may be scanned, try OCR",
		})
	}
	if res.Dropped > 0 && !keepFirst {
		warnings = append(warnings, Warning{
			Code:    WarnDroppedChars,
			Page:    number,
			Message: fmt.Sprintf("%d row-opening characters dropped", res.Dropped),
		})
	}
	if res.Rects > 0 {
		warnings = append(warnings, Warning{
			Code:    WarnIgnoredRects,
			Page:    number,
			Message: fmt.Sprintf("%d drawn rectangles ignored", res.Rects),
		})
	}
	return warnings
}

func (e *Extractor) pageCount() int {
	if e.reader != nil {
		return e.reader.PageCount()
	}
	return len(e.layouts)
}

// layout returns the analyzed page with the given 1-indexed number.
func (e *Extractor) layout(number int) (*layout.Page, error) {
	if e.reader != nil {
		return e.reader.Layout(number)
	}
	if page := e.layouts[number-1]; page != nil {
		return page, nil
	}
	return &layout.Page{Number: number}, nil
}

// resolvePages validates the requested 1-indexed page numbers and returns
// them sorted without duplicates. If no pages are specified, returns all
// pages.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.pageCount()

	// If no pages specified, use all pages
	if len(e.options.pages) == 0 {
		numbers := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			numbers[i] = i + 1
		}
		return numbers, nil
	}

	seen := make(map[int]bool)
	var numbers []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("%w: %d (1-%d)", ErrPageOutOfRange, p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			numbers = append(numbers, p)
		}
	}

	// Sort pages in order
	sort.Ints(numbers)
	return numbers, nil
}
