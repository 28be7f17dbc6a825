// Package pdfrows provides a fluent API for extracting tables from PDF files
// by reconstructing rows and cells from character positions.
//
// Basic usage:
//
//	tables, warnings, err := pdfrows.Open("statement.pdf").Tables()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdfrows.FormatWarnings(warnings))
//	}
//
// Each page yields one flat sequence of cell strings, rows top to bottom and
// cells left to right. Grids keeps the row boundaries:
//
//	grids, _, err := pdfrows.Open("statement.pdf").
//	    Pages(1, 2).
//	    CellGap(2).
//	    KeepFirstChar().
//	    Grids()
//
// For advanced use cases the reader, layout, rows and tables packages are
// also available.
package pdfrows

import (
	"github.com/tsawler/pdfrows/layout"
	"github.com/tsawler/pdfrows/reader"
)

// Open returns an Extractor for a PDF file. The file is opened lazily by the
// first operation that needs it and closed by terminal operations such as
// Tables().
//
// Example:
//
//	tables, warnings, err := pdfrows.Open("document.pdf").Tables()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened reader.Reader.
// Note: The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	tables, warnings, err := pdfrows.FromReader(r).Tables()
func FromReader(r *reader.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// FromLayouts creates an Extractor over pages that were already analyzed,
// for example by the ocr package. Page selection refers to positions in
// pages, starting at 1.
func FromLayouts(pages []*layout.Page) *Extractor {
	return &Extractor{
		layouts:      pages,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// GetTables returns one flat cell sequence per page of the PDF at path,
// using default settings.
func GetTables(path string) ([][]string, error) {
	tables, _, err := Open(path).Tables()
	return tables, err
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pdfrows.Must(pdfrows.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustTables is a helper that wraps a call to Tables(), Grids() or
// Document() and panics if the error is non-nil. Warnings are discarded.
//
// Example:
//
//	tables := pdfrows.MustTables(pdfrows.Open("document.pdf").Tables())
func MustTables[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
