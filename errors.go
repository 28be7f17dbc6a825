package pdfrows

import (
	"errors"

	"github.com/tsawler/pdfrows/reader"
	"github.com/tsawler/pdfrows/rows"
	"github.com/tsawler/pdfrows/tables"
)

var (
	// ErrExtractionDenied is returned when the document forbids text
	// extraction. Nothing is extracted.
	ErrExtractionDenied = reader.ErrExtractionDenied

	// ErrRowNotFound is returned when a character's baseline has no row
	// band. The whole call fails.
	ErrRowNotFound = rows.ErrRowNotFound

	// ErrMalformedPage is returned when a page's content cannot be
	// interpreted.
	ErrMalformedPage = reader.ErrMalformedPage

	// ErrInvalidPassword is returned when an encrypted document cannot be
	// opened with the configured password.
	ErrInvalidPassword = reader.ErrInvalidPassword

	// ErrPageOutOfRange is returned when a selected page does not exist.
	ErrPageOutOfRange = reader.ErrPageOutOfRange

	// ErrInvalidOption is returned by terminal operations when a chain
	// method was given an unusable value.
	ErrInvalidOption = tables.ErrInvalidConfig

	// ErrNoSource is returned when an Extractor has neither a file nor
	// pages to work on.
	ErrNoSource = errors.New("no filename specified")
)
