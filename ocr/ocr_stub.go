//go:build !ocr

// Package ocr recognizes the characters of page images so scanned tables
// can go through the same row reconstruction as PDF text.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// Recognition returns ErrOCRNotEnabled; ImageSize and the box conversion
// helpers work in both builds.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
package ocr

import (
	"errors"

	"github.com/tsawler/pdfrows/layout"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// DefaultMinConfidence drops symbols Tesseract is unsure about.
const DefaultMinConfidence = 30

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// RecognizeImage returns ErrOCRNotEnabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// Symbols returns ErrOCRNotEnabled.
func (c *Client) Symbols(imageData []byte) ([]Box, error) {
	return nil, ErrOCRNotEnabled
}

// Page returns ErrOCRNotEnabled.
func (c *Client) Page(number int, imageData []byte) (*layout.Page, error) {
	return nil, ErrOCRNotEnabled
}

// SetLanguage returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns ErrOCRNotEnabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
