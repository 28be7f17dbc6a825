//go:build ocr

// Package ocr recognizes the characters of page images so scanned tables
// can go through the same row reconstruction as PDF text.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/pdfrows/layout"
)

// DefaultMinConfidence drops symbols Tesseract is unsure about.
const DefaultMinConfidence = 30

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// Symbols recognizes an image and returns one box per symbol.
func (c *Client) Symbols(imageData []byte) ([]Box, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	found, err := c.client.GetBoundingBoxes(gosseract.RIL_SYMBOL)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes := make([]Box, 0, len(found))
	for _, b := range found {
		boxes = append(boxes, Box{Text: b.Word, Rect: b.Box, Confidence: b.Confidence})
	}
	return boxes, nil
}

// Page recognizes an image and returns its layout as page number.
func (c *Client) Page(number int, imageData []byte) (*layout.Page, error) {
	width, height, _, err := ImageSize(imageData)
	if err != nil {
		return nil, err
	}
	boxes, err := c.Symbols(imageData)
	if err != nil {
		return nil, err
	}
	return PageFromBoxes(number, width, height, boxes, DefaultMinConfidence), nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
