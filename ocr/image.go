package ocr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/pdfrows/layout"
	"github.com/tsawler/pdfrows/text"
)

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes, numbered as in Tesseract.
const (
	PSM_AUTO         PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_BLOCK PageSegMode = 6  // Single uniform block of text
	PSM_SPARSE_TEXT  PageSegMode = 11 // Find as much text as possible
)

// Box is one recognized symbol in image coordinates (origin top-left, y
// growing downward).
type Box struct {
	Text       string
	Rect       image.Rectangle
	Confidence float64 // 0-100
}

// ImageSize returns the pixel dimensions and format name of an encoded
// image without decoding its pixels. PNG, JPEG, BMP, TIFF and WebP are
// recognized.
func ImageSize(data []byte) (width, height int, format string, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to read image header: %w", err)
	}
	return cfg.Width, cfg.Height, format, nil
}

// FragmentsFromBoxes converts recognized symbols to glyph fragments in page
// coordinates (origin bottom-left) for an image of the given height. One
// pixel maps to one point. Symbols below minConfidence and blank symbols are
// skipped.
func FragmentsFromBoxes(boxes []Box, imageHeight int, minConfidence float64) []text.Fragment {
	fragments := make([]text.Fragment, 0, len(boxes))
	for _, b := range boxes {
		if b.Confidence < minConfidence || strings.TrimSpace(b.Text) == "" {
			continue
		}
		r := b.Rect.Canon()
		fragments = append(fragments, text.Fragment{
			Text:     b.Text,
			X:        float64(r.Min.X),
			Y:        float64(imageHeight - r.Max.Y),
			Width:    float64(r.Dx()),
			Height:   float64(r.Dy()),
			FontSize: float64(r.Dy()),
		})
	}
	return fragments
}

// PageFromBoxes builds the layout of an image page from its recognized
// symbols.
func PageFromBoxes(number, width, height int, boxes []Box, minConfidence float64) *layout.Page {
	fragments := FragmentsFromBoxes(boxes, height, minConfidence)
	return layout.NewAnalyzer().Analyze(number, float64(width), float64(height), fragments, nil)
}
