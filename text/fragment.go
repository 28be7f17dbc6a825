package text

import "strings"

// Fragment is a single positioned glyph as reported by a PDF parser or an
// OCR engine. X, Y is the glyph origin on the baseline in PDF user space
// (origin bottom-left, y growing upward).
type Fragment struct {
	Text     string
	X, Y     float64
	Width    float64
	Height   float64
	FontName string
	FontSize float64
}

// Right returns the right edge X coordinate
func (f Fragment) Right() float64 {
	return f.X + f.Width
}

// Top returns the top edge Y coordinate. When the parser reports no glyph
// height the font size is used instead.
func (f Fragment) Top() float64 {
	h := f.Height
	if h <= 0 {
		h = f.FontSize
	}
	return f.Y + h
}

// IsSpace reports whether the fragment renders only whitespace.
func (f Fragment) IsSpace() bool {
	return strings.TrimSpace(f.Text) == ""
}

// IsEmpty reports whether the fragment carries no text at all.
func (f Fragment) IsEmpty() bool {
	return f.Text == ""
}
