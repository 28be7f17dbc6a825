package pdfrows

import (
	"fmt"
	"strings"
)

// WarningCode identifies a kind of non-fatal issue.
type WarningCode string

const (
	// WarnNoText means a page has no horizontal text boxes, so its table is
	// empty.
	WarnNoText WarningCode = "no-text"

	// WarnDroppedChars reports characters lost because they opened a row
	// bucket. Use KeepFirstChar to keep them.
	WarnDroppedChars WarningCode = "dropped-chars"

	// WarnIgnoredRects reports drawn rectangles, which are not used to
	// build tables.
	WarnIgnoredRects WarningCode = "ignored-rects"
)

// Warning is a non-fatal issue found while extracting.
type Warning struct {
	Code    WarningCode
	Page    int // 1-indexed, 0 for document-wide warnings
	Message string
}

// String returns a human readable form of the warning
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single line for logs.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// HasWarning reports whether any warning has the given code.
func HasWarning(warnings []Warning, code WarningCode) bool {
	for _, w := range warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}
