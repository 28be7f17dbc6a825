package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/pdfrows/layout"
	"github.com/tsawler/pdfrows/model"
	"github.com/tsawler/pdfrows/text"
)

var (
	// ErrExtractionDenied is returned when the document's permission flags
	// forbid copying text.
	ErrExtractionDenied = errors.New("text extraction not allowed")

	// ErrMalformedPage is returned when a page's content stream cannot be
	// interpreted.
	ErrMalformedPage = errors.New("malformed page content")

	// ErrInvalidPassword is returned when an encrypted document cannot be
	// opened with the given password.
	ErrInvalidPassword = pdf.ErrInvalidPassword

	// ErrPageOutOfRange is returned for a page number outside 1..PageCount.
	ErrPageOutOfRange = errors.New("page number out of range")
)

// permExtract is bit 5 of the /P permission flags.
const permExtract = 1 << 4

// maxTreeDepth bounds the /Parent walk so a cyclic page tree terminates.
const maxTreeDepth = 64

// US Letter, used when no MediaBox is found.
const (
	defaultPageWidth  = 612
	defaultPageHeight = 792
)

// Reader represents an open PDF document
type Reader struct {
	file     *os.File // nil when the caller owns the underlying reader
	pdf      *pdf.Reader
	analyzer *layout.Analyzer
}

// Open opens an unencrypted PDF file, or one encrypted with an empty user
// password.
func Open(filename string) (*Reader, error) {
	return OpenWithPassword(filename, "")
}

// OpenWithPassword opens a PDF file, decrypting it with password if needed.
func OpenWithPassword(filename, password string) (*Reader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	r, err := NewReader(file, info.Size(), password)
	if err != nil {
		file.Close()
		return nil, err
	}
	r.file = file

	return r, nil
}

// NewReader reads a PDF document of the given size from ra. The caller keeps
// ownership of ra; Close on the returned Reader does not close it.
func NewReader(ra io.ReaderAt, size int64, password string) (r *Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r, err = nil, fmt.Errorf("failed to parse pdf: %v", rec)
		}
	}()

	var pr *pdf.Reader
	if password == "" {
		pr, err = pdf.NewReader(ra, size)
	} else {
		pr, err = pdf.NewReaderEncrypted(ra, size, passwordOnce(password))
	}
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("failed to parse pdf: %w", err)
	}

	return &Reader{
		pdf:      pr,
		analyzer: layout.NewAnalyzer(),
	}, nil
}

// passwordOnce offers the password a single time. The library keeps asking
// until it gets an empty string.
func passwordOnce(password string) func() string {
	used := false
	return func() string {
		if used {
			return ""
		}
		used = true
		return password
	}
}

// Close closes the file opened by Open
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// SetAnalyzer replaces the layout analyzer used by Layout.
func (r *Reader) SetAnalyzer(a *layout.Analyzer) {
	if a != nil {
		r.analyzer = a
	}
}

// PageCount returns the number of pages in the document
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// Extractable reports whether the permission flags allow text extraction.
// Unencrypted documents always do.
func (r *Reader) Extractable() bool {
	enc := r.pdf.Trailer().Key("Encrypt")
	if enc.IsNull() {
		return true
	}
	p := enc.Key("P")
	if p.Kind() != pdf.Integer {
		return true
	}
	return PermitsExtraction(p.Int64())
}

// CheckExtractable returns ErrExtractionDenied when Extractable is false.
func (r *Reader) CheckExtractable() error {
	if !r.Extractable() {
		return ErrExtractionDenied
	}
	return nil
}

// PermitsExtraction reports whether the /P permission flags have the
// copy-text bit set.
func PermitsExtraction(p int64) bool {
	return p&permExtract != 0
}

// Metadata returns the document information dictionary
func (r *Reader) Metadata() model.Metadata {
	info := r.pdf.Trailer().Key("Info")
	return model.Metadata{
		Title:    info.Key("Title").Text(),
		Author:   info.Key("Author").Text(),
		Subject:  info.Key("Subject").Text(),
		Keywords: info.Key("Keywords").Text(),
		Creator:  info.Key("Creator").Text(),
		Producer: info.Key("Producer").Text(),
	}
}

func (r *Reader) page(number int) (pdf.Page, error) {
	if number < 1 || number > r.pdf.NumPage() {
		return pdf.Page{}, fmt.Errorf("%w: %d", ErrPageOutOfRange, number)
	}
	p := r.pdf.Page(number)
	if p.V.IsNull() {
		return pdf.Page{}, fmt.Errorf("%w: %d", ErrPageOutOfRange, number)
	}
	return p, nil
}

// PageSize returns the width and height of a page (1-indexed) from its
// MediaBox, which may be inherited from the page tree. At most maxTreeDepth
// ancestors are searched.
func (r *Reader) PageSize(number int) (float64, float64, error) {
	p, err := r.page(number)
	if err != nil {
		return 0, 0, err
	}

	v := p.V
	for depth := 0; depth < maxTreeDepth && !v.IsNull(); depth, v = depth+1, v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Kind() != pdf.Array || box.Len() != 4 {
			continue
		}
		w := box.Index(2).Float64() - box.Index(0).Float64()
		h := box.Index(3).Float64() - box.Index(1).Float64()
		if w < 0 {
			w = -w
		}
		if h < 0 {
			h = -h
		}
		return w, h, nil
	}

	return defaultPageWidth, defaultPageHeight, nil
}

// Content interprets a page (1-indexed) and returns its glyphs in content
// stream order and its drawn rectangles.
func (r *Reader) Content(number int) ([]text.Fragment, []model.BBox, error) {
	p, err := r.page(number)
	if err != nil {
		return nil, nil, err
	}

	content, err := safeContent(p)
	if err != nil {
		return nil, nil, fmt.Errorf("page %d: %w", number, err)
	}

	fragments := make([]text.Fragment, 0, len(content.Text))
	for _, t := range content.Text {
		fragments = append(fragments, text.Fragment{
			Text:     t.S,
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
			Height:   t.FontSize,
			FontName: t.Font,
			FontSize: t.FontSize,
		})
	}

	rects := make([]model.BBox, 0, len(content.Rect))
	for _, rc := range content.Rect {
		rects = append(rects, model.NewBBoxFromPoints(
			model.Point{X: rc.Min.X, Y: rc.Min.Y},
			model.Point{X: rc.Max.X, Y: rc.Max.Y},
		))
	}

	return fragments, rects, nil
}

// Fragments returns only the glyphs of a page (1-indexed).
func (r *Reader) Fragments(number int) ([]text.Fragment, error) {
	fragments, _, err := r.Content(number)
	return fragments, err
}

// Layout interprets a page (1-indexed) and runs the layout analyzer over it.
func (r *Reader) Layout(number int) (*layout.Page, error) {
	fragments, rects, err := r.Content(number)
	if err != nil {
		return nil, err
	}
	w, h, err := r.PageSize(number)
	if err != nil {
		return nil, err
	}
	return r.analyzer.Analyze(number, w, h, fragments, rects), nil
}

// safeContent converts panics raised by the content interpreter into
// ErrMalformedPage.
func safeContent(p pdf.Page) (c pdf.Content, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrMalformedPage, rec)
		}
	}()
	return p.Content(), nil
}
