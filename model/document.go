package model

// Document is the extraction result for a whole file: document metadata and
// one Page per processed page, in document order.
type Document struct {
	Metadata Metadata
	Pages    []*Page
}

// Metadata contains document-level information read from the Info
// dictionary. Missing entries stay empty.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document
func (d *Document) AddPage(page *Page) {
	d.Pages = append(d.Pages, page)
}

// PageCount returns the number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// GetPage returns the page with the given 1-indexed number, or nil.
func (d *Document) GetPage(number int) *Page {
	for _, p := range d.Pages {
		if p.Number == number {
			return p
		}
	}
	return nil
}

// Tables returns the flat cell sequence of every page, in page order.
func (d *Document) Tables() [][]string {
	out := make([][]string, len(d.Pages))
	for i, p := range d.Pages {
		out[i] = p.Cells
	}
	return out
}
