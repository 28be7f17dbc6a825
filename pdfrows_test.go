package pdfrows

import (
	"bytes"
	"crypto/md5"
	"crypto/rc4"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tsawler/pdfrows/layout"
	"github.com/tsawler/pdfrows/model"
	"github.com/tsawler/pdfrows/text"
)

func frag(s string, x, y float64) text.Fragment {
	return text.Fragment{Text: s, X: x, Y: y, Width: 5, Height: 10, FontSize: 10}
}

// sampleLayouts returns a two-page document: a small table on page 1 and an
// empty page with one drawn rectangle on page 2.
func sampleLayouts() []*layout.Page {
	a := layout.NewAnalyzer()
	page1 := a.Analyze(1, 612, 792, []text.Fragment{
		frag("N", 0, 700), frag("a", 5, 700), frag("m", 10, 700), frag("e", 15, 700),
		frag("Q", 40, 700), frag("t", 45, 700), frag("y", 50, 700),
		frag("a", 0, 688), frag("1", 40, 688),
	}, nil)
	page2 := a.Analyze(2, 612, 792, nil, []model.BBox{{X0: 10, Y0: 10, X1: 100, Y1: 50}})
	return []*layout.Page{page1, page2}
}

func TestFromLayouts_Tables(t *testing.T) {
	tables, warnings, err := FromLayouts(sampleLayouts()).Tables()
	if err != nil {
		t.Fatalf("Tables() error: %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("Tables() = %d pages, want 2", len(tables))
	}

	want := []string{"", "ame", "Qty", "", "1"}
	if !reflect.DeepEqual(tables[0], want) {
		t.Errorf("page 1 = %q, want %q", tables[0], want)
	}
	if len(tables[1]) != 0 {
		t.Errorf("page 2 = %q, want empty", tables[1])
	}

	for _, code := range []WarningCode{WarnDroppedChars, WarnNoText, WarnIgnoredRects} {
		if !HasWarning(warnings, code) {
			t.Errorf("warnings %v missing %s", warnings, code)
		}
	}
}

func TestKeepFirstChar(t *testing.T) {
	tables, warnings, err := FromLayouts(sampleLayouts()).KeepFirstChar().Tables()
	if err != nil {
		t.Fatalf("Tables() error: %v", err)
	}

	want := []string{"Name", "Qty", "a", "1"}
	if !reflect.DeepEqual(tables[0], want) {
		t.Errorf("page 1 = %q, want %q", tables[0], want)
	}
	if HasWarning(warnings, WarnDroppedChars) {
		t.Errorf("unexpected %s warning", WarnDroppedChars)
	}
}

func TestGrids(t *testing.T) {
	grids, _, err := FromLayouts(sampleLayouts()).KeepFirstChar().Grids()
	if err != nil {
		t.Fatalf("Grids() error: %v", err)
	}

	want := [][]string{{"Name", "Qty"}, {"a", "1"}}
	if !reflect.DeepEqual(grids[0], want) {
		t.Errorf("page 1 grid = %q, want %q", grids[0], want)
	}
	if len(grids[1]) != 0 {
		t.Errorf("page 2 grid = %q, want empty", grids[1])
	}
}

func TestGridsMatchTables(t *testing.T) {
	ext := FromLayouts(sampleLayouts())
	tables := MustTables(ext.Tables())
	grids := MustTables(ext.Grids())

	for i := range tables {
		var flat []string
		for _, row := range grids[i] {
			flat = append(flat, row...)
		}
		if !reflect.DeepEqual(flat, tables[i]) {
			t.Errorf("page %d: grid rows %q, table %q", i+1, flat, tables[i])
		}
	}
}

func TestPageSelection(t *testing.T) {
	tests := []struct {
		name  string
		ext   *Extractor
		pages int
	}{
		{"all", FromLayouts(sampleLayouts()), 2},
		{"single", FromLayouts(sampleLayouts()).Pages(2), 1},
		{"duplicates", FromLayouts(sampleLayouts()).Pages(2, 2, 1), 2},
		{"range", FromLayouts(sampleLayouts()).PageRange(1, 2), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables, _, err := tt.ext.Tables()
			if err != nil {
				t.Fatalf("Tables() error: %v", err)
			}
			if len(tables) != tt.pages {
				t.Errorf("Tables() = %d pages, want %d", len(tables), tt.pages)
			}
		})
	}
}

func TestPageSelection_OutOfRange(t *testing.T) {
	if _, _, err := FromLayouts(sampleLayouts()).Pages(3).Tables(); !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("Pages(3) error = %v, want ErrPageOutOfRange", err)
	}
	if _, _, err := FromLayouts(sampleLayouts()).Pages(0).Tables(); err == nil {
		t.Error("expected error for page 0")
	}
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		ext  *Extractor
	}{
		{"zero row gap", FromLayouts(sampleLayouts()).RowGap(0)},
		{"negative cell gap", FromLayouts(sampleLayouts()).CellGap(-1)},
		{"error survives chaining", FromLayouts(sampleLayouts()).RowGap(-2).CellGap(3).KeepFirstChar()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.ext.Tables()
			if !errors.Is(err, ErrInvalidOption) {
				t.Errorf("Tables() error = %v, want ErrInvalidOption", err)
			}
		})
	}
}

func TestImmutability(t *testing.T) {
	base := FromLayouts(sampleLayouts())
	keep := base.KeepFirstChar()
	_ = base.Pages(2)

	baseTables := MustTables(base.Tables())
	keepTables := MustTables(keep.Tables())

	if len(baseTables) != 2 {
		t.Errorf("base Tables() = %d pages, want 2", len(baseTables))
	}
	if reflect.DeepEqual(baseTables[0], keepTables[0]) {
		t.Error("KeepFirstChar changed the base extractor")
	}
}

func TestCellGap(t *testing.T) {
	// A gap of 30 points merges "Name" and "Qty" (20pt apart) but not "a"
	// and "1" (35pt apart)
	tables := MustTables(FromLayouts(sampleLayouts()).KeepFirstChar().CellGap(30).Tables())

	want := []string{"NameQty", "a", "1"}
	if !reflect.DeepEqual(tables[0], want) {
		t.Errorf("page 1 = %q, want %q", tables[0], want)
	}
}

func TestNormalize(t *testing.T) {
	page := layout.NewAnalyzer().Analyze(1, 612, 792, []text.Fragment{
		frag("ﬁ", 0, 700), frag("Ｘ", 5, 700),
	}, nil)

	tables := MustTables(FromLayouts([]*layout.Page{page}).KeepFirstChar().Normalize().Tables())
	if want := []string{"fiX"}; !reflect.DeepEqual(tables[0], want) {
		t.Errorf("Tables() = %q, want %q", tables[0], want)
	}
}

func TestDocument(t *testing.T) {
	doc, _, err := FromLayouts(sampleLayouts()).KeepFirstChar().Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}

	p1 := doc.GetPage(1)
	if p1 == nil || p1.Table == nil {
		t.Fatal("page 1 has no table")
	}
	if p1.Table.RowCount() != 2 || p1.Table.Page != 1 {
		t.Errorf("page 1 table: %d rows, page %d", p1.Table.RowCount(), p1.Table.Page)
	}
	if !p1.HasText() {
		t.Error("page 1 HasText() = false")
	}

	p2 := doc.GetPage(2)
	if p2.Table != nil {
		t.Error("page 2 should have no table")
	}
	if p2.Rects != 1 {
		t.Errorf("page 2 Rects = %d, want 1", p2.Rects)
	}
}

func TestLayoutsAndPageCount(t *testing.T) {
	ext := FromLayouts(sampleLayouts())

	count, err := ext.PageCount()
	if err != nil || count != 2 {
		t.Errorf("PageCount() = %d, %v; want 2, nil", count, err)
	}

	pages, err := ext.Pages(1).Layouts()
	if err != nil {
		t.Fatalf("Layouts() error: %v", err)
	}
	if len(pages) != 1 || len(pages[0].TextBoxes()) != 4 {
		t.Errorf("Layouts() = %d pages", len(pages))
	}
}

func TestNilLayout(t *testing.T) {
	tables, warnings, err := FromLayouts([]*layout.Page{nil}).Tables()
	if err != nil {
		t.Fatalf("Tables() error: %v", err)
	}
	if len(tables) != 1 || len(tables[0]) != 0 {
		t.Errorf("Tables() = %q, want one empty page", tables)
	}
	if !HasWarning(warnings, WarnNoText) {
		t.Errorf("warnings = %v, want %s", warnings, WarnNoText)
	}
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	if _, _, err := FromLayouts(sampleLayouts()).Logger(zap.New(core)).Tables(); err != nil {
		t.Fatalf("Tables() error: %v", err)
	}
	if n := logs.FilterMessage("page table").Len(); n != 2 {
		t.Errorf("page table entries = %d, want 2", n)
	}
	if n := logs.FilterMessage("extracted tables").Len(); n != 1 {
		t.Errorf("extracted tables entries = %d, want 1", n)
	}

	// nil falls back to a no-op logger
	if _, _, err := FromLayouts(sampleLayouts()).Logger(nil).Tables(); err != nil {
		t.Errorf("Tables() with nil logger error: %v", err)
	}
}

func TestOpen_Missing(t *testing.T) {
	if _, _, err := Open("nonexistent.pdf").Tables(); err == nil {
		t.Error("expected error for non-existent file")
	}
	if _, err := GetTables("nonexistent.pdf"); err == nil {
		t.Error("expected error for non-existent file")
	}
	if _, _, err := Open("").Tables(); !errors.Is(err, ErrNoSource) {
		t.Errorf("Open(\"\") error = %v, want ErrNoSource", err)
	}
}

func TestMust(t *testing.T) {
	if got := Must(2, nil); got != 2 {
		t.Errorf("Must() = %d, want 2", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must() did not panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}

func TestMustTables_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustTables() did not panic on error")
		}
	}()
	MustTables(Open("nonexistent.pdf").Tables())
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Code: WarnNoText, Page: 2, Message: "no text"},
		{Code: WarnIgnoredRects, Message: "document wide"},
	}
	want := "page 2: no text; document wide"
	if got := FormatWarnings(warnings); got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
	if FormatWarnings(nil) != "" {
		t.Error("FormatWarnings(nil) should be empty")
	}
}

// buildPDF assembles a PDF from numbered object bodies (object i+1 is
// objects[i]) and writes a correct xref table.
func buildPDF(objects []string, trailer string) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d %s >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, trailer, xref)
	return buf.Bytes()
}

func stream(content string) string {
	return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content)
}

// helvetica is a font dictionary where every glyph is 6pt wide at 12pt.
func helvetica() string {
	widths := strings.TrimSpace(strings.Repeat("500 ", 91))
	return "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 122 /Widths [" + widths + "] >>"
}

// tablePDF builds a one-page PDF with a 2x2 table drawn as text: "Name" and
// "Qty" on a baseline at y=700, "a" and "1" at y=680.
func tablePDF() []byte {
	content := "BT /F1 12 Tf 72 700 Td (Name) Tj 100 0 Td (Qty) Tj ET\n" +
		"BT /F1 12 Tf 72 680 Td (a) Tj 100 0 Td (1) Tj ET"

	return buildPDF([]string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		helvetica(),
		stream(content),
		"<< /Title (Inventory) >>",
	}, "/Root 1 0 R /Info 6 0 R")
}

// multiPagePDF builds a PDF whose page n shows "Pn" at y=700.
func multiPagePDF(pages int) []byte {
	objects := []string{"<< /Type /Catalog /Pages 2 0 R >>", "", helvetica()}
	var kids []string
	for n := 1; n <= pages; n++ {
		page := len(objects) + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", page))
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", page+1),
			stream(fmt.Sprintf("BT /F1 12 Tf 72 700 Td (P%d) Tj ET", n)),
		)
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages)
	return buildPDF(objects, "/Root 1 0 R")
}

// passwordPad is the padding string of the standard security handler.
var passwordPad = []byte{
	0x28, 0xbf, 0x4e, 0x5e, 0x4e, 0x75, 0x8a, 0x41, 0x64, 0x00, 0x4e, 0x56, 0xff, 0xfa, 0x01, 0x08,
	0x2e, 0x2e, 0x00, 0xb6, 0xd0, 0x68, 0x3e, 0x80, 0x2f, 0x0c, 0xa9, 0xfe, 0x64, 0x53, 0x69, 0x7a,
}

// encryptedPDF builds a one-page, 40-bit RC4 (V1/R2) encrypted PDF with an
// empty user password and the given /P permission flags. The page has no
// content stream, so nothing but the trailer needs decrypting.
func encryptedPDF(perms int32) []byte {
	owner := bytes.Repeat([]byte{0x4f}, 32)
	id := []byte("pdfrows-test-id!")
	p := uint32(perms)

	h := md5.New()
	h.Write(passwordPad)
	h.Write(owner)
	h.Write([]byte{byte(p), byte(p >> 8), byte(p >> 16), byte(p >> 24)})
	h.Write(id)
	key := h.Sum(nil)[:5]

	c, err := rc4.NewCipher(key)
	if err != nil {
		panic(err)
	}
	user := make([]byte, 32)
	c.XORKeyStream(user, passwordPad)

	return buildPDF([]string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>",
	}, fmt.Sprintf("/Root 1 0 R /Encrypt << /Filter /Standard /V 1 /R 2 /O <%X> /U <%X> /P %d >> /ID [<%X> <%X>]",
		owner, user, perms, id, id))
}

func writePDF(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write PDF: %v", err)
	}
	return path
}

func writeTablePDF(t *testing.T) string {
	t.Helper()
	return writePDF(t, tablePDF())
}

func TestPDFExtraction(t *testing.T) {
	path := writeTablePDF(t)

	tests := []struct {
		name string
		ext  *Extractor
		want []string
	}{
		{"default", Open(path), []string{"", "ame", "Qty", "", "1"}},
		{"keep first", Open(path).KeepFirstChar(), []string{"", "Name", "Qty", "", "a", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables, _, err := tt.ext.Tables()
			if err != nil {
				t.Fatalf("Tables() error: %v", err)
			}
			if len(tables) != 1 {
				t.Fatalf("Tables() = %d pages, want 1", len(tables))
			}
			if !reflect.DeepEqual(tables[0], tt.want) {
				t.Errorf("Tables() = %q, want %q", tables[0], tt.want)
			}
		})
	}
}

func TestPDFGetTables(t *testing.T) {
	tables, err := GetTables(writeTablePDF(t))
	if err != nil {
		t.Fatalf("GetTables() error: %v", err)
	}
	if len(tables) != 1 || len(tables[0]) != 5 {
		t.Errorf("GetTables() = %q", tables)
	}
}

func TestPDFDocument(t *testing.T) {
	doc, _, err := Open(writeTablePDF(t)).Document()
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	if doc.Metadata.Title != "Inventory" {
		t.Errorf("Title = %q, want %q", doc.Metadata.Title, "Inventory")
	}
	p := doc.GetPage(1)
	if p == nil || p.Width != 612 || p.Height != 792 {
		t.Errorf("page 1 = %+v", p)
	}
}

func TestPDFPageCount(t *testing.T) {
	ext := Open(writeTablePDF(t))
	defer ext.Close()

	if got := Must(ext.PageCount()); got != 1 {
		t.Errorf("PageCount() = %d, want 1", got)
	}
}

func TestPDFSharedReader(t *testing.T) {
	ext := Open(writePDF(t, multiPagePDF(3))).KeepFirstChar()
	defer ext.Close()

	n, err := ext.PageCount()
	if err != nil {
		t.Fatalf("PageCount() error: %v", err)
	}
	if n != 3 {
		t.Fatalf("PageCount() = %d, want 3", n)
	}

	for i := 1; i <= n; i++ {
		tables, _, err := ext.Pages(i).Tables()
		if err != nil {
			t.Fatalf("Pages(%d).Tables() error: %v", i, err)
		}
		want := [][]string{{"", fmt.Sprintf("P%d", i)}}
		if !reflect.DeepEqual(tables, want) {
			t.Errorf("Pages(%d).Tables() = %q, want %q", i, tables, want)
		}
	}

	if got := Must(ext.PageCount()); got != 3 {
		t.Errorf("PageCount() after derived extractions = %d, want 3", got)
	}
	grids, _, err := ext.Grids()
	if err != nil {
		t.Fatalf("Grids() error: %v", err)
	}
	if len(grids) != 3 {
		t.Errorf("Grids() = %d pages, want 3", len(grids))
	}
}

func TestPDFExtractionDenied(t *testing.T) {
	path := writePDF(t, encryptedPDF(-20))

	tables, err := GetTables(path)
	if !errors.Is(err, ErrExtractionDenied) {
		t.Fatalf("GetTables() error = %v, want ErrExtractionDenied", err)
	}
	if tables != nil {
		t.Errorf("GetTables() = %q, want nil", tables)
	}

	doc, _, err := Open(path).Document()
	if !errors.Is(err, ErrExtractionDenied) || doc != nil {
		t.Errorf("Document() = %v, %v; want nil, ErrExtractionDenied", doc, err)
	}
	if _, err := Open(path).PageCount(); !errors.Is(err, ErrExtractionDenied) {
		t.Errorf("PageCount() error = %v, want ErrExtractionDenied", err)
	}
}

func TestPDFExtractionPermitted(t *testing.T) {
	ext := Open(writePDF(t, encryptedPDF(-4)))
	defer ext.Close()

	n, err := ext.PageCount()
	if err != nil {
		t.Fatalf("PageCount() error: %v", err)
	}
	if n != 1 {
		t.Errorf("PageCount() = %d, want 1", n)
	}
}

func TestSampleTables(t *testing.T) {
	path := filepath.Join("testdata", "table.pdf")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Skip("test PDF not found:", path)
	}

	tables, _, err := Open(path).Tables()
	if err != nil {
		t.Fatalf("Tables() error: %v", err)
	}
	if len(tables) == 0 {
		t.Error("expected at least one page")
	}
}
