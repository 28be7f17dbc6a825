package layout

import (
	"math"

	"github.com/tsawler/pdfrows/model"
	"github.com/tsawler/pdfrows/text"
)

// AnalyzerConfig holds configuration for layout analysis
type AnalyzerConfig struct {
	// CharMargin is the largest horizontal gap between two glyphs of one line,
	// as a multiple of the wider glyph's width (default: 2.0)
	CharMargin float64

	// LineOverlap is the minimum vertical overlap of two glyphs of one line,
	// as a fraction of the shorter glyph's height (default: 0.5)
	LineOverlap float64

	// LineMargin is the largest vertical gap between two lines of one box,
	// as a multiple of the taller line's height (default: 0.5)
	LineMargin float64

	// WordMargin is the horizontal gap above which a word space is inserted
	// between two glyphs, as a multiple of the wider glyph's width
	// (default: 0.1)
	WordMargin float64
}

// DefaultAnalyzerConfig returns sensible default configuration
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		CharMargin:  2.0,
		LineOverlap: 0.5,
		LineMargin:  0.5,
		WordMargin:  0.1,
	}
}

// Analyzer groups a page's glyph stream into horizontal text lines and text
// boxes, and wraps drawn rectangles as Rect nodes.
type Analyzer struct {
	config AnalyzerConfig
}

// NewAnalyzer creates a new analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		config: DefaultAnalyzerConfig(),
	}
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config AnalyzerConfig) *Analyzer {
	return &Analyzer{
		config: config,
	}
}

// Config returns the analyzer configuration
func (a *Analyzer) Config() AnalyzerConfig {
	return a.config
}

// Analyze builds the layout of one page. Fragments are taken in content
// stream order; glyphs with empty text are skipped. Text boxes come first in
// the returned node list, followed by one Rect per rectangle.
func (a *Analyzer) Analyze(number int, width, height float64, fragments []text.Fragment, rects []model.BBox) *Page {
	page := &Page{
		Number: number,
		Width:  width,
		Height: height,
	}

	lines := a.groupIntoLines(toChars(fragments))
	for _, box := range a.groupIntoBoxes(lines) {
		page.Nodes = append(page.Nodes, box)
	}

	for _, r := range rects {
		page.Nodes = append(page.Nodes, &Rect{BBox: r})
	}

	return page
}

func toChars(fragments []text.Fragment) []*Char {
	chars := make([]*Char, 0, len(fragments))
	for _, f := range fragments {
		if f.IsEmpty() {
			continue
		}
		chars = append(chars, &Char{
			BBox:     model.BBox{X0: f.X, Y0: f.Y, X1: f.Right(), Y1: f.Top()},
			Text:     f.Text,
			FontName: f.FontName,
			FontSize: f.FontSize,
		})
	}
	return chars
}

// groupIntoLines walks glyphs in stream order and starts a new line whenever
// a glyph is not horizontally aligned with its predecessor.
func (a *Analyzer) groupIntoLines(chars []*Char) []*Container {
	var lines []*Container
	var current []*Char

	for _, c := range chars {
		if len(current) > 0 && a.sameLine(current[len(current)-1], c) {
			current = append(current, c)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, a.buildLine(current))
		}
		current = []*Char{c}
	}

	// Don't forget the last line
	if len(current) > 0 {
		lines = append(lines, a.buildLine(current))
	}

	return lines
}

func (a *Analyzer) sameLine(prev, c *Char) bool {
	minHeight := math.Min(prev.BBox.Height(), c.BBox.Height())
	if prev.BBox.VOverlap(c.BBox) <= minHeight*a.config.LineOverlap {
		return false
	}
	maxWidth := math.Max(glyphWidth(prev), glyphWidth(c))
	return prev.BBox.HDistance(c.BBox) < maxWidth*a.config.CharMargin
}

// buildLine wraps the glyphs of one line, inserting a word-space Anno where
// the gap between neighbours is wide and a line-end Anno at the end.
func (a *Analyzer) buildLine(chars []*Char) *Container {
	line := &Container{
		Kind:     KindTextLineHorizontal,
		Children: make([]Node, 0, len(chars)+1),
	}

	for i, c := range chars {
		if i > 0 {
			prev := chars[i-1]
			maxWidth := math.Max(glyphWidth(prev), glyphWidth(c))
			if prev.BBox.HDistance(c.BBox) > maxWidth*a.config.WordMargin && !isSpace(prev) && !isSpace(c) {
				line.Children = append(line.Children, &Anno{Text: " "})
			}
		}
		line.Children = append(line.Children, c)
		line.BBox = line.BBox.Union(c.BBox)
	}
	line.Children = append(line.Children, &Anno{Text: "\n"})

	return line
}

// groupIntoBoxes merges consecutive lines that overlap horizontally and are
// separated by less than LineMargin line heights.
func (a *Analyzer) groupIntoBoxes(lines []*Container) []*Container {
	var boxes []*Container
	var current *Container

	for _, line := range lines {
		if current != nil {
			last := current.Children[len(current.Children)-1].(*Container)
			if a.sameBox(last, line) {
				current.Children = append(current.Children, line)
				current.BBox = current.BBox.Union(line.BBox)
				continue
			}
			boxes = append(boxes, current)
		}
		current = &Container{
			Kind:     KindTextBoxHorizontal,
			BBox:     line.BBox,
			Children: []Node{line},
		}
	}

	if current != nil {
		boxes = append(boxes, current)
	}

	return boxes
}

func (a *Analyzer) sameBox(prev, line *Container) bool {
	if prev.BBox.HOverlap(line.BBox) <= 0 {
		return false
	}
	maxHeight := math.Max(prev.BBox.Height(), line.BBox.Height())
	return vDistance(prev.BBox, line.BBox) <= maxHeight*a.config.LineMargin
}

// glyphWidth is the glyph's advance width, or half its font size when the
// parser reported no width.
func glyphWidth(c *Char) float64 {
	if w := c.BBox.Width(); w > 0 {
		return w
	}
	return c.FontSize / 2
}

func isSpace(c *Char) bool {
	for _, r := range c.Text {
		if r != ' ' && r != '\t' && r != '\u00a0' {
			return false
		}
	}
	return true
}

func vDistance(a, b model.BBox) float64 {
	if a.Y0 > b.Y1 {
		return a.Y0 - b.Y1
	}
	if b.Y0 > a.Y1 {
		return b.Y0 - a.Y1
	}
	return 0
}
