// Package layout turns a page's positioned glyphs into a typed layout tree
// and flattens that tree back into characters for row reconstruction.
//
// # Layout Tree
//
// A [Page] holds top-level [Node] values. The node set is closed:
//
//   - [Char] - one glyph with its bounding box and text unit
//   - [Container] - a text box, text line, or figure grouping child nodes
//   - [Collection] - a plain ordered list of nodes
//   - [Rect] - a drawn rectangle
//   - [Anno] - virtual whitespace (word spaces, line ends)
//
// # Layout Analysis
//
// The [Analyzer] groups glyphs, in content stream order, into horizontal
// lines (glyphs that overlap vertically and sit within CharMargin glyph
// widths of each other) and lines into boxes (lines that overlap
// horizontally and are within LineMargin line heights):
//
//	analyzer := layout.NewAnalyzer()
//	page := analyzer.Analyze(1, 612, 792, fragments, rects)
//
// # Character Extraction
//
// [ExtractCharacters] walks a tree depth-first and returns its characters
// in traversal order:
//
//	chars := layout.ExtractCharacters(layout.Collection(page.Nodes))
package layout
