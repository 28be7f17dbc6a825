package model

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML renders the table as an HTML <table> element. Text is escaped by
// the renderer.
func (t *Table) ToHTML() string {
	var buf bytes.Buffer
	// Rendering into a bytes.Buffer cannot fail.
	_ = t.WriteHTML(&buf)
	return buf.String()
}

// WriteHTML writes the table as an HTML <table> element to w.
func (t *Table) WriteHTML(w io.Writer) error {
	return html.Render(w, t.htmlNode())
}

func (t *Table) htmlNode() *html.Node {
	table := element(atom.Table)
	body := element(atom.Tbody)
	table.AppendChild(body)

	for _, row := range t.Rows {
		tr := element(atom.Tr)
		for _, cell := range row {
			td := element(atom.Td)
			if cell.Text != "" {
				td.AppendChild(&html.Node{Type: html.TextNode, Data: cell.Text})
			}
			tr.AppendChild(td)
		}
		body.AppendChild(tr)
	}

	return table
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}
