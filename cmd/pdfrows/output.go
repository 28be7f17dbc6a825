package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/pdfrows/model"
)

var formats = []string{"flat", "grid", "csv", "markdown", "html", "json"}

func validFormat(f string) bool {
	for _, name := range formats {
		if f == name {
			return true
		}
	}
	return false
}

type jsonPage struct {
	Page  int        `json:"page"`
	Cells []string   `json:"cells"`
	Rows  [][]string `json:"rows"`
}

type jsonDocument struct {
	Title string     `json:"title,omitempty"`
	Pages []jsonPage `json:"pages"`
}

func pageTable(p *model.Page) *model.Table {
	if p.Table != nil {
		return p.Table
	}
	return &model.Table{Page: p.Number}
}

// writeDocument renders every page of doc in the given format.
func writeDocument(w io.Writer, format string, doc *model.Document) error {
	if !validFormat(format) {
		return fmt.Errorf("unknown format %q", format)
	}

	switch format {
	case "json":
		out := jsonDocument{Title: doc.Metadata.Title, Pages: make([]jsonPage, 0, len(doc.Pages))}
		for _, p := range doc.Pages {
			cells := p.Cells
			if cells == nil {
				cells = []string{}
			}
			out.Pages = append(out.Pages, jsonPage{Page: p.Number, Cells: cells, Rows: pageTable(p).Strings()})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case "html":
		for _, p := range doc.Pages {
			if err := pageTable(p).WriteHTML(w); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		return nil
	}

	for i, p := range doc.Pages {
		if i > 0 && format != "flat" {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		var err error
		switch format {
		case "flat":
			_, err = io.WriteString(w, strings.Join(p.Cells, "\t")+"\n")
		case "grid":
			_, err = io.WriteString(w, pageTable(p).GetText())
		case "csv":
			err = pageTable(p).WriteCSV(w)
		case "markdown":
			_, err = fmt.Fprintf(w, "## Page %d\n\n%s", p.Number, pageTable(p).ToMarkdown())
		default:
			return fmt.Errorf("unknown format %q", format)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
