// Package reader opens PDF documents and turns their pages into glyph
// streams and layouts.
//
// Parsing and content stream interpretation are done by
// github.com/ledongthuc/pdf. This package adds permission checks, page
// geometry and the conversion to [text.Fragment] and [layout.Page].
//
//	r, err := reader.Open("document.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	if err := r.CheckExtractable(); err != nil {
//	    log.Fatal(err)
//	}
//	page, err := r.Layout(1) // pages are 1-indexed
//
// Panics raised while interpreting a page are recovered and reported as
// [ErrMalformedPage].
package reader
