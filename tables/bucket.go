package tables

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/tsawler/pdfrows/layout"
	"github.com/tsawler/pdfrows/rows"
)

// Buckets holds a page's characters grouped by canonical row.
type Buckets struct {
	keys    []float64 // first-seen order
	rows    map[float64][]*layout.Char
	dropped []*layout.Char
}

// BucketByRow assigns each character to the row of its baseline (BBox.Y0).
// The character that opens a bucket is not stored unless keepFirst is set;
// such characters are reported by Dropped. An unmapped baseline fails the
// whole call.
func BucketByRow(chars []*layout.Char, rm *rows.RowMap, keepFirst bool) (*Buckets, error) {
	b := &Buckets{
		rows: make(map[float64][]*layout.Char),
	}

	for _, c := range chars {
		key, err := rm.Lookup(c.BBox.Y0)
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", c.Text, err)
		}

		if _, ok := b.rows[key]; !ok {
			b.keys = append(b.keys, key)
			if keepFirst {
				b.rows[key] = []*layout.Char{c}
			} else {
				b.rows[key] = []*layout.Char{}
				b.dropped = append(b.dropped, c)
			}
			continue
		}
		b.rows[key] = append(b.rows[key], c)
	}

	return b, nil
}

// Keys returns the canonical rows, top of the page first.
func (b *Buckets) Keys() []float64 {
	keys := slices.Clone(b.keys)
	slices.SortFunc(keys, func(x, y float64) int { return cmp.Compare(y, x) })
	return keys
}

// Chars returns the characters of one row in encounter order
func (b *Buckets) Chars(key float64) []*layout.Char {
	return b.rows[key]
}

// Dropped returns the characters that opened a bucket without being stored
func (b *Buckets) Dropped() []*layout.Char {
	return b.dropped
}

// Len returns the number of buckets
func (b *Buckets) Len() int {
	return len(b.keys)
}
