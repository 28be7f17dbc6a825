package rows

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
)

// ErrRowNotFound is returned when a y coordinate has no row band.
var ErrRowNotFound = errors.New("y coordinate not in row map")

// Epsilon is the largest difference at which a looked-up y coordinate still
// matches a clustered one.
const Epsilon = 1e-6

type entry struct {
	y         float64
	canonical float64
}

// RowMap maps observed y coordinates to the canonical y of their row band:
// the lowest value of the band. Entries are kept sorted by y so lookups are
// a binary search with Epsilon tolerance instead of float equality.
type RowMap struct {
	entries []entry
	rows    []float64 // canonical values, ascending
	gap     float64
}

// NewRowMap clusters the distinct values with Cluster and maps every member
// of a group to the group's first element. values need not be sorted; NaN
// values are left unmapped.
func NewRowMap(values []float64, maxGap float64) *RowMap {
	sorted := slices.DeleteFunc(slices.Clone(values), math.IsNaN)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	m := &RowMap{
		entries: make([]entry, 0, len(sorted)),
		gap:     maxGap,
	}

	for group := range Cluster(sorted, maxGap) {
		if len(group) == 0 {
			continue
		}
		canonical := group[0]
		m.rows = append(m.rows, canonical)
		for _, y := range group {
			m.entries = append(m.entries, entry{y: y, canonical: canonical})
		}
	}

	return m
}

// Lookup returns the canonical y of the band containing y. The nearest
// entry within Epsilon matches; otherwise the error wraps ErrRowNotFound.
func (m *RowMap) Lookup(y float64) (float64, error) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].y >= y-Epsilon
	})

	best := -1
	for j := i; j < len(m.entries) && m.entries[j].y <= y+Epsilon; j++ {
		if best < 0 || math.Abs(m.entries[j].y-y) < math.Abs(m.entries[best].y-y) {
			best = j
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("%w: %g", ErrRowNotFound, y)
	}

	return m.entries[best].canonical, nil
}

// Rows returns the canonical y of every band, ascending.
func (m *RowMap) Rows() []float64 {
	return slices.Clone(m.rows)
}

// RowCount returns the number of bands
func (m *RowMap) RowCount() int {
	return len(m.rows)
}

// Len returns the number of distinct y coordinates mapped
func (m *RowMap) Len() int {
	return len(m.entries)
}

// Gap returns the clustering tolerance the map was built with
func (m *RowMap) Gap() float64 {
	return m.gap
}

// Band returns the y coordinates that map to canonical, ascending.
func (m *RowMap) Band(canonical float64) []float64 {
	var band []float64
	for _, e := range m.entries {
		if e.canonical == canonical {
			band = append(band, e.y)
		}
	}
	return band
}
