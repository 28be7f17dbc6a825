// Package rows groups y coordinates into row bands.
//
// Cluster splits sorted values wherever the step between neighbours reaches
// the gap. RowMap builds on it to map every observed y coordinate to the
// lowest y of its band:
//
//	m := rows.NewRowMap(ys, rows.DefaultGap)
//	row, err := m.Lookup(y)
package rows
