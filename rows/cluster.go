package rows

import "iter"

// DefaultGap is the default clustering tolerance in points.
const DefaultGap = 1.0

// Cluster lazily splits non-decreasing values into groups. Consecutive values
// closer than maxGap share a group, so a group is a chain of sub-threshold
// steps rather than a window around its first value. Every value lands in
// exactly one group and groups are yielded in ascending order.
//
// The first comparison pairs the first value with itself. With a positive
// maxGap that pair never splits; with maxGap <= 0 it yields one empty group
// before the first real one.
func Cluster(sorted []float64, maxGap float64) iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		if len(sorted) == 0 {
			return
		}

		prev := sorted[0]
		var group []float64
		for _, val := range sorted {
			if val-prev >= maxGap {
				if !yield(group) {
					return
				}
				group = nil
			}
			group = append(group, val)
			prev = val
		}

		if len(group) > 0 {
			yield(group)
		}
	}
}
