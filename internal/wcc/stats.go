package wcc

import "sort"

// Stats summarizes a WCC result vector: component count, size
// distribution, and the largest/smallest component sizes.
type Stats struct {
	NumComponents     int
	LargestComponent  int
	SmallestComponent int
	ComponentSizes    map[int32]int
}

// ComputeStats derives a Stats from a WCC result vector. Empty input
// yields a zero-value Stats with an empty ComponentSizes map.
func ComputeStats(comp []int32) Stats {
	sizes := make(map[int32]int)
	for _, c := range comp {
		sizes[c]++
	}

	stats := Stats{NumComponents: len(sizes), ComponentSizes: sizes}
	for _, size := range sizes {
		if size > stats.LargestComponent {
			stats.LargestComponent = size
		}
		if stats.SmallestComponent == 0 || size < stats.SmallestComponent {
			stats.SmallestComponent = size
		}
	}
	return stats
}

// SizesDescending returns the component sizes sorted largest first, for
// the "_stats" report's size listing.
func (s Stats) SizesDescending() []int {
	out := make([]int, 0, len(s.ComponentSizes))
	for _, size := range s.ComponentSizes {
		out = append(out, size)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// SamePartition reports whether two WCC results group vertices into the
// same equivalence classes, ignoring which vertex each class's
// representative happens to be: representative identity may differ
// between runs, but membership must not.
func SamePartition(a, b []int32) bool {
	if len(a) != len(b) {
		return false
	}
	// Map each a-representative to the b-representative it's paired with
	// the first time it's seen; every later pairing must match.
	aToB := make(map[int32]int32)
	bToA := make(map[int32]int32)
	for i := range a {
		if bv, ok := aToB[a[i]]; ok {
			if bv != b[i] {
				return false
			}
		} else {
			aToB[a[i]] = b[i]
		}
		if av, ok := bToA[b[i]]; ok {
			if av != a[i] {
				return false
			}
		} else {
			bToA[b[i]] = a[i]
		}
	}
	return true
}
