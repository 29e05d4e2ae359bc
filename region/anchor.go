package region

import "github.com/gcodearc/arcweave/geom"

// deriveAnchor picks the portion of q's outer boundary that coincides
// with the supporting perimeter beneath it: the edge the planner's
// first arc ring is seeded from (spec.md §4.2 step 5, §4.3.5). When the
// supported boundary is split into several disjoint runs, the longest
// (by arc length, not vertex count) wins.
func deriveAnchor(q, perimeter geom.Polygon) geom.LineString {
	boundary := geom.Boundary(q)
	if len(boundary) == 0 {
		return nil
	}
	outer := boundary[0]
	if len(outer) == 0 {
		return nil
	}

	supported := make([]bool, len(outer))
	anySupported := false
	for i, p := range outer {
		supported[i] = perimeter.Empty() || geom.Contains(perimeter, p)
		anySupported = anySupported || supported[i]
	}
	if !anySupported {
		return nil
	}

	runs := contiguousRuns(outer, supported)
	if len(runs) == 0 {
		return nil
	}

	best := runs[0]
	bestLen := geom.Length(best)
	for _, r := range runs[1:] {
		if l := geom.Length(r); l > bestLen {
			best, bestLen = r, l
		}
	}
	return best
}

// contiguousRuns splits ring into maximal runs of consecutive points
// with mask[i] == true, treating the ring as cyclic so a run spanning
// the wraparound index isn't split in two.
func contiguousRuns(ring geom.LineString, mask []bool) []geom.LineString {
	n := len(ring)
	if n == 0 {
		return nil
	}

	allTrue := true
	for _, m := range mask {
		if !m {
			allTrue = false
			break
		}
	}
	if allTrue {
		return []geom.LineString{append(geom.LineString{}, ring...)}
	}

	start := 0
	for start < n && mask[start] {
		start++
	}
	if start == n {
		return nil
	}

	var runs []geom.LineString
	var cur geom.LineString
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if mask[idx] {
			cur = append(cur, ring[idx])
		} else if len(cur) > 0 {
			runs = append(runs, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}
