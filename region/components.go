package region

import (
	"github.com/gcodearc/arcweave/gcode"
	"github.com/gcodearc/arcweave/geom"
)

// unionFind is a minimal disjoint-set structure used to group bridge
// segments into connected components by endpoint adjacency.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// bridgeSegment pairs a program Segment with its derived path, computed
// once up front so grouping doesn't re-derive it per comparison.
type bridgeSegment struct {
	seg  gcode.Segment
	path geom.LineString
}

// groupBridgeSegments partitions the layer's bridge-infill segments into
// connected components: two segments are joined when an endpoint of one
// lies within geom.Epsilon of an endpoint of the other (spec.md §4.2
// step 1).
func groupBridgeSegments(segs []bridgeSegment) [][]bridgeSegment {
	n := len(segs)
	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if segmentsTouch(segs[i].path, segs[j].path) {
				uf.union(i, j)
			}
		}
	}

	groups := make(map[int][]bridgeSegment)
	for i := 0; i < n; i++ {
		root := uf.find(i)
		groups[root] = append(groups[root], segs[i])
	}

	out := make([][]bridgeSegment, 0, len(groups))
	for _, g := range groups {
		out = append(out, g)
	}
	return out
}

func segmentsTouch(a, b geom.LineString) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	ends := func(l geom.LineString) [2]geom.Point { return [2]geom.Point{l[0], l[len(l)-1]} }
	ea, eb := ends(a), ends(b)
	for _, pa := range ea {
		for _, pb := range eb {
			if geom.Distance(pa, pb) < geom.Epsilon {
				return true
			}
		}
	}
	return false
}
