package gcode

import "github.com/gcodearc/arcweave/geom"

// Path returns the XY path traced by seg's motion lines, deriving and
// caching it on first call. The program's current position when the
// segment opens is start; callers (region extraction walks a layer in
// order) track this themselves.
func (p *Program) Path(seg *Segment, start geom.Point) geom.LineString {
	if seg.derived {
		return seg.path
	}
	p.derive(seg, start)
	return seg.path
}

// ExtrusionPerMM returns the average E/mm over seg's motion lines.
func (p *Program) ExtrusionPerMM(seg *Segment) float64 {
	if !seg.derived {
		p.derive(seg, geom.Point{})
	}
	return seg.extrusionPerMM
}

// Feedrate returns the last F value seen within seg, or 0 if none.
func (p *Program) Feedrate(seg *Segment) float64 {
	if !seg.derived {
		p.derive(seg, geom.Point{})
	}
	return seg.feedrate
}

func (p *Program) derive(seg *Segment, start geom.Point) {
	cur := start
	path := geom.LineString{start}
	var totalE, totalLen float64
	var feedrate float64

	for i := seg.Start; i < seg.End && i < len(p.Lines); i++ {
		l := p.Lines[i]
		if l.Kind != LineMotion {
			continue
		}
		next := cur
		if l.HasX {
			next.X = l.X
		}
		if l.HasY {
			next.Y = l.Y
		}
		if l.HasF {
			feedrate = l.F
		}
		if next != cur {
			path = append(path, next)
			totalLen += geom.Distance(cur, next)
		}
		if l.HasE {
			totalE += l.E
		}
		cur = next
	}

	seg.path = path
	seg.feedrate = feedrate
	if totalLen > geom.Epsilon {
		seg.extrusionPerMM = totalE / totalLen
	}
	seg.derived = true
}

// EndPoint returns the last known XY position after the motion lines in
// [from, upTo) (upTo itself excluded), starting the scan from start.
// Used by the extractor to find a segment's starting position without
// replaying the whole program.
func (p *Program) EndPoint(start geom.Point, from, upTo int) geom.Point {
	cur := start
	for i := from; i < upTo && i < len(p.Lines); i++ {
		l := p.Lines[i]
		if l.Kind != LineMotion {
			continue
		}
		if l.HasX {
			cur.X = l.X
		}
		if l.HasY {
			cur.Y = l.Y
		}
	}
	return cur
}
