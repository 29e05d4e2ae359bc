package gcode

// ReplaceRange replaces lines [start, end) with newLines and shifts every
// Layer/Segment line index at or after end by the resulting delta, so the
// Program stays internally consistent for any further splices. This is
// the only mutation primitive emit.Splice uses (spec.md §4.4 splice
// contract: everything outside [start, end) is untouched).
func (p *Program) ReplaceRange(start, end int, newLines []Line) {
	delta := len(newLines) - (end - start)

	out := make([]Line, 0, len(p.Lines)+delta)
	out = append(out, p.Lines[:start]...)
	out = append(out, newLines...)
	out = append(out, p.Lines[end:]...)
	p.Lines = out

	shift := func(i int) int {
		switch {
		case i >= end:
			return i + delta
		case i >= start:
			return start
		default:
			return i
		}
	}

	if p.HeaderEnd >= end {
		p.HeaderEnd += delta
	}

	for li := range p.Layers {
		p.Layers[li].Start = shift(p.Layers[li].Start)
		p.Layers[li].End = shift(p.Layers[li].End)
		p.Layers[li].BodyStart = shift(p.Layers[li].BodyStart)
		for si := range p.Layers[li].Segments {
			seg := &p.Layers[li].Segments[si]
			seg.Start = shift(seg.Start)
			seg.End = shift(seg.End)
			seg.derived = false
		}
	}
}

// InsertAt inserts newLines before line index at, shifting everything
// after it. Equivalent to ReplaceRange(at, at, newLines).
func (p *Program) InsertAt(at int, newLines []Line) {
	p.ReplaceRange(at, at, newLines)
}
