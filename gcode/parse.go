package gcode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformed is returned when the motion program cannot be parsed at
// all (e.g. a ;Z: line with a non-numeric height). This is the sentinel
// behind diagnostic.ParseError.
var ErrMalformed = errors.New("gcode: malformed motion program")

// Parse reads a line-oriented motion program and builds a Program,
// recognizing exactly the markers and commands enumerated in spec.md
// §6.1. Unrecognized lines are preserved verbatim and never alter parse
// state.
func Parse(r io.Reader) (*Program, error) {
	p := &Program{Config: make(map[string]string)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var cur *Layer
	var seg *Segment

	closeSegment := func() {
		if seg != nil && cur != nil {
			seg.End = len(p.Lines)
			cur.Segments = append(cur.Segments, *seg)
			seg = nil
		}
	}
	closeLayer := func() {
		closeSegment()
		if cur != nil {
			cur.End = len(p.Lines)
			p.Layers = append(p.Layers, *cur)
			cur = nil
		}
	}

	for sc.Scan() {
		raw := sc.Text()
		line, err := classify(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, len(p.Lines)+1, err)
		}
		idx := len(p.Lines)
		p.Lines = append(p.Lines, line)

		switch line.Kind {
		case LineLayerChange:
			closeLayer()
			cur = &Layer{Index: len(p.Layers), Start: idx, BodyStart: idx + 1}
			if len(p.Layers) == 0 && p.HeaderEnd == 0 {
				p.HeaderEnd = idx
			}

		case LineZHeight:
			if cur != nil {
				cur.ZHeight = line.Z
				cur.BodyStart = idx + 1
			}

		case LineTypeMarker:
			closeSegment()
			if cur != nil {
				seg = &Segment{Kind: kindFromTypeText(line.TypeText), Start: idx}
			}

		case LineMotion:
			// belongs to the currently open segment; nothing to do here,
			// path/extrusion are derived lazily by Program.Path.

		case LineConfig:
			p.Config[line.ConfigKey] = line.ConfigValue
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	closeLayer()

	if p.HeaderEnd == 0 && len(p.Layers) == 0 {
		p.HeaderEnd = len(p.Lines)
	}

	return p, nil
}

func kindFromTypeText(t string) Kind {
	switch t {
	case "External perimeter":
		return KindOuterPerimeter
	case "Perimeter":
		return KindPerimeter
	case "Solid infill":
		return KindSolidInfill
	case "Bridge infill":
		return KindBridgeInfill
	default:
		return KindOther
	}
}

// classify parses a single raw line into a Line, recognizing:
//
//	;LAYER_CHANGE                  -> LineLayerChange
//	;Z:<height>                    -> LineZHeight
//	;TYPE:<label>                  -> LineTypeMarker
//	; <key> = <value>              -> LineConfig
//	G0/G1 [X..] [Y..] [E..] [F..]  -> LineMotion
//	M106/M107 [S..]                -> LineFan
//	M104/M109 [S..]                -> LineTemperature
//	anything else                  -> LineOther
func classify(raw string) (Line, error) {
	trimmed := strings.TrimSpace(raw)
	l := Line{Raw: raw, Kind: LineOther}

	switch {
	case trimmed == ";LAYER_CHANGE":
		l.Kind = LineLayerChange
		return l, nil

	case strings.HasPrefix(trimmed, ";Z:"):
		v := strings.TrimPrefix(trimmed, ";Z:")
		z, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return l, fmt.Errorf("bad ;Z: value %q: %w", v, err)
		}
		l.Kind = LineZHeight
		l.Z = z
		return l, nil

	case strings.HasPrefix(trimmed, ";TYPE:"):
		l.Kind = LineTypeMarker
		l.TypeText = strings.TrimSpace(strings.TrimPrefix(trimmed, ";TYPE:"))
		return l, nil

	case strings.HasPrefix(trimmed, ";"):
		if key, val, ok := parseConfigComment(trimmed); ok {
			l.Kind = LineConfig
			l.ConfigKey, l.ConfigValue = key, val
		}
		return l, nil
	}

	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return l, nil
	}

	switch fields[0] {
	case "G0", "G1":
		l.Kind = LineMotion
		l.Command = fields[0]
		for _, f := range fields[1:] {
			if err := applyMotionField(&l, f); err != nil {
				return l, err
			}
		}
	case "M106", "M107":
		l.Kind = LineFan
		l.FanCommand = fields[0]
		for _, f := range fields[1:] {
			if strings.HasPrefix(f, "S") {
				s, err := strconv.ParseFloat(f[1:], 64)
				if err != nil {
					return l, fmt.Errorf("bad %s param %q: %w", fields[0], f, err)
				}
				l.S = s
			}
		}
	case "M104", "M109":
		l.Kind = LineTemperature
		l.TempCommand = fields[0]
		for _, f := range fields[1:] {
			if strings.HasPrefix(f, "S") {
				s, err := strconv.ParseFloat(f[1:], 64)
				if err != nil {
					return l, fmt.Errorf("bad %s param %q: %w", fields[0], f, err)
				}
				l.S = s
			}
		}
	}
	return l, nil
}

func applyMotionField(l *Line, f string) error {
	if f == "" {
		return nil
	}
	key, val := f[0], f[1:]
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fmt.Errorf("bad motion param %q: %w", f, err)
	}
	switch key {
	case 'X':
		l.HasX, l.X = true, v
	case 'Y':
		l.HasY, l.Y = true, v
	case 'E':
		l.HasE, l.E = true, v
	case 'F':
		l.HasF, l.F = true, v
	}
	return nil
}

// parseConfigComment recognizes "; key = value" comments (spec §6.1).
func parseConfigComment(trimmed string) (key, value string, ok bool) {
	body := strings.TrimSpace(strings.TrimPrefix(trimmed, ";"))
	eq := strings.Index(body, "=")
	if eq < 0 {
		return "", "", false
	}
	key = strings.TrimSpace(body[:eq])
	value = strings.TrimSpace(body[eq+1:])
	if key == "" || strings.ContainsAny(key, " \t:") {
		return "", "", false
	}
	return key, value, true
}
