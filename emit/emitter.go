package emit

import (
	"sort"

	"github.com/gcodearc/arcweave/arcconfig"
	"github.com/gcodearc/arcweave/arcplan"
	"github.com/gcodearc/arcweave/gcode"
	"github.com/gcodearc/arcweave/geom"
	"github.com/gcodearc/arcweave/region"
	"go.uber.org/zap"
)

// Emitter splices planned arcs into a motion program, replacing the
// bridge-infill segments they cover (spec.md §4.4).
type Emitter struct {
	Config arcconfig.Config
	Log    *zap.SugaredLogger
}

// Splice discretizes plan into motion lines and replaces patch's
// source bridge segments with them, inserted at the beginning of the
// layer that originally contained the bridge — right after that
// layer's ;LAYER_CHANGE/;Z: header, so the block's Z stays that of the
// layer it belongs to (spec.md §6.2). The original segment lines are
// removed entirely; everything outside them is untouched (spec.md
// §4.4 splice contract, §8 invariant 5).
func (e *Emitter) Splice(m *gcode.Program, patch region.BridgeRegion, plan arcplan.ArcPlan) error {
	if len(plan.Arcs) == 0 {
		return ErrNoArcs
	}
	if len(patch.SourceSegments) == 0 {
		return ErrNoSourceSegments
	}
	if patch.LayerIndex < 0 || patch.LayerIndex >= len(m.Layers) {
		return ErrNoSourceSegments
	}

	layer := m.Layers[patch.LayerIndex]
	profile := readProfile(m, patch.LayerIndex)

	prevF, prevFan, prevTemp := lastKnownState(m, layer.Start)
	lines, err := e.buildArcBlock(plan, profile, prevF, prevFan, prevTemp)
	if err != nil {
		return err
	}

	segs := append([]region.SourceSegment{}, patch.SourceSegments...)
	sort.Slice(segs, func(i, j int) bool { return segs[i].Start > segs[j].Start })
	for _, s := range segs {
		m.ReplaceRange(s.Start, s.End, nil)
	}

	bodyStart := m.Layers[patch.LayerIndex].BodyStart
	m.InsertAt(bodyStart, lines)
	return nil
}

// buildArcBlock renders the full inserted block: overrides, each arc's
// discretized travel+extrude moves in plan order, and the restoring
// trailer (spec.md §4.4).
func (e *Emitter) buildArcBlock(plan arcplan.ArcPlan, profile printerProfile, prevF, prevFan, prevTemp float64) ([]gcode.Line, error) {
	var lines []gcode.Line
	lines = append(lines, typeMarkerLine("Arc overhang"))
	lines = append(lines, feedrateLine(e.Config.ArcFeedrate))
	lines = append(lines, fanLine(e.Config.ArcFan))
	if e.Config.ArcTemperature > 0 {
		lines = append(lines, tempLine("M104", e.Config.ArcTemperature))
	}

	var cur geom.Point
	haveCur := false

	for _, arc := range plan.Arcs {
		pts := geom.PointsOnArc(arc, e.Config.AngularStep)
		if len(pts) < 2 {
			continue
		}
		if !haveCur || geom.Distance(cur, pts[0]) > geom.Epsilon {
			lines = append(lines, travelLine(pts[0].X, pts[0].Y))
		}
		for i := 1; i < len(pts); i++ {
			seg := geom.LineString{pts[i-1], pts[i]}
			length := geom.Length(seg)
			extrusion := length * e.Config.ArcWidth * profile.layerHeight * profile.extrusionMultiplier / profile.filamentArea
			if extrusion <= 0 {
				return nil, ErrInvalidExtrusion
			}
			lines = append(lines, extrudeLine(pts[i].X, pts[i].Y, extrusion, e.Config.ArcFeedrate, false))
		}
		cur = pts[len(pts)-1]
		haveCur = true
	}

	lines = append(lines, typeMarkerLine("End arc overhang"))
	if prevF > 0 {
		lines = append(lines, feedrateLine(prevF))
	}
	lines = append(lines, fanLine(prevFan))
	if prevTemp > 0 {
		lines = append(lines, tempLine("M104", prevTemp))
	}
	return lines, nil
}

// lastKnownState scans backward from line index before for the last
// seen feedrate, fan level, and temperature, so the trailer can
// restore whatever was active before the bridge (spec.md §4.4: "restore
// prior feedrate/fan/temperature").
func lastKnownState(m *gcode.Program, before int) (feedrate, fan, temp float64) {
	haveF, haveFan, haveTemp := false, false, false
	for i := before - 1; i >= 0 && !(haveF && haveFan && haveTemp); i-- {
		l := m.Lines[i]
		switch l.Kind {
		case gcode.LineMotion:
			if !haveF && l.HasF {
				feedrate, haveF = l.F, true
			}
		case gcode.LineFan:
			if !haveFan {
				fan, haveFan = l.S, true
			}
		case gcode.LineTemperature:
			if !haveTemp {
				temp, haveTemp = l.S, true
			}
		}
	}
	return feedrate, fan, temp
}
