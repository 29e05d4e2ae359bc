package emit

import (
	"math"
	"strings"
	"testing"

	"github.com/gcodearc/arcweave/arcconfig"
	"github.com/gcodearc/arcweave/arcplan"
	"github.com/gcodearc/arcweave/gcode"
	"github.com/gcodearc/arcweave/geom"
	"github.com/gcodearc/arcweave/region"
	"github.com/stretchr/testify/require"
)

const bridgeFixture = `G1 X0 Y0 F1200
;LAYER_CHANGE
;Z:0.2
;TYPE:External perimeter
G1 X10 Y0 E1 F1200
;LAYER_CHANGE
;Z:0.4
;TYPE:Bridge infill
G1 X0 Y5 E0.5 F900
G1 X10 Y5 E0.5
;TYPE:Solid infill
G1 X10 Y6 E0.2
; layer_height = 0.2
; extrusion_multiplier = 1.0
; filament_diameter = 1.75
`

func parseFixture(t *testing.T) *gcode.Program {
	t.Helper()
	prog, err := gcode.Parse(strings.NewReader(bridgeFixture))
	require.NoError(t, err)
	require.Len(t, prog.Layers, 2)
	return prog
}

const multiLayerBridgeFixture = `G1 X0 Y0 F1200
;LAYER_CHANGE
;Z:0.2
;TYPE:External perimeter
G1 X10 Y0 E1
G1 X10 Y10 E1
G1 X0 Y10 E1
G1 X0 Y0 E1
;LAYER_CHANGE
;Z:0.4
;TYPE:External perimeter
G1 X10 Y0 E1
G1 X10 Y10 E1
G1 X0 Y10 E1
G1 X0 Y0 E1
;TYPE:Bridge infill
G1 X0 Y5 E0.5 F900
G1 X10 Y5 E0.5
;LAYER_CHANGE
;Z:0.6
;TYPE:External perimeter
G1 X10 Y0 E1
G1 X10 Y10 E1
G1 X0 Y10 E1
G1 X0 Y0 E1
;TYPE:Bridge infill
G1 X0 Y5 E0.5 F900
G1 X10 Y5 E0.5
; layer_height = 0.2
; extrusion_multiplier = 1.0
; filament_diameter = 1.75
`

func parseMultiLayerFixture(t *testing.T) *gcode.Program {
	t.Helper()
	prog, err := gcode.Parse(strings.NewReader(multiLayerBridgeFixture))
	require.NoError(t, err)
	require.Len(t, prog.Layers, 3)
	return prog
}

// TestSpliceMultipleRegionsAcrossLayersInDescendingOrder splices two
// bridge regions (layers 1 and 2) into the same program, in descending
// source-line order as the CLI driver does. It guards against two bugs:
// the second splice corrupting the first region's untouched lines when
// called out of order, and an arc block landing before the layer's
// ;LAYER_CHANGE/;Z: header instead of inside the layer it belongs to.
func TestSpliceMultipleRegionsAcrossLayersInDescendingOrder(t *testing.T) {
	prog := parseMultiLayerFixture(t)
	layer1Sources := bridgeSourceSegments(t, prog, 1)
	layer2Sources := bridgeSourceSegments(t, prog, 2)

	plan := func() arcplan.ArcPlan {
		return arcplan.ArcPlan{Arcs: []geom.Arc{
			{Center: geom.Point{X: 5, Y: 5}, Radius: 3, StartAngle: 0, EndAngle: math.Pi},
		}}
	}

	e := &Emitter{Config: arcconfig.Default()}

	// Descending order: the region furthest down the file (layer 2) is
	// spliced first so its edit never shifts layer 1's still-pending
	// SourceSegments out from under it.
	err := e.Splice(prog, region.BridgeRegion{LayerIndex: 2, SourceSegments: layer2Sources}, plan())
	require.NoError(t, err)
	err = e.Splice(prog, region.BridgeRegion{LayerIndex: 1, SourceSegments: layer1Sources}, plan())
	require.NoError(t, err)

	var out strings.Builder
	_, err = prog.WriteTo(&out)
	require.NoError(t, err)
	lines := strings.Split(out.String(), "\n")

	require.NotContains(t, out.String(), ";TYPE:Bridge infill")
	require.Equal(t, 2, strings.Count(out.String(), ";TYPE:Arc overhang"))
	require.Equal(t, 3, strings.Count(out.String(), ";TYPE:External perimeter"))
	require.Equal(t, 12, strings.Count(out.String(), "G1 X10 Y0 E1")+strings.Count(out.String(), "G1 X10 Y10 E1")+strings.Count(out.String(), "G1 X0 Y10 E1")+strings.Count(out.String(), "G1 X0 Y0 E1"))

	require.Equal(t, ";TYPE:Arc overhang", lineAfter(t, lines, ";Z:0.4"))
	require.Equal(t, ";TYPE:Arc overhang", lineAfter(t, lines, ";Z:0.6"))
}

// lineAfter returns the line immediately following the first occurrence
// of marker in lines.
func lineAfter(t *testing.T, lines []string, marker string) string {
	t.Helper()
	for i, l := range lines {
		if l == marker {
			require.Less(t, i+1, len(lines))
			return lines[i+1]
		}
	}
	t.Fatalf("marker %q not found", marker)
	return ""
}

func bridgeSourceSegments(t *testing.T, prog *gcode.Program, layerIdx int) []region.SourceSegment {
	t.Helper()
	var out []region.SourceSegment
	for _, s := range prog.Layers[layerIdx].Segments {
		if s.Kind == gcode.KindBridgeInfill {
			out = append(out, region.SourceSegment{Start: s.Start, End: s.End})
		}
	}
	require.NotEmpty(t, out)
	return out
}

func TestSpliceReplacesBridgeAndPreservesOtherLines(t *testing.T) {
	prog := parseFixture(t)
	sources := bridgeSourceSegments(t, prog, 1)

	patch := region.BridgeRegion{
		LayerIndex:     1,
		SourceSegments: sources,
	}
	plan := arcplan.ArcPlan{Arcs: []geom.Arc{
		{Center: geom.Point{X: 5, Y: 5}, Radius: 3, StartAngle: 0, EndAngle: math.Pi},
	}}

	e := &Emitter{Config: arcconfig.Default()}
	err := e.Splice(prog, patch, plan)
	require.NoError(t, err)

	var out strings.Builder
	_, err = prog.WriteTo(&out)
	require.NoError(t, err)

	result := out.String()
	require.Contains(t, result, ";TYPE:Arc overhang")
	require.Contains(t, result, ";TYPE:End arc overhang")
	require.NotContains(t, result, ";TYPE:Bridge infill")
	require.Contains(t, result, ";TYPE:Solid infill")
	require.Contains(t, result, ";TYPE:External perimeter")
}

func TestSpliceRejectsEmptyPlan(t *testing.T) {
	prog := parseFixture(t)
	sources := bridgeSourceSegments(t, prog, 1)
	patch := region.BridgeRegion{LayerIndex: 1, SourceSegments: sources}

	e := &Emitter{Config: arcconfig.Default()}
	err := e.Splice(prog, patch, arcplan.ArcPlan{})
	require.ErrorIs(t, err, ErrNoArcs)
}

func TestSpliceRejectsMissingSourceSegments(t *testing.T) {
	prog := parseFixture(t)
	patch := region.BridgeRegion{LayerIndex: 1}
	plan := arcplan.ArcPlan{Arcs: []geom.Arc{
		{Center: geom.Point{}, Radius: 1, StartAngle: 0, EndAngle: math.Pi},
	}}

	e := &Emitter{Config: arcconfig.Default()}
	err := e.Splice(prog, patch, plan)
	require.ErrorIs(t, err, ErrNoSourceSegments)
}

func TestReadProfileFallsBackToLayerDelta(t *testing.T) {
	prog := parseFixture(t)
	delete(prog.Config, "layer_height")
	p := readProfile(prog, 1)
	require.InDelta(t, 0.2, p.layerHeight, 1e-9)
}
