package region

import (
	"strings"
	"testing"

	"github.com/gcodearc/arcweave/arcconfig"
	"github.com/gcodearc/arcweave/gcode"
	"github.com/stretchr/testify/require"
)

const twoLayerBridge = `G1 X0 Y0 F1200
;LAYER_CHANGE
;Z:0.2
G1 X0 Y0 E0 F1200
;TYPE:External perimeter
G1 X10 Y0 E1
G1 X10 Y10 E1
G1 X0 Y10 E1
G1 X0 Y0 E1
;LAYER_CHANGE
;Z:0.4
;TYPE:Bridge infill
G1 X0 Y5 E0.5 F900
G1 X10 Y5 E0.5
`

func parseFixture(t *testing.T) *gcode.Program {
	t.Helper()
	prog, err := gcode.Parse(strings.NewReader(twoLayerBridge))
	require.NoError(t, err)
	require.Len(t, prog.Layers, 2)
	return prog
}

func TestExtractFindsBridgeRegionOnSecondLayer(t *testing.T) {
	prog := parseFixture(t)
	cfg := arcconfig.Default()
	cfg.MinBridgeArea = 0.1
	cfg.MinBridgeLength = 0.1
	cfg.ExtendArcsIntoPerimeter = 0

	regions, rejections := Extract(prog, 1, cfg)
	require.Empty(t, rejections)
	require.Len(t, regions, 1)
	require.Equal(t, 1, regions[0].LayerIndex)
	require.NotEmpty(t, regions[0].Anchor)
}

func TestExtractFirstLayerHasNoRegions(t *testing.T) {
	prog := parseFixture(t)
	cfg := arcconfig.Default()

	regions, rejections := Extract(prog, 0, cfg)
	require.Empty(t, regions)
	require.Empty(t, rejections)
}

func TestExtractRejectsBelowMinArea(t *testing.T) {
	prog := parseFixture(t)
	cfg := arcconfig.Default()
	cfg.MinBridgeArea = 1e6
	cfg.ExtendArcsIntoPerimeter = 0

	regions, rejections := Extract(prog, 1, cfg)
	require.Empty(t, regions)
	require.Len(t, rejections, 1)
	require.ErrorIs(t, rejections[0], ErrBelowMinArea)
}

func TestExtractLayerWithNoBridgeSegmentsYieldsNothing(t *testing.T) {
	const noBridge = `G1 X0 Y0
;LAYER_CHANGE
;Z:0.2
;TYPE:External perimeter
G1 X10 Y0 E1
;LAYER_CHANGE
;Z:0.4
;TYPE:External perimeter
G1 X10 Y0 E1
`
	prog, err := gcode.Parse(strings.NewReader(noBridge))
	require.NoError(t, err)
	regions, rejections := Extract(prog, 1, arcconfig.Default())
	require.Empty(t, regions)
	require.Empty(t, rejections)
}
