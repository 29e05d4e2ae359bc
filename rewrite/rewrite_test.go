package rewrite

import (
	"testing"

	"github.com/gcodearc/arcweave/gcode"
	"github.com/stretchr/testify/require"
)

func TestNoopRewriterDoesNothing(t *testing.T) {
	prog := &gcode.Program{Lines: []gcode.Line{{Raw: "G1 X0 Y0"}}}
	var r Rewriter = NoopRewriter{}

	err := r.Apply(prog, []Patch{{ZRange: [2]float64{0.2, 0.6}}})
	require.NoError(t, err)
	require.Len(t, prog.Lines, 1)
	require.Equal(t, "G1 X0 Y0", prog.Lines[0].Raw)
}
