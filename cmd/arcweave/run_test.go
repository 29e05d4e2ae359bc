package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()
	return zap.NewNop().Sugar()
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "model.gcode")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessFileNotFound(t *testing.T) {
	code, err := Process(filepath.Join(t.TempDir(), "missing.gcode"), testLogger(t))
	require.Error(t, err)
	require.Equal(t, exitFileNotFound, code)
}

func TestProcessParseFailure(t *testing.T) {
	path := writeTempFile(t, ";LAYER_CHANGE\n;Z:not-a-number\n")
	code, err := Process(path, testLogger(t))
	require.Error(t, err)
	require.Equal(t, exitParseFailure, code)
}

func TestProcessNoBridgeRegions(t *testing.T) {
	const noBridge = `G1 X0 Y0
;LAYER_CHANGE
;Z:0.2
;TYPE:External perimeter
G1 X10 Y0 E1
`
	path := writeTempFile(t, noBridge)
	code, err := Process(path, testLogger(t))
	require.NoError(t, err)
	require.Equal(t, exitNoBridgeRegions, code)

	original, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, noBridge, string(original))
}

func TestProcessAllRegionsRejected(t *testing.T) {
	const tinyBridge = `G1 X0 Y0
;LAYER_CHANGE
;Z:0.2
;TYPE:External perimeter
G1 X10 Y0 E1
G1 X10 Y10 E1
G1 X0 Y10 E1
G1 X0 Y0 E1
;LAYER_CHANGE
;Z:0.4
;TYPE:Bridge infill
G1 X1 Y1 E0.1
G1 X1.2 Y1 E0.1
`
	path := writeTempFile(t, tinyBridge)
	code, err := Process(path, testLogger(t))
	require.NoError(t, err)
	require.Equal(t, exitAllRegionsReject, code)
}

// TestProcessMultipleBridgeRegionsSpliceCorrectly covers two bridge
// regions in different layers of the same file. It guards against
// splicing the second region with line indices invalidated by the
// first splice (spec.md §8 invariant 5), and against an arc block
// landing before its layer's ;LAYER_CHANGE/;Z: header.
func TestProcessMultipleBridgeRegionsSpliceCorrectly(t *testing.T) {
	const twoBridges = `G1 X0 Y0
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
G1 X0 Y5 E0.5
G1 X10 Y5 E0.5
;LAYER_CHANGE
;Z:0.6
;TYPE:External perimeter
G1 X10 Y0 E1
G1 X10 Y10 E1
G1 X0 Y10 E1
G1 X0 Y0 E1
;TYPE:Bridge infill
G1 X0 Y5 E0.5
G1 X10 Y5 E0.5
; min_bridge_area = 0.1
; min_bridge_length = 0.1
; extend_arcs_into_perimeter = 0.2
`
	path := writeTempFile(t, twoBridges)
	code, err := Process(path, testLogger(t))
	require.NoError(t, err)
	require.Equal(t, exitOK, code)

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	result := string(out)
	lines := strings.Split(result, "\n")

	require.NotContains(t, result, ";TYPE:Bridge infill")
	require.Equal(t, 2, strings.Count(result, ";TYPE:Arc overhang"))
	require.Equal(t, 2, strings.Count(result, ";TYPE:End arc overhang"))
	require.Equal(t, 3, strings.Count(result, ";TYPE:External perimeter"))
	require.Equal(t, 3, strings.Count(result, "G1 X0 Y0 E1"))

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

func TestProcessSuccessRewritesFile(t *testing.T) {
	const bridge = `G1 X0 Y0
;LAYER_CHANGE
;Z:0.2
;TYPE:External perimeter
G1 X10 Y0 E1
G1 X10 Y10 E1
G1 X0 Y10 E1
G1 X0 Y0 E1
;LAYER_CHANGE
;Z:0.4
;TYPE:Bridge infill
G1 X0 Y5 E0.5
G1 X10 Y5 E0.5
; min_bridge_area = 0.1
; min_bridge_length = 0.1
; extend_arcs_into_perimeter = 0.2
`
	path := writeTempFile(t, bridge)
	code, err := Process(path, testLogger(t))
	require.NoError(t, err)
	require.Equal(t, exitOK, code)

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(out), ";TYPE:Arc overhang") || strings.Contains(string(out), ";TYPE:End arc overhang"))
}
