package gcode

import "github.com/gcodearc/arcweave/geom"

// Kind classifies a motion segment.
type Kind int

const (
	KindTravel Kind = iota
	KindOuterPerimeter
	KindPerimeter
	KindSolidInfill
	KindBridgeInfill
	KindOther
)

// String returns the TYPE marker text associated with k, or "" for kinds
// that have none (KindTravel, KindOther).
func (k Kind) String() string {
	switch k {
	case KindOuterPerimeter:
		return "External perimeter"
	case KindPerimeter:
		return "Perimeter"
	case KindSolidInfill:
		return "Solid infill"
	case KindBridgeInfill:
		return "Bridge infill"
	default:
		return ""
	}
}

// LineKind classifies a raw line of the motion program.
type LineKind int

const (
	LineOther LineKind = iota
	LineMotion
	LineFan
	LineTemperature
	LineTypeMarker
	LineLayerChange
	LineZHeight
	LineConfig
)

// Line is one line of the motion program, preserved verbatim in Raw.
// Recognized lines additionally carry decoded fields; unrecognized lines
// have Kind == LineOther and are never touched.
type Line struct {
	Raw  string
	Kind LineKind

	// Motion fields, valid when Kind == LineMotion.
	Command  string // "G0" or "G1"
	HasX     bool
	X        float64
	HasY     bool
	Y        float64
	HasE     bool
	E        float64
	HasF     bool
	F        float64

	// Fan/temperature fields, valid when Kind == LineFan/LineTemperature.
	FanCommand string // "M106" or "M107"
	TempCommand string // "M104" or "M109"
	S          float64

	// TYPE marker text, valid when Kind == LineTypeMarker.
	TypeText string

	// Z height, valid when Kind == LineZHeight.
	Z float64

	// Config key/value, valid when Kind == LineConfig.
	ConfigKey, ConfigValue string
}

// Segment is a contiguous run of lines of one Kind within a layer.
type Segment struct {
	Kind  Kind
	Start int // index into Program.Lines, inclusive
	End   int // exclusive

	// Derived lazily by Program.Path/ExtrusionPerMM/Feedrate; cached here
	// once computed so repeated queries (candidacy filter + anchor
	// derivation) don't re-walk the line range.
	path           geom.LineString
	extrusionPerMM float64
	feedrate       float64
	derived        bool
}

// Layer is one Z-layer of the motion program.
type Layer struct {
	Index                 int
	ZHeight               float64
	Start, End            int // line range, inclusive-exclusive
	BodyStart             int // first line after the ;LAYER_CHANGE/;Z: header (spec.md §6.1)
	Segments              []Segment
	SurroundingPerimeter  geom.Polygon // this layer's outer perimeter, once known
	PrevExternalPerimeter geom.Polygon // previous layer's outer perimeter (anchor source)
}

// Program is the full in-memory motion program.
type Program struct {
	Lines  []Line
	Layers []Layer

	// HeaderEnd is the line index where the first layer begins; lines
	// [0, HeaderEnd) are preamble, preserved verbatim.
	HeaderEnd int

	// Config holds the end-of-file "; key = value" block (spec §6.1),
	// decoded for convenience; the underlying lines are unchanged in
	// Program.Lines and round-trip like any other line.
	Config map[string]string
}
