package emit

import (
	"fmt"

	"github.com/gcodearc/arcweave/gcode"
)

func typeMarkerLine(text string) gcode.Line {
	raw := ";TYPE:" + text
	return gcode.Line{Raw: raw, Kind: gcode.LineTypeMarker, TypeText: text}
}

func travelLine(x, y float64) gcode.Line {
	raw := fmt.Sprintf("G0 X%.3f Y%.3f", x, y)
	return gcode.Line{Raw: raw, Kind: gcode.LineMotion, Command: "G0", HasX: true, X: x, HasY: true, Y: y}
}

func extrudeLine(x, y, e float64, f float64, withF bool) gcode.Line {
	l := gcode.Line{Kind: gcode.LineMotion, Command: "G1", HasX: true, X: x, HasY: true, Y: y, HasE: true, E: e}
	if withF {
		l.HasF, l.F = true, f
		l.Raw = fmt.Sprintf("G1 X%.3f Y%.3f E%.5f F%.0f", x, y, e, f)
	} else {
		l.Raw = fmt.Sprintf("G1 X%.3f Y%.3f E%.5f", x, y, e)
	}
	return l
}

func feedrateLine(f float64) gcode.Line {
	raw := fmt.Sprintf("G1 F%.0f", f)
	return gcode.Line{Raw: raw, Kind: gcode.LineMotion, Command: "G1", HasF: true, F: f}
}

func fanLine(s float64) gcode.Line {
	raw := fmt.Sprintf("M106 S%.0f", s)
	return gcode.Line{Raw: raw, Kind: gcode.LineFan, FanCommand: "M106", S: s}
}

func tempLine(cmd string, s float64) gcode.Line {
	raw := fmt.Sprintf("%s S%.0f", cmd, s)
	return gcode.Line{Raw: raw, Kind: gcode.LineTemperature, TempCommand: cmd, S: s}
}
