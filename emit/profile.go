package emit

import (
	"math"
	"strconv"

	"github.com/gcodearc/arcweave/gcode"
)

// printerProfile holds the physical constants the extrusion formula
// needs (spec.md §4.4: "ℓ · arc_width · layer_height ·
// extrusion_multiplier / filament_area"). These are read from the
// motion program's own trailing config block (spec.md §6.1: "key/value
// comments... consulted to extract arc_width proxies"), not from
// arcconfig.Config, since they describe the print/profile, not the
// planner's tuning.
type printerProfile struct {
	layerHeight        float64
	extrusionMultiplier float64
	filamentArea        float64
}

const (
	defaultLayerHeight        = 0.2
	defaultExtrusionMultiplier = 1.0
	defaultFilamentDiameter    = 1.75
)

func readProfile(m *gcode.Program, layerIndex int) printerProfile {
	p := printerProfile{
		layerHeight:        defaultLayerHeight,
		extrusionMultiplier: defaultExtrusionMultiplier,
		filamentArea:        filamentArea(defaultFilamentDiameter),
	}

	if v, ok := floatConfig(m, "layer_height"); ok {
		p.layerHeight = v
	} else if layerIndex > 0 && layerIndex < len(m.Layers) {
		if dz := m.Layers[layerIndex].ZHeight - m.Layers[layerIndex-1].ZHeight; dz > 0 {
			p.layerHeight = dz
		}
	}

	if v, ok := floatConfig(m, "extrusion_multiplier"); ok {
		p.extrusionMultiplier = v
	}

	if v, ok := floatConfig(m, "filament_diameter"); ok && v > 0 {
		p.filamentArea = filamentArea(v)
	}

	return p
}

func filamentArea(diameter float64) float64 {
	r := diameter / 2
	return math.Pi * r * r
}

func floatConfig(m *gcode.Program, key string) (float64, bool) {
	raw, ok := m.Config[key]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
