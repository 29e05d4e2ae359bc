package arcconfig

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrRMaxBelowRMin is returned when RMax < RMin, the configuration error
// spec.md §4.3.5/§8 requires the driver to reject with a diagnostic
// rather than ever attempt to plan.
var ErrRMaxBelowRMin = errors.New("arcconfig: r_max is smaller than r_min")

// Config is the complete set of tunables the planner consults (spec.md
// §3). All distances are in millimeters, all angles in radians.
type Config struct {
	ArcWidth float64 // nominal arc extrusion width
	RMin     float64 // minimum arc radius, normally one arc width
	RMax     float64 // maximum arc radius (center-to-boundary reach)

	ArcCenterOffset float64 // outward nudge applied to a freshly chosen center

	ExtendArcsIntoPerimeter  float64 // inward region expansion before planning
	MaxDistanceFromPerimeter float64 // residual-coverage termination threshold

	MinBridgeArea   float64 // region rejected below this area (mm²)
	MinBridgeLength float64 // region rejected below this inscribed extent (mm)

	UseLeastCenterPoints bool // reuse one center until RMax before spawning a new one

	AngularStep float64 // arc discretization, radians

	ArcFeedrate    float64
	ArcTemperature float64 // 0 means "no override"
	ArcFan         float64

	FollowupFan          float64
	FollowupSpeedFactor  float64
}

// Default returns the compiled-in default configuration. Values mirror
// the reference ArcOverhang post-processor's own defaults for a 0.4mm
// nozzle: arc width equal to extrusion width, radii from one arc width
// up to 15mm, a 1mm center offset, half an arc width of inward
// extension, and a 2mm residual-coverage tolerance.
func Default() Config {
	return Config{
		ArcWidth:                 0.4,
		RMin:                     0.4,
		RMax:                     15,
		ArcCenterOffset:          1,
		ExtendArcsIntoPerimeter:  0.2,
		MaxDistanceFromPerimeter: 2,
		MinBridgeArea:            20,
		MinBridgeLength:          5,
		UseLeastCenterPoints:     false,
		AngularStep:              1 * (3.141592653589793 / 180),
		ArcFeedrate:              1000,
		ArcTemperature:           0,
		ArcFan:                   255,
		FollowupFan:              255,
		FollowupSpeedFactor:      0.3,
	}
}

// Validate checks the invariants spec.md requires before planning ever
// starts: RMin <= RMax, and ExtendArcsIntoPerimeter is at least half an
// arc width (spec.md §3).
func (c Config) Validate() error {
	if c.RMax < c.RMin {
		return ErrRMaxBelowRMin
	}
	if c.ExtendArcsIntoPerimeter < 0.5*c.ArcWidth {
		return fmt.Errorf("arcconfig: extend_arcs_into_perimeter (%g) below half arc width (%g)", c.ExtendArcsIntoPerimeter, 0.5*c.ArcWidth)
	}
	return nil
}

// fieldSetters maps config key names (as they appear in the motion
// program's trailing comment block and in sidecar files) to setters on a
// Config. Keeping this as a table, rather than a switch repeated in two
// call sites, is what lets ApplyOverrides and LoadSidecar share one
// implementation.
var fieldSetters = map[string]func(c *Config, v float64){
	"arc_width":                    func(c *Config, v float64) { c.ArcWidth = v },
	"r_min":                        func(c *Config, v float64) { c.RMin = v },
	"r_max":                        func(c *Config, v float64) { c.RMax = v },
	"arc_center_offset":            func(c *Config, v float64) { c.ArcCenterOffset = v },
	"extend_arcs_into_perimeter":   func(c *Config, v float64) { c.ExtendArcsIntoPerimeter = v },
	"max_distance_from_perimeter":  func(c *Config, v float64) { c.MaxDistanceFromPerimeter = v },
	"min_bridge_area":              func(c *Config, v float64) { c.MinBridgeArea = v },
	"min_bridge_length":            func(c *Config, v float64) { c.MinBridgeLength = v },
	"angular_step":                 func(c *Config, v float64) { c.AngularStep = v },
	"arc_feedrate":                 func(c *Config, v float64) { c.ArcFeedrate = v },
	"arc_temperature":              func(c *Config, v float64) { c.ArcTemperature = v },
	"arc_fan":                      func(c *Config, v float64) { c.ArcFan = v },
	"followup_fan":                 func(c *Config, v float64) { c.FollowupFan = v },
	"followup_speed_factor":        func(c *Config, v float64) { c.FollowupSpeedFactor = v },
}

// ApplyOverrides merges numeric key/value overrides (already decoded,
// e.g. from Program.Config or a sidecar file) onto c, ignoring unknown
// keys and reporting the first malformed value.
func ApplyOverrides(c Config, overrides map[string]string) (Config, error) {
	for key, raw := range overrides {
		setter, ok := fieldSetters[key]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c, fmt.Errorf("arcconfig: bad value for %q: %w", key, err)
		}
		setter(&c, v)
	}
	if key, ok := overrides["use_least_center_points"]; ok {
		c.UseLeastCenterPoints = key == "1" || key == "true"
	}
	return c, nil
}
