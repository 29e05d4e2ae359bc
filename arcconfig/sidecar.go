package arcconfig

import (
	"bufio"
	"os"
	"strings"
)

// SidecarPath returns the sidecar configuration path for a motion file,
// "<motionFile>.cfg" next to it (spec.md §6.4).
func SidecarPath(motionFile string) string {
	return motionFile + ".cfg"
}

// LoadSidecar reads overrides from the sidecar file next to motionFile,
// if it exists, and applies them on top of base. A missing sidecar file
// is not an error: base is returned unchanged.
func LoadSidecar(base Config, motionFile string) (Config, error) {
	f, err := os.Open(SidecarPath(motionFile))
	if os.IsNotExist(err) {
		return base, nil
	}
	if err != nil {
		return base, err
	}
	defer f.Close()

	overrides := make(map[string]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		line = strings.TrimPrefix(line, ";")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		eq := strings.Index(line, "=")
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(line[:eq])
		val := strings.TrimSpace(line[eq+1:])
		if key != "" {
			overrides[key] = val
		}
	}
	if err := sc.Err(); err != nil {
		return base, err
	}
	return ApplyOverrides(base, overrides)
}

// Resolve builds the effective Config for a motion file: compiled
// defaults, overlaid by the program's own trailing config block,
// overlaid by the sidecar file (spec.md §6.4 precedence).
func Resolve(programConfig map[string]string, motionFile string) (Config, error) {
	cfg, err := ApplyOverrides(Default(), programConfig)
	if err != nil {
		return cfg, err
	}
	return LoadSidecar(cfg, motionFile)
}
