package diagnostic

import "go.uber.org/zap"

// Log reports d on logger at the severity appropriate to its fatality:
// Warn for local diagnostics the driver will skip past, Error for fatal
// ones about to abort the run.
func Log(logger *zap.SugaredLogger, d *Diagnostic) {
	fields := []interface{}{"kind", d.Kind.String(), "layer", d.Layer}
	if d.Region >= 0 {
		fields = append(fields, "region", d.Region)
	}
	fields = append(fields, "error", d.Err)

	if d.Fatal() {
		logger.Errorw("arcweave: fatal diagnostic", fields...)
	} else {
		logger.Warnw("arcweave: region skipped", fields...)
	}
}
