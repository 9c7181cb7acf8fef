package logger

import (
	"github.com/rs/zerolog"

	"github.com/GoPowerDNS-Admin/naptr-editor/internal/metrics"
)

// MetricsHook counts log statements per level.
type MetricsHook struct {
	metrics *metrics.Metrics
}

// Run implements zerolog.Hook.
func (h MetricsHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel {
		h.metrics.LogStatement(level.String())
	}
}
