// Package sink holds the host-side channels a node reports through.
package sink

import (
	"log/slog"
)

// LogErrors writes node diagnostics to the structured log.
type LogErrors struct {
	logger *slog.Logger
}

func NewLogErrors(logger *slog.Logger) *LogErrors {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogErrors{logger: logger.With("component", "diagnostics")}
}

func (l *LogErrors) ReportError(node, message string) {
	l.logger.Warn(message, "node", node)
}
