package sink

import (
	"log/slog"

	"inovelli-led-manager/internal/domain/model"
	"inovelli-led-manager/internal/ports"
)

// LogStatus records every status change in the structured log.
type LogStatus struct {
	logger *slog.Logger
}

func NewLogStatus(logger *slog.Logger) *LogStatus {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogStatus{logger: logger.With("component", "status")}
}

func (l *LogStatus) SetStatus(node string, status model.Status) {
	if status.Shape != "" {
		l.logger.Warn(status.Text, "node", node, "fill", status.Fill, "shape", status.Shape)
		return
	}
	l.logger.Info(status.Text, "node", node)
}

// MultiStatus forwards a status to each sink in turn.
type MultiStatus []ports.StatusSink

func (m MultiStatus) SetStatus(node string, status model.Status) {
	for _, s := range m {
		s.SetStatus(node, status)
	}
}
