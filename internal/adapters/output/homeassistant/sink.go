package homeassistant

import (
	"context"
	"log/slog"
	"time"

	"inovelli-led-manager/internal/domain/model"
	"inovelli-led-manager/internal/ports"
)

const defaultCallTimeout = 10 * time.Second

// Sink delivers commands as Home Assistant service calls. Each call runs on
// its own goroutine; failures are logged and not retried.
type Sink struct {
	ha      ports.HomeAssistantPort
	logger  *slog.Logger
	timeout time.Duration
}

func NewSink(ha ports.HomeAssistantPort, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sink{ha: ha, logger: logger.With("component", "homeassistant"), timeout: defaultCallTimeout}
}

func (s *Sink) Send(ctx context.Context, node string, cmd model.OutboundCommand) {
	if !s.ha.IsConfigured() {
		s.logger.Warn("dropping command, Home Assistant not configured", "node", node)
		return
	}
	go func() {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		if err := s.ha.CallService(callCtx, string(cmd.Domain), cmd.Service, cmd.Data); err != nil {
			s.logger.Error("service call failed",
				"node", node,
				"domain", cmd.Domain,
				"parameter", cmd.Data.Parameter,
				"error", err,
			)
		}
	}()
}

// WithTimeout bounds each service call. Non-positive values are ignored.
func (s *Sink) WithTimeout(d time.Duration) *Sink {
	if d > 0 {
		s.timeout = d
	}
	return s
}
