package sink

import (
	"context"

	"inovelli-led-manager/internal/domain/model"
	"inovelli-led-manager/internal/ports"
)

// MultiOutput hands every command to each configured output in turn.
type MultiOutput []ports.OutputSink

func (m MultiOutput) Send(ctx context.Context, node string, cmd model.OutboundCommand) {
	for _, out := range m {
		out.Send(ctx, node, cmd)
	}
}
