package ports

import (
	"context"
	"inovelli-led-manager/internal/domain/model"
)

// ErrorSink receives every diagnostic a node raises.
type ErrorSink interface {
	ReportError(node, message string)
}

// StatusSink receives the operator-facing state of a node.
type StatusSink interface {
	SetStatus(node string, status model.Status)
}

// OutputSink takes one command at a time. Delivery is fire-and-forget.
type OutputSink interface {
	Send(ctx context.Context, node string, cmd model.OutboundCommand)
}
