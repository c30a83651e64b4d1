package mqtt

import (
	"context"
	"encoding/json"
	"log/slog"

	"inovelli-led-manager/internal/domain/model"
)

// Publisher is the part of Client the sinks need.
type Publisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// OutputPublisher is an OutputSink that publishes every command as a
// {"payload":{...}} envelope on the node's output topic.
type OutputPublisher struct {
	pub    Publisher
	topics Topics
	qos    byte
	logger *slog.Logger
}

func NewOutputPublisher(pub Publisher, topics Topics, qos byte, logger *slog.Logger) *OutputPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &OutputPublisher{pub: pub, topics: topics, qos: qos, logger: logger.With("component", "mqtt-output")}
}

func (p *OutputPublisher) Send(_ context.Context, node string, cmd model.OutboundCommand) {
	payload, err := json.Marshal(model.Envelope{Payload: cmd})
	if err != nil {
		p.logger.Error("encoding command", "node", node, "error", err)
		return
	}
	if err := p.pub.Publish(p.topics.Output(node), payload, p.qos, false); err != nil {
		p.logger.Error("publishing command", "node", node, "error", err)
	}
}

// StatusPublisher is a StatusSink that keeps a retained status per node.
type StatusPublisher struct {
	pub    Publisher
	topics Topics
	qos    byte
	logger *slog.Logger
}

func NewStatusPublisher(pub Publisher, topics Topics, qos byte, logger *slog.Logger) *StatusPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusPublisher{pub: pub, topics: topics, qos: qos, logger: logger.With("component", "mqtt-status")}
}

func (p *StatusPublisher) SetStatus(node string, status model.Status) {
	payload, err := json.Marshal(status)
	if err != nil {
		p.logger.Error("encoding status", "node", node, "error", err)
		return
	}
	if err := p.pub.Publish(p.topics.Status(node), payload, p.qos, true); err != nil {
		p.logger.Warn("publishing status", "node", node, "error", err)
	}
}
