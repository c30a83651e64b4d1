package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"inovelli-led-manager/internal/domain/model"
	"inovelli-led-manager/internal/ports"
)

// Subscriber is the part of Client the listener needs.
type Subscriber interface {
	Subscribe(topic string, qos byte, handler MessageHandler) error
}

// Listener feeds messages from every node input topic into the manager.
type Listener struct {
	manager ports.ManagerPort
	topics  Topics
	qos     byte
	logger  *slog.Logger
}

func NewListener(manager ports.ManagerPort, topics Topics, qos byte, logger *slog.Logger) *Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return &Listener{manager: manager, topics: topics, qos: qos, logger: logger.With("component", "mqtt-input")}
}

// Start subscribes to the wildcard input topic.
func (l *Listener) Start(sub Subscriber) error {
	topic := l.topics.AllInputs()
	if err := sub.Subscribe(topic, l.qos, l.Handle); err != nil {
		return fmt.Errorf("subscribing to %s: %w", topic, err)
	}
	l.logger.Info("listening for node input", "topic", topic)
	return nil
}

// Handle decodes one inbound message and runs it through the node's manager.
// Payloads that are not a JSON message are rejected on the node.
func (l *Listener) Handle(topic string, payload []byte) error {
	node, ok := l.topics.NodeFromInput(topic)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTopic, topic)
	}

	ctx := context.Background()

	var msg model.Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return l.manager.Reject(ctx, node, err)
	}

	res, err := l.manager.Process(ctx, node, &msg)
	if err != nil {
		return fmt.Errorf("processing message for %s: %w", node, err)
	}
	l.logger.Debug("message processed",
		"node", node,
		"commands", len(res.Commands),
		"failed", res.Failed(),
	)
	return nil
}
