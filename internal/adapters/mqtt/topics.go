package mqtt

import (
	"fmt"
	"strings"
)

// Topics builds the per-node topic hierarchy under a configurable prefix:
//
//	<prefix>/<node>/input    inbound messages
//	<prefix>/<node>/output   outbound service-call envelopes
//	<prefix>/<node>/status   retained node status
//	<prefix>/bridge/status   retained online/offline of the process
type Topics struct {
	Prefix string
}

const (
	suffixInput  = "input"
	suffixOutput = "output"
	suffixStatus = "status"

	bridgeSegment = "bridge"
)

func (t Topics) Input(node string) string {
	return fmt.Sprintf("%s/%s/%s", t.Prefix, node, suffixInput)
}

func (t Topics) Output(node string) string {
	return fmt.Sprintf("%s/%s/%s", t.Prefix, node, suffixOutput)
}

func (t Topics) Status(node string) string {
	return fmt.Sprintf("%s/%s/%s", t.Prefix, node, suffixStatus)
}

// AllInputs matches the input topic of every node.
func (t Topics) AllInputs() string {
	return fmt.Sprintf("%s/+/%s", t.Prefix, suffixInput)
}

// BridgeStatus is used for the LWT and the online announcement.
func (t Topics) BridgeStatus() string {
	return fmt.Sprintf("%s/%s/%s", t.Prefix, bridgeSegment, suffixStatus)
}

// NodeFromInput extracts the node name from an input topic.
func (t Topics) NodeFromInput(topic string) (string, bool) {
	rest, ok := strings.CutPrefix(topic, t.Prefix+"/")
	if !ok {
		return "", false
	}
	node, ok := strings.CutSuffix(rest, "/"+suffixInput)
	if !ok || node == "" || strings.Contains(node, "/") {
		return "", false
	}
	return node, true
}
