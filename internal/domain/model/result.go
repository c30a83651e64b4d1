package model

// Result describes what a single inbound message produced.
type Result struct {
	Node        string            `json:"node"`
	SwitchType  SwitchType        `json:"switchtype,omitempty"`
	Commands    []OutboundCommand `json:"commands"`
	Errors      []string          `json:"errors,omitempty"`
	Diagnostics []string          `json:"diagnostics,omitempty"`
	Status      Status            `json:"status"`
}

// Failed reports whether validation rejected the message.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}
