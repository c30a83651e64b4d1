package model

// ServiceSetConfigParameter is the integration service every command calls.
const ServiceSetConfigParameter = "set_config_parameter"

// Message is the inbound envelope.
type Message struct {
	Payload CommandRequest `json:"payload"`
}

// CommandRequest overrides any preset field. Zero values mean "use the preset",
// except for colors and brightness levels where presence is tracked.
type CommandRequest struct {
	Domain             Domain     `json:"zwave,omitempty"`
	SwitchType         Text       `json:"switchtype,omitempty"`
	LightColor         ColorInput `json:"lightColor"`
	LightBrightness    *Level     `json:"lightBrightness,omitempty"`
	LightBrightnessOff *Level     `json:"lightBrightnessOff,omitempty"`
	FanColor           ColorInput `json:"fanColor"`
	FanBrightness      *Level     `json:"fanBrightness,omitempty"`
	FanBrightnessOff   *Level     `json:"fanBrightnessOff,omitempty"`
	EntityID           string     `json:"entity_id,omitempty"`
	NodeID             Text       `json:"node_id,omitempty"`
}

// ParameterRecord is one Z-Wave configuration parameter write.
type ParameterRecord struct {
	Parameter int
	Value     int
	Size      int // bytes, 1 or 2
}

type CommandData struct {
	EntityID  string `json:"entity_id,omitempty"`
	NodeID    *int   `json:"node_id,omitempty"`
	Parameter int    `json:"parameter"`
	Value     int    `json:"value"`
	Size      int    `json:"size,omitempty"`
}

// OutboundCommand is a single service call for a single target.
type OutboundCommand struct {
	Domain  Domain      `json:"domain"`
	Service string      `json:"service"`
	Data    CommandData `json:"data"`
}

// Envelope wraps a command the way downstream flow nodes expect it.
type Envelope struct {
	Payload OutboundCommand `json:"payload"`
}

// Status is the operator-facing indicator of a node. A plain text status
// leaves Fill and Shape empty.
type Status struct {
	Fill  string `json:"fill,omitempty"`
	Shape string `json:"shape,omitempty"`
	Text  string `json:"text"`
}

func TextStatus(text string) Status {
	return Status{Text: text}
}

// StatusCheckDebug is shown whenever a message could not be fully applied.
const StatusCheckDebug = "Error! Check debug window for more info"
