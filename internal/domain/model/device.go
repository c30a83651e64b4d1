package model

type Domain string

const (
	DomainOZW     Domain = "ozw"
	DomainZWave   Domain = "zwave"
	DomainZWaveJS Domain = "zwave_js"
)

// SupportedDomains lists the integrations a command can be addressed to.
var SupportedDomains = []Domain{DomainOZW, DomainZWave, DomainZWaveJS}

type SwitchType int

const (
	SwitchTypeSwitch     SwitchType = 5
	SwitchTypeDimmer     SwitchType = 13
	SwitchTypeComboLight SwitchType = 18
	SwitchTypeComboFan   SwitchType = 20
	SwitchTypeCombo      SwitchType = 38
)

// SwitchTypes is the closed set of Inovelli product family codes.
var SwitchTypes = []SwitchType{
	SwitchTypeSwitch,
	SwitchTypeDimmer,
	SwitchTypeComboLight,
	SwitchTypeComboFan,
	SwitchTypeCombo,
}

func (t SwitchType) Valid() bool {
	for _, v := range SwitchTypes {
		if v == t {
			return true
		}
	}
	return false
}

// HasLight reports whether the switch type drives the light LED bar.
func (t SwitchType) HasLight() bool {
	return t != SwitchTypeComboFan
}

// HasFan reports whether the switch type drives the fan LED bar.
func (t SwitchType) HasFan() bool {
	return t == SwitchTypeComboFan || t == SwitchTypeCombo
}

// DeviceConfig is the preset a node is deployed with. The pipeline only reads it.
type DeviceConfig struct {
	ID                 string `json:"id,omitempty"`
	Name               string `json:"name"`
	Domain             Domain `json:"zwave"`
	NodeID             string `json:"node_id,omitempty"` // single id or comma separated list
	EntityID           string `json:"entity_id,omitempty"`
	SwitchType         string `json:"switchtype"`  // alias or numeric code
	LightColor         int    `json:"light_color"` // hue degrees
	LightBrightness    int    `json:"light_brightness"`
	LightBrightnessOff int    `json:"light_brightness_off"`
	FanColor           int    `json:"fan_color"` // hue degrees
	FanBrightness      int    `json:"fan_brightness"`
	FanBrightnessOff   int    `json:"fan_brightness_off"`
}
