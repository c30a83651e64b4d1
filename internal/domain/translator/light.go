package translator

import (
	"fmt"

	"inovelli-led-manager/internal/domain/colorconv"
	"inovelli-led-manager/internal/domain/model"
)

// LightStrategy drives a light LED bar: hue is a 2 byte parameter, the on and
// off brightness levels are 1 byte each.
type LightStrategy struct {
	HueParam int
	OnParam  int
	OffParam int
	Scaler   *HueScaler
}

func (s *LightStrategy) Parameters(in Inputs) []model.ParameterRecord {
	return sortRecords([]model.ParameterRecord{
		{Parameter: s.HueParam, Value: s.Scaler.Scale(colorconv.Hue(in.LightColor)), Size: 2},
		{Parameter: s.OnParam, Value: in.LightOn, Size: 1},
		{Parameter: s.OffParam, Value: in.LightOff, Size: 1},
	})
}

func (s *LightStrategy) Status(in Inputs) string {
	return fmt.Sprintf("Light Color: %s, On/Off:%d/%d",
		colorconv.Keyword(colorconv.Hue(in.LightColor)), in.LightOn, in.LightOff)
}
