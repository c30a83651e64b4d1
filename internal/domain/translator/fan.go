package translator

import (
	"fmt"

	"inovelli-led-manager/internal/domain/colorconv"
	"inovelli-led-manager/internal/domain/model"
)

type FanStrategy struct {
	HueParam int
	OnParam  int
	OffParam int
	Scaler   *HueScaler
}

func (s *FanStrategy) Parameters(in Inputs) []model.ParameterRecord {
	return sortRecords([]model.ParameterRecord{
		{Parameter: s.HueParam, Value: s.Scaler.Scale(colorconv.Hue(in.FanColor)), Size: 2},
		{Parameter: s.OnParam, Value: in.FanOn, Size: 1},
		{Parameter: s.OffParam, Value: in.FanOff, Size: 1},
	})
}

func (s *FanStrategy) Status(in Inputs) string {
	return fmt.Sprintf("Fan Color: %s, On/Off:%d/%d",
		colorconv.Keyword(colorconv.Hue(in.FanColor)), in.FanOn, in.FanOff)
}
