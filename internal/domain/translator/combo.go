package translator

import (
	"fmt"
	"sort"

	"inovelli-led-manager/internal/domain/colorconv"
	"inovelli-led-manager/internal/domain/model"
)

// ComboStrategy covers the LZW36 when both the light and the fan bar are set.
type ComboStrategy struct {
	Light *LightStrategy
	Fan   *FanStrategy
}

func (s *ComboStrategy) Parameters(in Inputs) []model.ParameterRecord {
	records := append(s.Light.Parameters(in), s.Fan.Parameters(in)...)
	return sortRecords(records)
}

func (s *ComboStrategy) Status(in Inputs) string {
	return fmt.Sprintf("Set Fan Color: %s; Set Light Color: %s",
		colorconv.Keyword(colorconv.Hue(in.FanColor)),
		colorconv.Keyword(colorconv.Hue(in.LightColor)))
}

func sortRecords(records []model.ParameterRecord) []model.ParameterRecord {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Parameter < records[j].Parameter
	})
	return records
}
