package validation

import (
	"math"
	"strconv"
	"strings"

	"inovelli-led-manager/internal/domain/model"
)

var switchAliases = map[string]model.SwitchType{
	"switch":        model.SwitchTypeSwitch,
	"lzw30":         model.SwitchTypeSwitch,
	"lzw30-sn":      model.SwitchTypeSwitch,
	"dimmer":        model.SwitchTypeDimmer,
	"lzw31":         model.SwitchTypeDimmer,
	"lzw31-sn":      model.SwitchTypeDimmer,
	"combo light":   model.SwitchTypeComboLight,
	"lzw36 light":   model.SwitchTypeComboLight,
	"combo fan":     model.SwitchTypeComboFan,
	"lzw36 fan":     model.SwitchTypeComboFan,
	"fan":           model.SwitchTypeComboFan,
	"lzw36":         model.SwitchTypeCombo,
	"fan and light": model.SwitchTypeCombo,
	"light and fan": model.SwitchTypeCombo,
}

// normalizeAlias lower-cases the alias and treats underscores and runs of
// spaces as a single separator.
func normalizeAlias(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, "_", " "))
	return strings.Join(strings.Fields(s), " ")
}

// ResolveSwitchType maps an alias or a numeric code to a switch type.
func ResolveSwitchType(r *Report, value string) (model.SwitchType, bool) {
	trimmed := strings.TrimSpace(value)
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		code := model.SwitchType(f)
		if f == math.Trunc(f) && code.Valid() {
			return code, true
		}
		r.Fail(model.ErrInvalidSwitchType,
			"Incorrect Switch Value: %s. Valid values are 5, 13, 18, 20, or 38.", trimmed)
		return 0, false
	}

	if code, ok := switchAliases[normalizeAlias(value)]; ok {
		return code, true
	}
	r.Fail(model.ErrInvalidSwitchType, "Incorrect Switch Type: %s", strings.ToLower(trimmed))
	return 0, false
}
