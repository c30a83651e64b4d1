package validation

import (
	"inovelli-led-manager/internal/domain/colorconv"
	"inovelli-led-manager/internal/domain/model"
)

// NormalizeColor turns any accepted color notation into RGB. It never fails:
// when the input cannot be used it falls back to presetHue and says so.
func NormalizeColor(r *Report, color model.ColorInput, source string, presetHue int) model.RGB {
	var (
		rgb model.RGB
		ok  bool
	)

	switch color.Kind {
	case model.ColorRGB:
		rgb, ok = channels(color)
		if !ok {
			r.Fail(model.ErrInvalidColor, "Check your RGB values for %s: %s", source, color)
		}
	case model.ColorHex:
		c, err := colorconv.FromHex(color.Text)
		rgb, ok = c, err == nil
	case model.ColorKeyword:
		rgb, ok = colorconv.FromKeyword(color.Text)
	case model.ColorHue:
		if color.Hue >= 0 && color.Hue <= 360 {
			rgb, ok = colorconv.FromHue(color.Hue), true
		} else {
			r.Fail(model.ErrInvalidColor, "Incorrect Hue Value for %s: %s", source, color)
		}
	default:
		r.Note("Incorrect Color for %s: %s. Using default color: Red", source, color)
	}

	if !ok {
		r.Note("Incorrect Color for %s: %s. Using preset color value: %d", source, color, presetHue)
		rgb = colorconv.FromHue(float64(presetHue))
	}
	return rgb
}

func channels(color model.ColorInput) (model.RGB, bool) {
	if color.Malformed || len(color.Channels) != 3 {
		return model.RGB{}, false
	}
	var rgb model.RGB
	for i, ch := range color.Channels {
		if ch < 0 || ch > 255 || ch != float64(int(ch)) {
			return model.RGB{}, false
		}
		rgb[i] = uint8(ch)
	}
	return rgb, true
}
