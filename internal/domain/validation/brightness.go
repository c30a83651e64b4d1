package validation

import (
	"inovelli-led-manager/internal/domain/model"
)

const (
	MinBrightness = 0
	// MaxBrightness is 11 although the LED bar scale is documented as 0-10.
	MaxBrightness = 11
)

// CheckBrightness range-checks a level. The value is never altered.
func CheckBrightness(r *Report, level int, source string) bool {
	if level < MinBrightness || level > MaxBrightness {
		r.Fail(model.ErrInvalidBrightness,
			"Invalid brightness value for brightness while %s: %d. Please enter a value between %d and %d.",
			source, level, MinBrightness, MaxBrightness)
		return false
	}
	return true
}

// CheckLevel is CheckBrightness for a decoded level, which may not have been
// a number at all.
func CheckLevel(r *Report, level model.Level, source string) bool {
	if level.Invalid {
		r.Fail(model.ErrInvalidBrightness,
			"Invalid brightness value for brightness while %s: %s. Please enter a value between %d and %d.",
			source, level.Raw, MinBrightness, MaxBrightness)
		return false
	}
	return CheckBrightness(r, level.Value, source)
}
