// Package colorconv converts between the color notations the LED bar accepts.
package colorconv

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"inovelli-led-manager/internal/domain/model"
)

// FromHex parses "#rgb" or "#rrggbb".
func FromHex(s string) (model.RGB, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return model.RGB{}, fmt.Errorf("parsing hex color %q: %w", s, err)
	}
	return toRGB(c), nil
}

// FromKeyword looks up an SVG/CSS color keyword. Case and spaces are ignored.
func FromKeyword(s string) (model.RGB, bool) {
	name := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	c, ok := colornames.Map[name]
	if !ok {
		return model.RGB{}, false
	}
	return model.RGB{c.R, c.G, c.B}, true
}

// FromHue returns the fully saturated, full value color for a hue in degrees.
func FromHue(h float64) model.RGB {
	return toRGB(colorful.Hsv(wrapHue(h), 1, 1))
}

// Hue returns the HSL hue of c rounded to whole degrees, in [0, 360]. A hue
// just below 360 rounds up to 360 rather than wrapping to 0.
func Hue(c model.RGB) float64 {
	h, _, _ := fromRGB(c).Hsl()
	return math.Round(h)
}

// Keyword names the closest color keyword to the pure color of the given hue.
func Keyword(hue float64) string {
	return Nearest(toRGB(colorful.Hsl(wrapHue(hue), 1, 0.5)))
}

// Nearest returns the keyword with the smallest squared RGB distance to c.
// Ties go to the alphabetically first name.
func Nearest(c model.RGB) string {
	best := ""
	bestDist := math.MaxInt
	for _, name := range colornames.Names {
		k := colornames.Map[name]
		dr := int(c[0]) - int(k.R)
		dg := int(c[1]) - int(k.G)
		db := int(c[2]) - int(k.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func toRGB(c colorful.Color) model.RGB {
	r, g, b := c.Clamped().RGB255()
	return model.RGB{r, g, b}
}

func fromRGB(c model.RGB) colorful.Color {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
}
