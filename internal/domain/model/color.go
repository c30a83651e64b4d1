package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RGB is a canonical color, one byte per channel.
type RGB [3]uint8

type ColorKind int

const (
	ColorUnset ColorKind = iota
	ColorRGB
	ColorHex
	ColorKeyword
	ColorHue
	ColorOther
)

// ColorInput holds a color in whichever shape the sender used.
type ColorInput struct {
	Kind ColorKind
	// Channels holds the numeric elements of an array input. Malformed is set
	// when an element was not a number.
	Channels  []float64
	Malformed bool
	Text      string
	Hue       float64
	Raw       string
}

func HueColor(h float64) ColorInput {
	return ColorInput{Kind: ColorHue, Hue: h, Raw: strconv.FormatFloat(h, 'f', -1, 64)}
}

func HexColor(s string) ColorInput {
	return ColorInput{Kind: ColorHex, Text: s, Raw: strconv.Quote(s)}
}

func KeywordColor(s string) ColorInput {
	return ColorInput{Kind: ColorKeyword, Text: s, Raw: strconv.Quote(s)}
}

func RGBColor(channels ...float64) ColorInput {
	c := ColorInput{Kind: ColorRGB, Channels: channels}
	c.Raw = "[" + c.String() + "]"
	return c
}

// IsSet reports whether the sender supplied a value at all.
func (c ColorInput) IsSet() bool {
	return c.Kind != ColorUnset
}

func (c ColorInput) String() string {
	switch c.Kind {
	case ColorRGB:
		parts := make([]string, len(c.Channels))
		for i, ch := range c.Channels {
			parts[i] = strconv.FormatFloat(ch, 'f', -1, 64)
		}
		return strings.Join(parts, ",")
	case ColorHex, ColorKeyword:
		return c.Text
	case ColorHue:
		return strconv.FormatFloat(c.Hue, 'f', -1, 64)
	case ColorUnset:
		return "undefined"
	default:
		return c.Raw
	}
}

func (c *ColorInput) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	*c = ColorInput{Raw: raw}
	if raw == "" || raw == "null" {
		return nil
	}

	switch raw[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return err
		}
		c.Kind = ColorRGB
		c.Channels = make([]float64, 0, len(elems))
		for _, e := range elems {
			var v float64
			if err := json.Unmarshal(e, &v); err != nil {
				c.Malformed = true
				continue
			}
			c.Channels = append(c.Channels, v)
		}
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		c.Text = s
		if strings.HasPrefix(s, "#") {
			c.Kind = ColorHex
		} else {
			c.Kind = ColorKeyword
		}
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err == nil {
			c.Kind = ColorHue
			c.Hue = f
		} else {
			c.Kind = ColorOther
		}
	}
	return nil
}
