package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseLeadingInt reads the integer prefix of s the way flow editors store
// numeric fields ("13", " 5 ", "7px" all parse; "abc" does not).
func ParseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		ch := s[end]
		if (ch == '-' || ch == '+') && end == 0 {
			end++
			continue
		}
		if ch < '0' || ch > '9' {
			break
		}
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Level is a brightness level sent either as a JSON number or a numeric
// string. Any other value is kept in Raw and flagged Invalid, so it is
// reported with the rest of the message instead of failing the decode.
type Level struct {
	Value   int
	Raw     string
	Invalid bool
}

func (l *Level) UnmarshalJSON(data []byte) error {
	*l = Level{Raw: strings.TrimSpace(string(data))}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		l.Value = int(math.Trunc(t))
	case string:
		n, ok := ParseLeadingInt(t)
		if !ok {
			l.Raw, l.Invalid = t, true
			return nil
		}
		l.Value = n
	default:
		l.Invalid = true
	}
	return nil
}

// Text is a string field that also accepts a bare JSON number, so node ids
// and switch type codes can be sent either way. Other JSON values keep their
// literal text and fail later validation.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(x)
	case float64:
		*t = Text(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		*t = Text(strings.TrimSpace(string(data)))
	}
	return nil
}
