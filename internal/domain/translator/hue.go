package translator

import (
	"fmt"
	"math"
	"sync"

	"github.com/Knetic/govaluate"
)

// DefaultHueFormula maps the 0-360 color wheel onto the 0-255 parameter range.
const DefaultHueFormula = "x * 17 / 24"

const maxHueValue = 255

// HueScaler converts a hue in degrees into the device's hue parameter value
// using a formula in x.
type HueScaler struct {
	formula string
	expr    *govaluate.EvaluableExpression
	mu      sync.Mutex
}

func NewHueScaler(formula string) (*HueScaler, error) {
	if formula == "" {
		formula = DefaultHueFormula
	}
	expr, err := govaluate.NewEvaluableExpression(formula)
	if err != nil {
		return nil, fmt.Errorf("parsing hue formula %q: %w", formula, err)
	}
	return &HueScaler{formula: formula, expr: expr}, nil
}

func DefaultHueScaler() *HueScaler {
	s, err := NewHueScaler(DefaultHueFormula)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *HueScaler) Formula() string {
	return s.formula
}

// Scale rounds the formula result to the nearest integer and clamps it to 0-255.
func (s *HueScaler) Scale(hue float64) int {
	v := int(math.Round(s.evaluate(hue)))
	if v < 0 {
		return 0
	}
	if v > maxHueValue {
		return maxHueValue
	}
	return v
}

// evaluate falls back to the default factor when the formula does not
// produce a number.
func (s *HueScaler) evaluate(x float64) float64 {
	s.mu.Lock()
	result, err := s.expr.Evaluate(map[string]interface{}{"x": x})
	s.mu.Unlock()
	if err != nil {
		return x * 17 / 24
	}
	if val, ok := result.(float64); ok {
		return val
	}
	return x * 17 / 24
}
