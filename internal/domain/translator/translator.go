package translator

import (
	"inovelli-led-manager/internal/domain/model"
)

// Inputs carries the normalized values of one request into a strategy.
type Inputs struct {
	LightColor model.RGB
	LightOn    int
	LightOff   int
	FanColor   model.RGB
	FanOn      int
	FanOff     int
}

// Translator builds the parameter table of one switch type.
type Translator interface {
	// Parameters returns the records ordered by parameter number.
	Parameters(in Inputs) []model.ParameterRecord
	// Status describes the applied colors for the operator.
	Status(in Inputs) string
}
