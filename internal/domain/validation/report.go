// Package validation checks and normalizes the fields of an inbound request.
//
// Every check records into a Report instead of returning early, so a single
// message surfaces all of its problems at once.
package validation

import (
	"fmt"

	"inovelli-led-manager/internal/domain/model"
)

// Report accumulates the outcome of the validation stage of one message.
type Report struct {
	errors      []error
	diagnostics []string
}

func NewReport() *Report {
	return &Report{}
}

// Fail records a validation error. Any failure suppresses emission.
func (r *Report) Fail(kind error, format string, args ...any) {
	err := model.NewValidationError(kind, fmt.Sprintf(format, args...))
	r.errors = append(r.errors, err)
	r.diagnostics = append(r.diagnostics, err.Message)
}

// Note records a diagnostic that does not block emission.
func (r *Report) Note(format string, args ...any) {
	r.diagnostics = append(r.diagnostics, fmt.Sprintf(format, args...))
}

func (r *Report) Failed() bool {
	return len(r.errors) > 0
}

func (r *Report) Count() int {
	return len(r.errors)
}

func (r *Report) Errors() []error {
	return append([]error(nil), r.errors...)
}

// Diagnostics returns every message in the order it was raised.
func (r *Report) Diagnostics() []string {
	return append([]string(nil), r.diagnostics...)
}
