package validation

import (
	"inovelli-led-manager/internal/domain/model"
)

// CheckDomain accepts ozw, zwave and zwave_js.
func CheckDomain(r *Report, domain model.Domain) bool {
	for _, d := range model.SupportedDomains {
		if d == domain {
			return true
		}
	}
	r.Fail(model.ErrInvalidDomain,
		"Invalid Z-Wave domain: %s. Supported domains are zwave, ozw, or zwave_js.", domain)
	return false
}
