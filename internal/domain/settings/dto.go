package settings

import (
	"github.com/synczenith/synczenith-backend-go/internal/pkg/validator"
)

// UpdateSettingsRequest replaces the settings document. Fields left out of
// the request body take their default values.
type UpdateSettingsRequest struct {
	Settings
}

// NewUpdateSettingsRequest returns a request pre-filled with defaults, ready
// to be decoded into.
func NewUpdateSettingsRequest() UpdateSettingsRequest {
	return UpdateSettingsRequest{Settings: Default()}
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EPFPercent.IsNegative() {
		errs.Add("epf_percent", "must be non-negative")
	}
	if r.ESIPercent.IsNegative() {
		errs.Add("esi_percent", "must be non-negative")
	}
	if r.TaxRules == nil {
		r.TaxRules = map[string]any{}
	}

	return errs.Err()
}

type UpdateSettingsResponse struct {
	Status string `json:"status"`
}
