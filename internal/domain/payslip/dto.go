package payslip

import (
	"github.com/synczenith/synczenith-backend-go/internal/pkg/period"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/validator"
)

type PayslipFilter struct {
	EmployeeID   *string
	PayrollMonth *period.Month
}

type SendPayslipsRequest struct {
	PayrollID *string `json:"payroll_id,omitempty"`
	Via       Channel `json:"via,omitempty"`
}

func (r *SendPayslipsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Via == "" {
		r.Via = ChannelPortal
	}
	if !validator.IsInSlice(r.Via, Channels) {
		errs.Add("via", "must be email or portal")
	}

	return errs.Err()
}

type SendPayslipsResponse struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Via    Channel `json:"via"`
}
