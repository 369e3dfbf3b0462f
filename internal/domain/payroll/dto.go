package payroll

import (
	"strings"

	"github.com/synczenith/synczenith-backend-go/internal/pkg/period"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/validator"
)

type CreatePayrollRequest struct {
	Month       string   `json:"month"`
	Type        Type     `json:"type,omitempty"`
	EmployeeIDs []string `json:"employee_ids"`
}

// Validate checks the request and returns the normalized month.
func (r *CreatePayrollRequest) Validate() (period.Month, error) {
	var errs validator.ValidationErrors

	if r.Type == "" {
		r.Type = TypeMonthly
	}

	var month period.Month
	if validator.IsEmpty(r.Month) {
		errs.Add("month", "is required")
	} else {
		m, err := period.ParseMonth(strings.TrimSpace(r.Month))
		if err != nil {
			errs.Add("month", "must be a date in YYYY-MM-DD or YYYY-MM format")
		}
		month = m
	}
	if !validator.IsInSlice(r.Type, Types) {
		errs.Add("type", "must be one of Monthly, Hourly, Project-based")
	}
	if r.EmployeeIDs == nil {
		errs.Add("employee_ids", "is required")
	}

	return month, errs.Err()
}

type CreatePayrollResponse struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
}

// PayrollFilter narrows a run listing. A nil field is not filtered on.
type PayrollFilter struct {
	Status *Status
	Month  *period.Range
}

type ProcessPayrollRequest struct {
	ID      string `json:"-"`
	Approve *bool  `json:"approve,omitempty"`
}

type ProcessPayrollResponse struct {
	Status   Status `json:"status"`
	Payslips int    `json:"payslips"`
}
