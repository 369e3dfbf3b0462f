package employee

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/validator"
)

type EmployeeFilter struct {
	Department *string
	Source     *string
}

type CreateEmployeeRequest struct {
	Name           string          `json:"name"`
	Department     *string         `json:"department,omitempty"`
	Email          string          `json:"email"`
	PaymentType    PaymentType     `json:"paymentType,omitempty"`
	PayrollProfile *PayrollProfile `json:"payrollProfile,omitempty"`
	Status         Status          `json:"status,omitempty"`
	Source         Source          `json:"source,omitempty"`
}

// ApplyDefaults fills the optional enums the way an omitted field is stored.
func (r *CreateEmployeeRequest) ApplyDefaults() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	if r.PaymentType == "" {
		r.PaymentType = PaymentTypeMonthly
	}
	if r.Status == "" {
		r.Status = StatusActive
	}
	if r.Source == "" {
		r.Source = SourceManual
	}
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "is required")
	}
	if validator.IsEmpty(r.Email) {
		errs.Add("email", "is required")
	} else if !validator.IsValidEmail(r.Email) {
		errs.Add("email", "must be a valid email address")
	}
	if !validator.IsInSlice(r.PaymentType, PaymentTypes) {
		errs.Add("paymentType", "must be one of Monthly, Project, Hourly")
	}
	if !validator.IsInSlice(r.Status, Statuses) {
		errs.Add("status", "must be Active or Inactive")
	}
	if !validator.IsInSlice(r.Source, Sources) {
		errs.Add("source", "must be HRMS or Manual")
	}

	if p := r.PayrollProfile; p != nil {
		if p.Basic == nil {
			errs.Add("payrollProfile.basic", "is required")
		}
		amounts := []struct {
			field  string
			amount *decimal.Decimal
		}{
			{"payrollProfile.basic", p.Basic},
			{"payrollProfile.hra", p.HRA},
			{"payrollProfile.ta", &p.TA},
			{"payrollProfile.bonus", &p.Bonus},
			{"payrollProfile.epf", &p.EPF},
			{"payrollProfile.esi", &p.ESI},
			{"payrollProfile.totalCTC", &p.TotalCTC},
		}
		for _, a := range amounts {
			if !validator.IsNonNegative(a.amount) {
				errs.Add(a.field, "must be non-negative")
			}
		}
	}

	return errs.Err()
}

type CreateEmployeeResponse struct {
	ID string `json:"id"`
}
