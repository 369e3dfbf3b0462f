package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentTypeMonthly PaymentType = "Monthly"
	PaymentTypeProject PaymentType = "Project"
	PaymentTypeHourly  PaymentType = "Hourly"
)

var PaymentTypes = []PaymentType{PaymentTypeMonthly, PaymentTypeProject, PaymentTypeHourly}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

var Statuses = []Status{StatusActive, StatusInactive}

type Source string

const (
	SourceHRMS   Source = "HRMS"
	SourceManual Source = "Manual"
)

var Sources = []Source{SourceHRMS, SourceManual}

// PayrollProfile holds the pay components agreed with an employee. EPF and
// ESI are percentages. Basic is required on create.
type PayrollProfile struct {
	Basic    *decimal.Decimal `json:"basic,omitempty"`
	HRA      *decimal.Decimal `json:"hra,omitempty"`
	TA       decimal.Decimal  `json:"ta"`
	Bonus    decimal.Decimal  `json:"bonus"`
	EPF      decimal.Decimal  `json:"epf"`
	ESI      decimal.Decimal  `json:"esi"`
	TotalCTC decimal.Decimal  `json:"totalCTC"`
}

type Employee struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Department     *string         `json:"department"`
	Email          string          `json:"email"`
	PaymentType    PaymentType     `json:"paymentType"`
	PayrollProfile *PayrollProfile `json:"payrollProfile"`
	Status         Status          `json:"status"`
	Source         Source          `json:"source"`
	CreatedAt      time.Time       `json:"createdAt"`
}
