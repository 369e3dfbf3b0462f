package payroll

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/period"
)

// Status of a payroll run. Runs move Draft -> Processed -> Sent.
type Status string

const (
	StatusDraft     Status = "Draft"
	StatusProcessed Status = "Processed"
	StatusSent      Status = "Sent"
)

type Type string

const (
	TypeMonthly      Type = "Monthly"
	TypeHourly       Type = "Hourly"
	TypeProjectBased Type = "Project-based"
)

var Types = []Type{TypeMonthly, TypeHourly, TypeProjectBased}

// LineItem is one employee's pay within a run, fixed when the run is created.
type LineItem struct {
	EmployeeID string          `json:"employee_id"`
	Earnings   decimal.Decimal `json:"earnings"`
	Deductions decimal.Decimal `json:"deductions"`
	Net        decimal.Decimal `json:"net"`
}

type Run struct {
	ID        string       `json:"id"`
	Month     period.Month `json:"month"`
	Status    Status       `json:"status"`
	Type      Type         `json:"type"`
	Employees []LineItem   `json:"employees"`
	CreatedAt time.Time    `json:"createdAt"`
}
