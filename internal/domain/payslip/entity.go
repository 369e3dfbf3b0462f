package payslip

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/period"
)

type Payslip struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	PayrollMonth period.Month    `json:"payrollMonth"`
	GrossSalary  decimal.Decimal `json:"grossSalary"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"netSalary"`
	PDFPath      *string         `json:"pdfPath"`
	Sent         bool            `json:"sent"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Channel is how employees are told a payslip is available. Dispatch only
// flags the payslip; nothing is delivered.
type Channel string

const (
	ChannelEmail  Channel = "email"
	ChannelPortal Channel = "portal"
)

var Channels = []Channel{ChannelEmail, ChannelPortal}
