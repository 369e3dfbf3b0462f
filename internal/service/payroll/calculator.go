package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/synczenith/synczenith-backend-go/internal/domain/employee"
	"github.com/synczenith/synczenith-backend-go/internal/domain/payroll"
)

var (
	// DefaultBasic applies to employees without a payroll profile or whose
	// stored profile has no basic.
	DefaultBasic = decimal.NewFromInt(30000)
	// HRARate is the share of basic paid as HRA when the profile has none.
	HRARate = decimal.RequireFromString("0.40")
	// DeductionRate is applied to gross. It is fixed and does not follow the
	// stored settings.
	DeductionRate = decimal.RequireFromString("0.12")
)

type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate derives an employee's line item. Transport, bonus, the EPF/ESI
// percentages and total CTC on the profile do not enter the computation.
func (c *Calculator) Calculate(emp employee.Employee) payroll.LineItem {
	basic, hra := c.components(emp.PayrollProfile)

	gross := basic.Add(hra)
	deductions := gross.Mul(DeductionRate)

	return payroll.LineItem{
		EmployeeID: emp.ID,
		Earnings:   gross,
		Deductions: deductions,
		Net:        gross.Sub(deductions),
	}
}

func (c *Calculator) components(profile *employee.PayrollProfile) (basic, hra decimal.Decimal) {
	if profile == nil {
		return DefaultBasic, DefaultBasic.Mul(HRARate)
	}
	basic = DefaultBasic
	if profile.Basic != nil {
		basic = *profile.Basic
	}
	if profile.HRA != nil {
		return basic, *profile.HRA
	}
	return basic, basic.Mul(HRARate)
}
