package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/synczenith/synczenith-backend-go/internal/domain/employee"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decp(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCalculator_Calculate(t *testing.T) {
	hra := dec(10000)

	tests := []struct {
		name           string
		profile        *employee.PayrollProfile
		wantGross      string
		wantDeductions string
		wantNet        string
	}{
		{
			name:           "no profile uses default basic",
			profile:        nil,
			wantGross:      "42000",
			wantDeductions: "5040",
			wantNet:        "36960",
		},
		{
			name:           "explicit basic and hra",
			profile:        &employee.PayrollProfile{Basic: decp(50000), HRA: &hra},
			wantGross:      "60000",
			wantDeductions: "7200",
			wantNet:        "52800",
		},
		{
			name:           "missing hra is derived from profile basic",
			profile:        &employee.PayrollProfile{Basic: decp(50000)},
			wantGross:      "70000",
			wantDeductions: "8400",
			wantNet:        "61600",
		},
		{
			name: "other components are ignored",
			profile: &employee.PayrollProfile{
				Basic: decp(50000), HRA: &hra,
				TA: dec(5000), Bonus: dec(9000), EPF: dec(12), ESI: dec(1), TotalCTC: dec(900000),
			},
			wantGross:      "60000",
			wantDeductions: "7200",
			wantNet:        "52800",
		},
		{
			name:           "stored profile without basic falls back to default",
			profile:        &employee.PayrollProfile{},
			wantGross:      "42000",
			wantDeductions: "5040",
			wantNet:        "36960",
		},
		{
			name:           "profile hra with default basic",
			profile:        &employee.PayrollProfile{HRA: &hra},
			wantGross:      "40000",
			wantDeductions: "4800",
			wantNet:        "35200",
		},
		{
			name:           "zero basic and zero hra",
			profile:        &employee.PayrollProfile{Basic: decp(0), HRA: decp(0)},
			wantGross:      "0",
			wantDeductions: "0",
			wantNet:        "0",
		},
	}

	calc := NewCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := calc.Calculate(employee.Employee{ID: "e1", PayrollProfile: tt.profile})

			assert.Equal(t, "e1", item.EmployeeID)
			assert.Equal(t, tt.wantGross, item.Earnings.String())
			assert.Equal(t, tt.wantDeductions, item.Deductions.String())
			assert.Equal(t, tt.wantNet, item.Net.String())
			assert.True(t, item.Net.Equal(item.Earnings.Sub(item.Deductions)))
		})
	}
}
