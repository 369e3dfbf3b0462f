package payslip

import "context"

type PayslipService interface {
	ListPayslips(ctx context.Context, filter PayslipFilter) ([]Payslip, error)
	// SendPayslips flags payslips as sent. With a payroll id only that run's
	// month is selected and the run becomes Sent; without one every payslip
	// in the store is selected.
	SendPayslips(ctx context.Context, req SendPayslipsRequest) (SendPayslipsResponse, error)
}
