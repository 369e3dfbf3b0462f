package payslip

import "context"

type PayslipRepository interface {
	Create(ctx context.Context, slip Payslip) (Payslip, error)
	List(ctx context.Context, filter PayslipFilter) ([]Payslip, error)
	MarkSent(ctx context.Context, id string) error
}
