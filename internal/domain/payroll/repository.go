package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, run Run) (Run, error)
	GetByID(ctx context.Context, id string) (Run, error)
	List(ctx context.Context, filter PayrollFilter) ([]Run, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
