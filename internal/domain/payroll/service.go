package payroll

import "context"

type PayrollService interface {
	// CreatePayroll computes line items for the requested employees and
	// stores a Draft run. Ids that do not resolve to an employee are skipped.
	CreatePayroll(ctx context.Context, req CreatePayrollRequest) (CreatePayrollResponse, error)
	GetPayroll(ctx context.Context, id string) (Run, error)
	ListPayrolls(ctx context.Context, filter PayrollFilter) ([]Run, error)
	// ProcessPayroll marks the run Processed and issues one payslip per line
	// item. Repeated calls issue repeated batches.
	ProcessPayroll(ctx context.Context, req ProcessPayrollRequest) (ProcessPayrollResponse, error)
}
