package report

import "context"

type ReportService interface {
	// GetPayrollSummary counts runs by status and totals their line items.
	GetPayrollSummary(ctx context.Context, filter SummaryFilter) (PayrollSummaryResponse, error)
}
