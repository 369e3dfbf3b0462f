package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/synczenith/synczenith-backend-go/internal/domain/payroll"
	"github.com/synczenith/synczenith-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	payrollRepo payroll.PayrollRepository
}

func NewReportService(payrollRepo payroll.PayrollRepository) report.ReportService {
	return &ReportServiceImpl{
		payrollRepo: payrollRepo,
	}
}

// GetPayrollSummary counts runs by their current status, so a Sent run is not
// also counted as Processed. Totals cover every line item of every matching
// run regardless of status.
func (s *ReportServiceImpl) GetPayrollSummary(ctx context.Context, filter report.SummaryFilter) (report.PayrollSummaryResponse, error) {
	runs, err := s.payrollRepo.List(ctx, payroll.PayrollFilter{Month: filter.Month})
	if err != nil {
		return report.PayrollSummaryResponse{}, fmt.Errorf("failed to get payroll data: %w", err)
	}

	counts := report.SummaryCounts{Total: len(runs)}
	gross := decimal.Zero
	net := decimal.Zero
	for _, run := range runs {
		switch run.Status {
		case payroll.StatusProcessed:
			counts.Processed++
		case payroll.StatusSent:
			counts.Sent++
		}
		for _, item := range run.Employees {
			gross = gross.Add(item.Earnings)
			net = net.Add(item.Net)
		}
	}

	return report.PayrollSummaryResponse{
		Counts: counts,
		Totals: report.SummaryTotals{Gross: gross, Net: net},
	}, nil
}
