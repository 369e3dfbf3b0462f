package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synczenith/synczenith-backend-go/internal/domain/payroll"
	"github.com/synczenith/synczenith-backend-go/internal/domain/report"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/period"
	"github.com/synczenith/synczenith-backend-go/internal/repository/document"
	"github.com/synczenith/synczenith-backend-go/internal/repository/document/documenttest"
)

func item(gross, net int64) payroll.LineItem {
	return payroll.LineItem{
		EmployeeID: "e",
		Earnings:   decimal.NewFromInt(gross),
		Deductions: decimal.NewFromInt(gross - net),
		Net:        decimal.NewFromInt(net),
	}
}

func TestGetPayrollSummary(t *testing.T) {
	ctx := context.Background()
	repo := document.NewPayrollRepository(documenttest.NewStore(t))
	service := NewReportService(repo)

	runs := []payroll.Run{
		{Month: period.NewMonth(2024, time.December), Status: payroll.StatusDraft, Employees: []payroll.LineItem{item(42000, 36960)}},
		{Month: period.NewMonth(2024, time.December), Status: payroll.StatusProcessed, Employees: []payroll.LineItem{item(60000, 52800)}},
		{Month: period.NewMonth(2024, time.December), Status: payroll.StatusSent, Employees: []payroll.LineItem{item(42000, 36960), item(60000, 52800)}},
		{Month: period.NewMonth(2025, time.January), Status: payroll.StatusSent, Employees: []payroll.LineItem{item(1000, 880)}},
	}
	for _, r := range runs {
		r.Type = payroll.TypeMonthly
		_, err := repo.Create(ctx, r)
		require.NoError(t, err)
	}

	t.Run("all runs", func(t *testing.T) {
		summary, err := service.GetPayrollSummary(ctx, report.SummaryFilter{})
		require.NoError(t, err)
		assert.Equal(t, report.SummaryCounts{Total: 4, Processed: 1, Sent: 2}, summary.Counts)
		assert.Equal(t, "205000", summary.Totals.Gross.String())
		assert.Equal(t, "180400", summary.Totals.Net.String())
	})

	t.Run("december only", func(t *testing.T) {
		r, ok := period.ParseFilter("2024-12")
		require.True(t, ok)
		summary, err := service.GetPayrollSummary(ctx, report.SummaryFilter{Month: &r})
		require.NoError(t, err)
		assert.Equal(t, report.SummaryCounts{Total: 3, Processed: 1, Sent: 1}, summary.Counts)
		assert.Equal(t, "204000", summary.Totals.Gross.String())
		assert.Equal(t, "179520", summary.Totals.Net.String())
	})

	t.Run("empty month", func(t *testing.T) {
		r, ok := period.ParseFilter("2023-01")
		require.True(t, ok)
		summary, err := service.GetPayrollSummary(ctx, report.SummaryFilter{Month: &r})
		require.NoError(t, err)
		assert.Equal(t, 0, summary.Counts.Total)
		assert.True(t, summary.Totals.Gross.IsZero())
	})
}
