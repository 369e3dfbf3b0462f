package payslip

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synczenith/synczenith-backend-go/internal/domain/payroll"
	"github.com/synczenith/synczenith-backend-go/internal/domain/payslip"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/ids"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/period"
	"github.com/synczenith/synczenith-backend-go/internal/repository/document"
	"github.com/synczenith/synczenith-backend-go/internal/repository/document/documenttest"
)

func setup(t *testing.T) (payslip.PayslipService, payslip.PayslipRepository, payroll.PayrollRepository) {
	store := documenttest.NewStore(t)
	payslipRepo := document.NewPayslipRepository(store)
	payrollRepo := document.NewPayrollRepository(store)
	return NewPayslipService(payslipRepo, payrollRepo), payslipRepo, payrollRepo
}

func seedSlip(t *testing.T, repo payslip.PayslipRepository, employeeID string, month period.Month) {
	t.Helper()
	_, err := repo.Create(context.Background(), payslip.Payslip{
		EmployeeID:   employeeID,
		PayrollMonth: month,
		GrossSalary:  decimal.NewFromInt(42000),
		Deductions:   decimal.NewFromInt(5040),
		NetSalary:    decimal.NewFromInt(36960),
	})
	require.NoError(t, err)
}

func TestSendPayslips_ByPayrollSelectsMonthOnly(t *testing.T) {
	ctx := context.Background()
	service, payslipRepo, payrollRepo := setup(t)

	march := period.NewMonth(2024, time.March)
	april := period.NewMonth(2024, time.April)
	run, err := payrollRepo.Create(ctx, payroll.Run{Month: march, Status: payroll.StatusProcessed, Type: payroll.TypeMonthly})
	require.NoError(t, err)

	seedSlip(t, payslipRepo, "e1", march)
	seedSlip(t, payslipRepo, "e2", march)
	seedSlip(t, payslipRepo, "e1", april)

	resp, err := service.SendPayslips(ctx, payslip.SendPayslipsRequest{PayrollID: &run.ID, Via: payslip.ChannelEmail})
	require.NoError(t, err)
	assert.Equal(t, "sent", resp.Status)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, payslip.ChannelEmail, resp.Via)

	got, err := payrollRepo.GetByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusSent, got.Status)

	aprilSlips, err := service.ListPayslips(ctx, payslip.PayslipFilter{PayrollMonth: &april})
	require.NoError(t, err)
	require.Len(t, aprilSlips, 1)
	assert.False(t, aprilSlips[0].Sent)
}

func TestSendPayslips_WithoutPayrollSendsAll(t *testing.T) {
	ctx := context.Background()
	service, payslipRepo, _ := setup(t)

	seedSlip(t, payslipRepo, "e1", period.NewMonth(2024, time.March))
	seedSlip(t, payslipRepo, "e2", period.NewMonth(2024, time.April))

	resp, err := service.SendPayslips(ctx, payslip.SendPayslipsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, payslip.ChannelPortal, resp.Via)

	slips, err := service.ListPayslips(ctx, payslip.PayslipFilter{})
	require.NoError(t, err)
	for _, s := range slips {
		assert.True(t, s.Sent)
	}
}

func TestSendPayslips_Errors(t *testing.T) {
	ctx := context.Background()
	service, _, _ := setup(t)

	bad := "123"
	_, err := service.SendPayslips(ctx, payslip.SendPayslipsRequest{PayrollID: &bad})
	assert.ErrorIs(t, err, ids.ErrInvalidID)

	missing := ids.New()
	_, err = service.SendPayslips(ctx, payslip.SendPayslipsRequest{PayrollID: &missing})
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)

	_, err = service.SendPayslips(ctx, payslip.SendPayslipsRequest{Via: "fax"})
	assert.Error(t, err)
}

func TestListPayslips_ByEmployee(t *testing.T) {
	ctx := context.Background()
	service, payslipRepo, _ := setup(t)

	seedSlip(t, payslipRepo, "e1", period.NewMonth(2024, time.March))
	seedSlip(t, payslipRepo, "e2", period.NewMonth(2024, time.March))

	e1 := "e1"
	slips, err := service.ListPayslips(ctx, payslip.PayslipFilter{EmployeeID: &e1})
	require.NoError(t, err)
	require.Len(t, slips, 1)
	assert.Equal(t, "e1", slips[0].EmployeeID)
}
