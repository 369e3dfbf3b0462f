package payslip

import (
	"context"
	"log/slog"

	"github.com/synczenith/synczenith-backend-go/internal/domain/payroll"
	"github.com/synczenith/synczenith-backend-go/internal/domain/payslip"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/ids"
)

type PayslipServiceImpl struct {
	payslipRepo payslip.PayslipRepository
	payrollRepo payroll.PayrollRepository
}

func NewPayslipService(payslipRepo payslip.PayslipRepository, payrollRepo payroll.PayrollRepository) payslip.PayslipService {
	return &PayslipServiceImpl{
		payslipRepo: payslipRepo,
		payrollRepo: payrollRepo,
	}
}

func (s *PayslipServiceImpl) ListPayslips(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.Payslip, error) {
	return s.payslipRepo.List(ctx, filter)
}

func (s *PayslipServiceImpl) SendPayslips(ctx context.Context, req payslip.SendPayslipsRequest) (payslip.SendPayslipsResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.SendPayslipsResponse{}, err
	}

	var filter payslip.PayslipFilter
	var run *payroll.Run
	if req.PayrollID != nil && *req.PayrollID != "" {
		id, err := ids.Parse(*req.PayrollID)
		if err != nil {
			return payslip.SendPayslipsResponse{}, err
		}
		found, err := s.payrollRepo.GetByID(ctx, id)
		if err != nil {
			return payslip.SendPayslipsResponse{}, err
		}
		run = &found
		// Payslips carry no run id; the month is the only link back.
		filter.PayrollMonth = &found.Month
	}

	slips, err := s.payslipRepo.List(ctx, filter)
	if err != nil {
		return payslip.SendPayslipsResponse{}, err
	}

	count := 0
	for _, slip := range slips {
		if err := s.payslipRepo.MarkSent(ctx, slip.ID); err != nil {
			return payslip.SendPayslipsResponse{}, err
		}
		count++
	}

	if run != nil {
		if err := s.payrollRepo.UpdateStatus(ctx, run.ID, payroll.StatusSent); err != nil {
			return payslip.SendPayslipsResponse{}, err
		}
	}

	slog.Info("Sent payslips", "count", count, "via", req.Via)

	return payslip.SendPayslipsResponse{Status: "sent", Count: count, Via: req.Via}, nil
}
