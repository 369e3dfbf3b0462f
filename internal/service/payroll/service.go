package payroll

import (
	"context"
	"errors"
	"log/slog"

	"github.com/synczenith/synczenith-backend-go/internal/domain/employee"
	"github.com/synczenith/synczenith-backend-go/internal/domain/payroll"
	"github.com/synczenith/synczenith-backend-go/internal/domain/payslip"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/ids"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	payslipRepo  payslip.PayslipRepository
	calculator   *Calculator
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	payslipRepo payslip.PayslipRepository,
	calculator *Calculator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		payslipRepo:  payslipRepo,
		calculator:   calculator,
	}
}

func (s *PayrollServiceImpl) CreatePayroll(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.CreatePayrollResponse, error) {
	month, err := req.Validate()
	if err != nil {
		return payroll.CreatePayrollResponse{}, err
	}

	items := make([]payroll.LineItem, 0, len(req.EmployeeIDs))
	skipped := 0
	for _, raw := range req.EmployeeIDs {
		id, err := ids.Parse(raw)
		if err != nil {
			return payroll.CreatePayrollResponse{}, err
		}

		emp, err := s.employeeRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				skipped++
				continue
			}
			return payroll.CreatePayrollResponse{}, err
		}
		items = append(items, s.calculator.Calculate(emp))
	}

	run, err := s.payrollRepo.Create(ctx, payroll.Run{
		Month:     month,
		Status:    payroll.StatusDraft,
		Type:      req.Type,
		Employees: items,
	})
	if err != nil {
		return payroll.CreatePayrollResponse{}, err
	}

	if skipped > 0 {
		slog.Warn("Skipped unknown employees in payroll run", "payroll_id", run.ID, "skipped", skipped)
	}
	slog.Info("Created payroll run", "payroll_id", run.ID, "month", month.String(), "employees", len(items))

	return payroll.CreatePayrollResponse{ID: run.ID, Status: run.Status}, nil
}

func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.Run, error) {
	id, err := ids.Parse(id)
	if err != nil {
		return payroll.Run{}, err
	}
	return s.payrollRepo.GetByID(ctx, id)
}

func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Run, error) {
	return s.payrollRepo.List(ctx, filter)
}

// ProcessPayroll has no status guard: a run may be processed from any state,
// and every call issues a fresh batch of payslips.
func (s *PayrollServiceImpl) ProcessPayroll(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.ProcessPayrollResponse, error) {
	id, err := ids.Parse(req.ID)
	if err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	run, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	if err := s.payrollRepo.UpdateStatus(ctx, run.ID, payroll.StatusProcessed); err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	generated := 0
	for _, item := range run.Employees {
		_, err := s.payslipRepo.Create(ctx, payslip.Payslip{
			EmployeeID:   item.EmployeeID,
			PayrollMonth: run.Month,
			GrossSalary:  item.Earnings,
			Deductions:   item.Deductions,
			NetSalary:    item.Net,
			Sent:         false,
		})
		if err != nil {
			return payroll.ProcessPayrollResponse{}, err
		}
		generated++
	}

	slog.Info("Processed payroll run", "payroll_id", run.ID, "payslips", generated)

	return payroll.ProcessPayrollResponse{Status: payroll.StatusProcessed, Payslips: generated}, nil
}
