package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/synczenith/synczenith-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx, filter)
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	// Sync matches employees by email, so it must stay unique.
	_, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return employee.CreateEmployeeResponse{}, employee.ErrEmailExists
	}
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.CreateEmployeeResponse{}, fmt.Errorf("failed to check email existence: %w", err)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:           req.Name,
		Department:     req.Department,
		Email:          req.Email,
		PaymentType:    req.PaymentType,
		PayrollProfile: req.PayrollProfile,
		Status:         req.Status,
		Source:         req.Source,
	})
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	slog.Info("Created employee", "employee_id", created.ID, "source", created.Source)

	return employee.CreateEmployeeResponse{ID: created.ID}, nil
}
