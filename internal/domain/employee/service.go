package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees lists employees, optionally narrowed by department and source
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]Employee, error)

	// CreateEmployee registers a manually entered employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)
}
