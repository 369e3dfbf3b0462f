package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/synczenith/synczenith-backend-go/internal/domain/employee"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/docstore"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/ids"
)

type employeeRepository struct {
	store docstore.Store
}

func NewEmployeeRepository(store docstore.Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	newEmployee.ID = ids.New()
	newEmployee.CreatedAt = time.Now().UTC()

	if err := r.store.Insert(ctx, EmployeeCollection, newEmployee.ID, newEmployee); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return newEmployee, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	var e employee.Employee
	if err := r.store.Get(ctx, EmployeeCollection, id, &e); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	found, err := docstore.FindAs[employee.Employee](ctx, r.store, EmployeeCollection, docstore.Query{}.Where("email", email))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	if len(found) == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return found[0], nil
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	q := docstore.Query{}
	if filter.Department != nil {
		q = q.Where("department", *filter.Department)
	}
	if filter.Source != nil {
		q = q.Where("source", *filter.Source)
	}

	employees, err := docstore.FindAs[employee.Employee](ctx, r.store, EmployeeCollection, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}
