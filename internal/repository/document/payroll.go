package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/synczenith/synczenith-backend-go/internal/domain/payroll"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/docstore"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/ids"
)

type payrollRepository struct {
	store docstore.Store
}

func NewPayrollRepository(store docstore.Store) payroll.PayrollRepository {
	return &payrollRepository{store: store}
}

func (r *payrollRepository) Create(ctx context.Context, run payroll.Run) (payroll.Run, error) {
	run.ID = ids.New()
	run.CreatedAt = time.Now().UTC()
	if run.Employees == nil {
		run.Employees = []payroll.LineItem{}
	}

	if err := r.store.Insert(ctx, PayrollCollection, run.ID, run); err != nil {
		return payroll.Run{}, fmt.Errorf("failed to create payroll: %w", err)
	}
	return run, nil
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Run, error) {
	var run payroll.Run
	if err := r.store.Get(ctx, PayrollCollection, id, &run); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return payroll.Run{}, payroll.ErrPayrollNotFound
		}
		return payroll.Run{}, fmt.Errorf("failed to get payroll: %w", err)
	}
	return run, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Run, error) {
	q := docstore.Query{}
	if filter.Status != nil {
		q = q.Where("status", string(*filter.Status))
	}
	if filter.Month != nil {
		q.Range = &docstore.Range{
			Field: "month",
			From:  filter.Month.From.String(),
			To:    filter.Month.To.String(),
		}
	}

	runs, err := docstore.FindAs[payroll.Run](ctx, r.store, PayrollCollection, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	return runs, nil
}

func (r *payrollRepository) UpdateStatus(ctx context.Context, id string, status payroll.Status) error {
	if err := r.store.Patch(ctx, PayrollCollection, id, map[string]any{"status": status}); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return payroll.ErrPayrollNotFound
		}
		return fmt.Errorf("failed to update payroll status: %w", err)
	}
	return nil
}
