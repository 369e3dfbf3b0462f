package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/synczenith/synczenith-backend-go/internal/domain/payslip"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/docstore"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/ids"
)

type payslipRepository struct {
	store docstore.Store
}

func NewPayslipRepository(store docstore.Store) payslip.PayslipRepository {
	return &payslipRepository{store: store}
}

func (r *payslipRepository) Create(ctx context.Context, slip payslip.Payslip) (payslip.Payslip, error) {
	slip.ID = ids.New()
	slip.CreatedAt = time.Now().UTC()

	if err := r.store.Insert(ctx, PayslipCollection, slip.ID, slip); err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}
	return slip, nil
}

func (r *payslipRepository) List(ctx context.Context, filter payslip.PayslipFilter) ([]payslip.Payslip, error) {
	q := docstore.Query{}
	if filter.EmployeeID != nil {
		q = q.Where("employeeId", *filter.EmployeeID)
	}
	if filter.PayrollMonth != nil {
		q = q.Where("payrollMonth", filter.PayrollMonth.String())
	}

	slips, err := docstore.FindAs[payslip.Payslip](ctx, r.store, PayslipCollection, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	return slips, nil
}

func (r *payslipRepository) MarkSent(ctx context.Context, id string) error {
	if err := r.store.Patch(ctx, PayslipCollection, id, map[string]any{"sent": true}); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return payslip.ErrPayslipNotFound
		}
		return fmt.Errorf("failed to mark payslip sent: %w", err)
	}
	return nil
}
