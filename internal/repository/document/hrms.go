package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/synczenith/synczenith-backend-go/internal/domain/hrms"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/docstore"
)

type connectionRepository struct {
	store docstore.Store
}

func NewConnectionRepository(store docstore.Store) hrms.ConnectionRepository {
	return &connectionRepository{store: store}
}

func (r *connectionRepository) Get(ctx context.Context) (hrms.Connection, error) {
	var conn hrms.Connection
	if err := r.store.Get(ctx, HRMSConnectionCollection, docstore.SingletonID, &conn); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return hrms.Connection{}, hrms.ErrConnectionNotFound
		}
		return hrms.Connection{}, fmt.Errorf("failed to get hrms connection: %w", err)
	}
	return conn, nil
}

func (r *connectionRepository) Save(ctx context.Context, conn hrms.Connection) (bool, error) {
	created, err := r.store.Put(ctx, HRMSConnectionCollection, docstore.SingletonID, conn)
	if err != nil {
		return false, fmt.Errorf("failed to save hrms connection: %w", err)
	}
	return created, nil
}

func (r *connectionRepository) MarkSynced(ctx context.Context, at time.Time) error {
	fields := map[string]any{
		"connected": true,
		"lastSync":  at,
	}
	if err := r.store.Merge(ctx, HRMSConnectionCollection, docstore.SingletonID, fields); err != nil {
		return fmt.Errorf("failed to mark hrms synced: %w", err)
	}
	return nil
}
