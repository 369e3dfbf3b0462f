package hrms

import (
	"context"
	"time"
)

type ConnectionRepository interface {
	Get(ctx context.Context) (Connection, error)
	// Save replaces the connection record and reports whether it was created.
	Save(ctx context.Context, conn Connection) (created bool, err error)
	// MarkSynced sets connected and lastSync, keeping the stored api key.
	MarkSynced(ctx context.Context, at time.Time) error
}
