// Package documenttest provides an in-memory document store for tests.
package documenttest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/database"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/docstore"
	"github.com/synczenith/synczenith-backend-go/internal/repository/document"
)

// NewStore returns a migrated SQLite store living only for the test.
func NewStore(t *testing.T) docstore.Store {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLiteDB(ctx, ":memory:")
	require.NoError(t, err)

	store := docstore.NewSQLiteStore(db)
	require.NoError(t, document.Migrate(ctx, store))
	t.Cleanup(store.Close)
	return store
}
