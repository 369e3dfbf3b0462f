package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/database"
)

type testDoc struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Month  string `json:"month"`
	Status string `json:"status"`
	Sent   bool   `json:"sent"`
	Note   string `json:"note,omitempty"`
}

func newTestStore(t *testing.T) Store {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewSQLiteDB(ctx, ":memory:")
	require.NoError(t, err)

	store := NewSQLiteStore(db)
	require.NoError(t, store.Migrate(ctx, "things", "config"))
	t.Cleanup(store.Close)
	return store
}

func TestSQLiteStore_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Insert(ctx, "things", "a", testDoc{ID: "a", Name: "alpha"}))

	var got testDoc
	require.NoError(t, store.Get(ctx, "things", "a", &got))
	assert.Equal(t, "alpha", got.Name)

	err := store.Get(ctx, "things", "missing", &got)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_InsertDuplicateID(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Insert(ctx, "things", "a", testDoc{ID: "a"}))
	assert.Error(t, store.Insert(ctx, "things", "a", testDoc{ID: "a"}))
}

func TestSQLiteStore_FindEqualsAndRange(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	docs := []testDoc{
		{ID: "1", Month: "2024-01-01", Status: "Draft"},
		{ID: "2", Month: "2024-02-01", Status: "Draft"},
		{ID: "3", Month: "2024-02-01", Status: "Sent"},
		{ID: "4", Month: "2024-03-01", Status: "Draft"},
	}
	for _, d := range docs {
		require.NoError(t, store.Insert(ctx, "things", d.ID, d))
	}

	all, err := FindAs[testDoc](ctx, store, "things", Query{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "1", all[0].ID, "insertion order is preserved")

	feb, err := FindAs[testDoc](ctx, store, "things", Query{
		Range: &Range{Field: "month", From: "2024-02-01", To: "2024-03-01"},
	})
	require.NoError(t, err)
	assert.Len(t, feb, 2)

	febDraft, err := FindAs[testDoc](ctx, store, "things", Query{
		Range: &Range{Field: "month", From: "2024-02-01", To: "2024-03-01"},
	}.Where("status", "Draft"))
	require.NoError(t, err)
	require.Len(t, febDraft, 1)
	assert.Equal(t, "2", febDraft[0].ID)

	n, err := store.Count(ctx, "things", Query{}.Where("status", "Draft"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSQLiteStore_FindRejectsBadField(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.Find(ctx, "things", Query{}.Where("x') OR 1=1 --", "y"))
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = store.Find(ctx, "things; DROP TABLE things", Query{})
	assert.ErrorIs(t, err, ErrInvalidCollection)
}

func TestSQLiteStore_Patch(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Insert(ctx, "things", "a", testDoc{ID: "a", Name: "alpha", Status: "Draft"}))
	require.NoError(t, store.Patch(ctx, "things", "a", map[string]any{"status": "Processed", "sent": true}))

	var got testDoc
	require.NoError(t, store.Get(ctx, "things", "a", &got))
	assert.Equal(t, "alpha", got.Name)
	assert.Equal(t, "Processed", got.Status)
	assert.True(t, got.Sent)

	err := store.Patch(ctx, "things", "missing", map[string]any{"status": "Sent"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_MergeKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Merge(ctx, "config", SingletonID, map[string]any{"name": "first"}))
	require.NoError(t, store.Merge(ctx, "config", SingletonID, map[string]any{"status": "on"}))

	var got testDoc
	require.NoError(t, store.Get(ctx, "config", SingletonID, &got))
	assert.Equal(t, "first", got.Name)
	assert.Equal(t, "on", got.Status)

	n, err := store.Count(ctx, "config", Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSQLiteStore_PutReportsCreated(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created, err := store.Put(ctx, "config", SingletonID, testDoc{Name: "first", Note: "x"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.Put(ctx, "config", SingletonID, testDoc{Name: "second"})
	require.NoError(t, err)
	assert.False(t, created)

	var got testDoc
	require.NoError(t, store.Get(ctx, "config", SingletonID, &got))
	assert.Equal(t, "second", got.Name)
	assert.Empty(t, got.Note, "put replaces the whole document")
}

func TestSQLiteStore_PutIfAbsent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	created, err := store.PutIfAbsent(ctx, "config", SingletonID, testDoc{Name: "default"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.PutIfAbsent(ctx, "config", SingletonID, testDoc{Name: "other"})
	require.NoError(t, err)
	assert.False(t, created)

	var got testDoc
	require.NoError(t, store.Get(ctx, "config", SingletonID, &got))
	assert.Equal(t, "default", got.Name)
}

func TestSQLiteStore_Collections(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	names, err := store.Collections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"config", "things"}, names)
	assert.NoError(t, store.Ping(ctx))
}
