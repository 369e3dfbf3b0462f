package document

import (
	"context"
	"fmt"

	"github.com/synczenith/synczenith-backend-go/internal/domain/settings"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/docstore"
)

type settingsRepository struct {
	store docstore.Store
}

func NewSettingsRepository(store docstore.Store) settings.SettingsRepository {
	return &settingsRepository{store: store}
}

func (r *settingsRepository) GetOrCreate(ctx context.Context, def settings.Settings) (settings.Settings, error) {
	if _, err := r.store.PutIfAbsent(ctx, SettingsCollection, docstore.SingletonID, def); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to create default settings: %w", err)
	}

	var s settings.Settings
	if err := r.store.Get(ctx, SettingsCollection, docstore.SingletonID, &s); err != nil {
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

func (r *settingsRepository) Save(ctx context.Context, s settings.Settings) (bool, error) {
	created, err := r.store.Put(ctx, SettingsCollection, docstore.SingletonID, s)
	if err != nil {
		return false, fmt.Errorf("failed to save settings: %w", err)
	}
	return created, nil
}
