package settings

import "context"

type SettingsRepository interface {
	// GetOrCreate returns the stored settings, saving def first if none exist.
	GetOrCreate(ctx context.Context, def Settings) (Settings, error)
	// Save replaces the settings and reports whether they were created.
	Save(ctx context.Context, s Settings) (created bool, err error)
}
