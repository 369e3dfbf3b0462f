package settings

import "context"

type SettingsService interface {
	GetSettings(ctx context.Context) (Settings, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (UpdateSettingsResponse, error)
}
