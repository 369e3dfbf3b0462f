package settings

import (
	"context"
	"log/slog"

	"github.com/synczenith/synczenith-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{
		settingsRepo: settingsRepo,
	}
}

// GetSettings stores the defaults on first read.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (settings.Settings, error) {
	current, err := s.settingsRepo.GetOrCreate(ctx, settings.Default())
	if err != nil {
		return settings.Settings{}, err
	}
	if current.TaxRules == nil {
		current.TaxRules = map[string]any{}
	}
	return current, nil
}

func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.UpdateSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.UpdateSettingsResponse{}, err
	}

	created, err := s.settingsRepo.Save(ctx, req.Settings)
	if err != nil {
		return settings.UpdateSettingsResponse{}, err
	}

	status := "updated"
	if created {
		status = "created"
	}
	slog.Info("Saved payroll settings", "status", status)

	return settings.UpdateSettingsResponse{Status: status}, nil
}
