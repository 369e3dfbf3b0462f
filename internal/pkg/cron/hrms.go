package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/synczenith/synczenith-backend-go/internal/domain/hrms"
)

type HRMSJobs struct {
	hrmsService    hrms.HRMSService
	connectionRepo hrms.ConnectionRepository
}

func NewHRMSJobs(hrmsService hrms.HRMSService, connectionRepo hrms.ConnectionRepository) *HRMSJobs {
	return &HRMSJobs{
		hrmsService:    hrmsService,
		connectionRepo: connectionRepo,
	}
}

func (j *HRMSJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("hrms_sync", interval, j.SyncIfConnected)
}

// SyncIfConnected runs a sync only while the integration is switched on.
func (j *HRMSJobs) SyncIfConnected(ctx context.Context) error {
	conn, err := j.connectionRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, hrms.ErrConnectionNotFound) {
			return nil
		}
		return err
	}
	if !conn.Connected {
		return nil
	}

	result, err := j.hrmsService.Sync(ctx)
	if err != nil {
		return err
	}
	slog.Info("Cron: HRMS sync finished", "created", result.Created)
	return nil
}
