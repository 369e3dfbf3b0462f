package hrms

import "context"

type HRMSService interface {
	Connect(ctx context.Context, req ConnectRequest) (ConnectResponse, error)
	// Sync seeds the demonstration employees and their attendance.
	Sync(ctx context.Context) (SyncResponse, error)
}
