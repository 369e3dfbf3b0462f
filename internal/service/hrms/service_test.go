package hrms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synczenith/synczenith-backend-go/internal/domain/attendance"
	"github.com/synczenith/synczenith-backend-go/internal/domain/employee"
	"github.com/synczenith/synczenith-backend-go/internal/domain/hrms"
	"github.com/synczenith/synczenith-backend-go/internal/repository/document"
	"github.com/synczenith/synczenith-backend-go/internal/repository/document/documenttest"
)

type fixture struct {
	service        *HRMSServiceImpl
	connectionRepo hrms.ConnectionRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func newFixture(t *testing.T) fixture {
	store := documenttest.NewStore(t)
	f := fixture{
		connectionRepo: document.NewConnectionRepository(store),
		employeeRepo:   document.NewEmployeeRepository(store),
		attendanceRepo: document.NewAttendanceRepository(store),
	}
	f.service = NewHRMSService(f.connectionRepo, f.employeeRepo, f.attendanceRepo).(*HRMSServiceImpl)
	f.service.now = func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) }
	return f
}

func TestConnect_CreatedThenUpdated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	key := "k-1"
	resp, err := f.service.Connect(ctx, hrms.ConnectRequest{Connected: true, APIKey: &key})
	require.NoError(t, err)
	assert.Equal(t, hrms.ConnectResponse{Status: "created", Connected: true}, resp)

	conn, err := f.connectionRepo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, conn.LastSync)
	assert.True(t, conn.LastSync.Equal(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)))

	resp, err = f.service.Connect(ctx, hrms.ConnectRequest{Connected: false})
	require.NoError(t, err)
	assert.Equal(t, hrms.ConnectResponse{Status: "updated", Connected: false}, resp)

	conn, err = f.connectionRepo.Get(ctx)
	require.NoError(t, err)
	assert.False(t, conn.Connected)
	assert.Nil(t, conn.LastSync)
	assert.Nil(t, conn.APIKey)
}

func TestSync_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	manual, err := f.employeeRepo.Create(ctx, employee.Employee{
		Name:   "Manual Person",
		Email:  "manual@synczenith.com",
		Status: employee.StatusActive,
		Source: employee.SourceManual,
	})
	require.NoError(t, err)

	resp, err := f.service.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, hrms.SyncResponse{Status: "ok", Created: 3}, resp)

	source := string(employee.SourceHRMS)
	synced, err := f.employeeRepo.List(ctx, employee.EmployeeFilter{Source: &source})
	require.NoError(t, err)
	require.Len(t, synced, 3)
	assert.Equal(t, "Aarav Mehta", synced[0].Name)
	require.NotNil(t, synced[0].Department)
	assert.Equal(t, "Engineering", *synced[0].Department)

	att, err := f.attendanceRepo.GetByEmployeeID(ctx, manual.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, att.PresentDays)
	assert.Equal(t, 2, att.LeaveDays)
	assert.Equal(t, 5.0, att.OvertimeHours)

	conn, err := f.connectionRepo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, conn.Connected)
	assert.NotNil(t, conn.LastSync)

	resp, err = f.service.Sync(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Created)

	all, err := f.employeeRepo.List(ctx, employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestSync_KeepsAPIKey(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	key := "k-2"
	_, err := f.service.Connect(ctx, hrms.ConnectRequest{Connected: false, APIKey: &key})
	require.NoError(t, err)

	_, err = f.service.Sync(ctx)
	require.NoError(t, err)

	conn, err := f.connectionRepo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, conn.Connected)
	require.NotNil(t, conn.APIKey)
	assert.Equal(t, "k-2", *conn.APIKey)
}
