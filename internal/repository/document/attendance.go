package document

import (
	"context"
	"fmt"

	"github.com/synczenith/synczenith-backend-go/internal/domain/attendance"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/docstore"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/ids"
)

type attendanceRepository struct {
	store docstore.Store
}

func NewAttendanceRepository(store docstore.Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	record.ID = ids.New()
	if err := r.store.Insert(ctx, AttendanceCollection, record.ID, record); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return record, nil
}

func (r *attendanceRepository) GetByEmployeeID(ctx context.Context, employeeID string) (attendance.Attendance, error) {
	found, err := docstore.FindAs[attendance.Attendance](ctx, r.store, AttendanceCollection,
		docstore.Query{}.Where("employeeId", employeeID))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if len(found) == 0 {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return found[0], nil
}
