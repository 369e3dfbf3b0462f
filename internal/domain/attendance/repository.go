package attendance

import "context"

type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Attendance, error)
}
