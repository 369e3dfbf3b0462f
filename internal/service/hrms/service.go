package hrms

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/synczenith/synczenith-backend-go/internal/domain/attendance"
	"github.com/synczenith/synczenith-backend-go/internal/domain/employee"
	"github.com/synczenith/synczenith-backend-go/internal/domain/hrms"
)

// seedEmployee is one employee returned by the HR system on sync.
type seedEmployee struct {
	Name       string
	Department string
	Email      string
}

var seedEmployees = []seedEmployee{
	{Name: "Aarav Mehta", Department: "Engineering", Email: "employee1@synczenith.com"},
	{Name: "Diya Kapoor", Department: "HR", Email: "employee2@synczenith.com"},
	{Name: "Kabir Singh", Department: "Finance", Email: "employee3@synczenith.com"},
}

// Attendance imported for every employee that has none.
const (
	syncPresentDays   = 20
	syncLeaveDays     = 2
	syncOvertimeHours = 5
)

type HRMSServiceImpl struct {
	connectionRepo hrms.ConnectionRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	now            func() time.Time
}

func NewHRMSService(
	connectionRepo hrms.ConnectionRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) hrms.HRMSService {
	return &HRMSServiceImpl{
		connectionRepo: connectionRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

func (s *HRMSServiceImpl) Connect(ctx context.Context, req hrms.ConnectRequest) (hrms.ConnectResponse, error) {
	conn := hrms.Connection{
		Connected: req.Connected,
		APIKey:    req.APIKey,
	}
	if req.Connected {
		at := s.now()
		conn.LastSync = &at
	}

	created, err := s.connectionRepo.Save(ctx, conn)
	if err != nil {
		return hrms.ConnectResponse{}, err
	}

	status := "updated"
	if created {
		status = "created"
	}
	slog.Info("Saved HRMS connection", "status", status, "connected", req.Connected)

	return hrms.ConnectResponse{Status: status, Connected: req.Connected}, nil
}

func (s *HRMSServiceImpl) Sync(ctx context.Context) (hrms.SyncResponse, error) {
	created := 0
	for _, seed := range seedEmployees {
		_, err := s.employeeRepo.GetByEmail(ctx, seed.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return hrms.SyncResponse{}, err
		}

		department := seed.Department
		if _, err := s.employeeRepo.Create(ctx, employee.Employee{
			Name:        seed.Name,
			Department:  &department,
			Email:       seed.Email,
			PaymentType: employee.PaymentTypeMonthly,
			Status:      employee.StatusActive,
			Source:      employee.SourceHRMS,
		}); err != nil {
			return hrms.SyncResponse{}, err
		}
		created++
	}

	imported, err := s.importAttendance(ctx)
	if err != nil {
		return hrms.SyncResponse{}, err
	}

	if err := s.connectionRepo.MarkSynced(ctx, s.now()); err != nil {
		return hrms.SyncResponse{}, err
	}

	slog.Info("Synced HRMS", "employees_created", created, "attendance_created", imported)

	return hrms.SyncResponse{Status: "ok", Created: created}, nil
}

// importAttendance covers every stored employee, manual ones included.
func (s *HRMSServiceImpl) importAttendance(ctx context.Context) (int, error) {
	employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, emp := range employees {
		_, err := s.attendanceRepo.GetByEmployeeID(ctx, emp.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, attendance.ErrAttendanceNotFound) {
			return imported, err
		}

		if _, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
			EmployeeID:    emp.ID,
			PresentDays:   syncPresentDays,
			LeaveDays:     syncLeaveDays,
			OvertimeHours: syncOvertimeHours,
		}); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
