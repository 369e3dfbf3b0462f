package document

import (
	"context"

	"github.com/synczenith/synczenith-backend-go/internal/pkg/docstore"
)

// Collection names, one table each.
const (
	EmployeeCollection       = "employee"
	PayrollCollection        = "payroll"
	PayslipCollection        = "payslip"
	AttendanceCollection     = "attendance"
	HRMSConnectionCollection = "hrmsconnection"
	SettingsCollection       = "payrollsettings"
)

var Collections = []string{
	EmployeeCollection,
	PayrollCollection,
	PayslipCollection,
	AttendanceCollection,
	HRMSConnectionCollection,
	SettingsCollection,
}

// Migrate creates every collection the repositories use.
func Migrate(ctx context.Context, store docstore.Store) error {
	return store.Migrate(ctx, Collections...)
}
