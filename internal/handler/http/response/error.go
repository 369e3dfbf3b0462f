package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/synczenith/synczenith-backend-go/internal/domain/employee"
	"github.com/synczenith/synczenith-backend-go/internal/domain/hrms"
	"github.com/synczenith/synczenith-backend-go/internal/domain/payroll"
	"github.com/synczenith/synczenith-backend-go/internal/domain/payslip"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/ids"
	"github.com/synczenith/synczenith-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, ids.ErrInvalidID):
		BadRequest(w, "Invalid id", nil)

	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, hrms.ErrConnectionNotFound):
		NotFound(w, "HRMS connection not found")

	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
