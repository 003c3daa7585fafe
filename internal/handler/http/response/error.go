package response

import (
	"errors"
	"net/http"

	"github.com/worklane-hr/worklane-backend-go/internal/domain/attendance"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/employee"
	"github.com/worklane-hr/worklane-backend-go/internal/domain/payroll"
	"github.com/worklane-hr/worklane-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance domain errors
	switch {
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "An open attendance session already exists")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No open attendance session to check out of")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Attendance session already checked out")
	case errors.Is(err, attendance.ErrAttendanceAlreadyProcessed):
		Conflict(w, "Attendance record already processed")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Pay period not found")
	case errors.Is(err, payroll.ErrPeriodNotOpen):
		BadRequest(w, "Pay period is not open", nil)
	case errors.Is(err, payroll.ErrPeriodAlreadyClosed):
		Conflict(w, "Pay period already closed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
