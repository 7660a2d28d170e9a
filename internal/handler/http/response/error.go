package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hrms-attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-attendance-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var dateErr *attendance.DateNotTodayError
	if errors.As(err, &dateErr) {
		BadRequest(w, dateErr.Error(), map[string]string{"allowed_date": dateErr.Today})
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		ValidationError(w, map[string]string{"employee_id": employee.ErrEmployeeIDExists.Error()})
	case errors.Is(err, employee.ErrEmailExists):
		ValidationError(w, map[string]string{"email": employee.ErrEmailExists.Error()})

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidStatus):
		ValidationError(w, map[string]string{"status": attendance.ErrInvalidStatus.Error()})
	case errors.Is(err, attendance.ErrInvalidPayload):
		BadRequest(w, attendance.ErrInvalidPayload.Error(), nil)

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
