package response

import (
	"errors"
	"net/http"

	"github.com/teamtrace/attendance-engine-go/internal/domain/attendance"
	"github.com/teamtrace/attendance-engine-go/internal/domain/employee"
	"github.com/teamtrace/attendance-engine-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidTime):
		BadRequest(w, "Invalid date or time value", nil)
	case errors.Is(err, attendance.ErrMissingField):
		BadRequest(w, "Required field is missing", nil)
	case errors.Is(err, attendance.ErrNonPositiveDuration):
		BadRequest(w, "End time must be after start time", nil)
	case errors.Is(err, attendance.ErrDurationExceedsMax):
		BadRequest(w, "Duration exceeds the 16 hour maximum", nil)
	case errors.Is(err, attendance.ErrInvalidBreakType):
		BadRequest(w, "Break type must be one of: Paid, Unpaid, Extra", nil)
	case errors.Is(err, attendance.ErrLogNotFound):
		NotFound(w, "Attendance log not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
