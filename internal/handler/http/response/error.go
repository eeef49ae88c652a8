package response

import (
	"errors"
	"net/http"

	"github.com/hrconsole/attendance-backend-go/internal/domain/employee"
	"github.com/hrconsole/attendance-backend-go/internal/domain/ledger"
	"github.com/hrconsole/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Ledger domain errors
	switch {
	case errors.Is(err, ledger.ErrSessionNotFound):
		NotFound(w, "Ledger session not found")
	case errors.Is(err, ledger.ErrEntryNotFound):
		NotFound(w, "Ledger entry not found")
	case errors.Is(err, ledger.ErrInvalidTransition):
		Conflict(w, "Correction request is not pending")
	case errors.Is(err, ledger.ErrPageOutOfRange):
		BadRequest(w, "Page is outside the valid range", nil)
	case errors.Is(err, ledger.ErrEmptyExport):
		NotFound(w, "Nothing to export for the current page")

	// Employee directory errors
	case errors.Is(err, employee.ErrDepartmentUnknown):
		NotFound(w, "Unknown department")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
