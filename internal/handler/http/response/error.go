package response

import (
	"errors"
	"net/http"

	"github.com/teampulse/workload-backend-go/internal/domain/auth"
	"github.com/teampulse/workload-backend-go/internal/domain/report"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
	"github.com/teampulse/workload-backend-go/internal/pkg/validator"
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
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrNoSession):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		Conflict(w, "Cannot delete your own account")
	case errors.Is(err, user.ErrCannotDeleteManager):
		Conflict(w, "Cannot delete a manager account")

	// Report domain errors
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "No workload report submitted yet")
	case errors.Is(err, report.ErrInvalidLevel):
		BadRequest(w, "Workload level must be between 1 and 5", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
