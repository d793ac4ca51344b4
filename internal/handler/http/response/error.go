package response

import (
	"errors"
	"net/http"

	"github.com/restoops/staff-backend-go/internal/domain/auth"
	"github.com/restoops/staff-backend-go/internal/domain/employee"
	"github.com/restoops/staff-backend-go/internal/domain/item"
	"github.com/restoops/staff-backend-go/internal/domain/quest"
	"github.com/restoops/staff-backend-go/internal/domain/salary"
	"github.com/restoops/staff-backend-go/internal/domain/shift"
	"github.com/restoops/staff-backend-go/internal/domain/user"
	"github.com/restoops/staff-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Shift domain errors
	case errors.Is(err, shift.ErrInvalidShiftTime):
		BadRequest(w, "Invalid time format. Use HH:MM", nil)
	case errors.Is(err, shift.ErrInvalidEmployeeID):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")

	// Lookup errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, quest.ErrQuestNotFound):
		NotFound(w, "Quest not found")
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Waiter not found or invalid date format")
	case errors.Is(err, item.ErrItemNotFound):
		NotFound(w, "Item not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
