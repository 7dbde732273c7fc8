package user

import (
	"time"

	"github.com/teampulse/workload-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Username       string `json:"username"`
	Password       string `json:"password"`
	DepartmentName string `json:"department_name"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}
	if len(r.Password) > 0 && len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters long",
		})
	}
	if validator.IsEmpty(r.DepartmentName) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_name",
			Message: "department_name is required",
		})
	}
	if len(r.DepartmentName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "department_name",
			Message: "department_name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateDepartmentRequest struct {
	Name string `json:"name"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UserResponse is the wire representation of a user; the password hash never leaves
// the service layer.
type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Role           Role   `json:"role"`
	DepartmentName string `json:"department_name"`
	CreatedAt      string `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Role:           u.Role,
		DepartmentName: u.DepartmentName,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
