package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
	"github.com/teampulse/workload-backend-go/internal/handler/http/response"
	"github.com/teampulse/workload-backend-go/internal/pkg/validator"
)

type UserHandler interface {
	// AddEmployee creates a new employee account
	AddEmployee(w http.ResponseWriter, r *http.Request)
	// AddDepartment registers a new department name
	AddDepartment(w http.ResponseWriter, r *http.Request)
	// DeleteEmployee removes an employee and their reports
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) UserHandler {
	return &userHandlerImpl{userService: userService}
}

// AddEmployee handles POST /users
func (h *userHandlerImpl) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var req user.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.userService.AddEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee added", result)
}

// AddDepartment handles POST /users/departments
func (h *userHandlerImpl) AddDepartment(w http.ResponseWriter, r *http.Request) {
	var req user.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.userService.AddDepartment(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department added", nil)
}

// DeleteEmployee handles DELETE /users/{id}
func (h *userHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid user id", nil)
		return
	}

	if err := h.userService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}
