package http

import (
	"encoding/json"
	"net/http"

	"github.com/teampulse/workload-backend-go/internal/domain/roster"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
	"github.com/teampulse/workload-backend-go/internal/handler/http/response"
)

type RosterHandler interface {
	// View returns the filtered roster with summary stats
	View(w http.ResponseWriter, r *http.Request)
	// Refresh forces an immediate roster reload
	Refresh(w http.ResponseWriter, r *http.Request)
	// Departments lists the distinct department names
	Departments(w http.ResponseWriter, r *http.Request)
	// ToggleDepartment toggles a department in the caller's filter
	ToggleDepartment(w http.ResponseWriter, r *http.Request)
	// ToggleLevel toggles a workload level checkbox in the caller's filter
	ToggleLevel(w http.ResponseWriter, r *http.Request)
	// ClearFilters resets the caller's filter to the unfiltered default
	ClearFilters(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService roster.Service
	userService   user.Service
}

func NewRosterHandler(rosterService roster.Service, userService user.Service) RosterHandler {
	return &rosterHandlerImpl{
		rosterService: rosterService,
		userService:   userService,
	}
}

// View handles GET /roster
func (h *rosterHandlerImpl) View(w http.ResponseWriter, r *http.Request) {
	result, err := h.rosterService.View(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Refresh handles POST /roster/refresh. The reload runs to completion before
// the fresh view is returned, so the manager's explicit refresh always reflects
// the store.
func (h *rosterHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.rosterService.Load(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.rosterService.View(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Departments handles GET /roster/departments
func (h *rosterHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.userService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, departments)
}

type toggleDepartmentRequest struct {
	Department string `json:"department"`
}

// ToggleDepartment handles POST /roster/filters/departments
func (h *rosterHandlerImpl) ToggleDepartment(w http.ResponseWriter, r *http.Request) {
	var req toggleDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.Department == "" {
		response.BadRequest(w, "department is required", nil)
		return
	}

	result, err := h.rosterService.ToggleDepartment(r.Context(), req.Department)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

type toggleLevelRequest struct {
	Level int `json:"level"`
}

// ToggleLevel handles POST /roster/filters/levels
func (h *rosterHandlerImpl) ToggleLevel(w http.ResponseWriter, r *http.Request) {
	var req toggleLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.rosterService.ToggleLevel(r.Context(), req.Level)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ClearFilters handles DELETE /roster/filters
func (h *rosterHandlerImpl) ClearFilters(w http.ResponseWriter, r *http.Request) {
	result, err := h.rosterService.ClearFilters(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
