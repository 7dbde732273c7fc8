package report

import (
	"time"

	"github.com/teampulse/workload-backend-go/internal/pkg/validator"
)

type SubmitReportRequest struct {
	WorkloadLevel int    `json:"workload_level"`
	Notes         string `json:"notes"`
}

func (r *SubmitReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidWorkloadLevel(r.WorkloadLevel) {
		errs = append(errs, validator.ValidationError{
			Field:   "workload_level",
			Message: "workload_level must be between 1 and 5",
		})
	}
	// Notes are free text and optional.

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkloadReportResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	WorkloadLevel int    `json:"workload_level"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func ToResponse(r WorkloadReport) WorkloadReportResponse {
	return WorkloadReportResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		WorkloadLevel: r.WorkloadLevel,
		Notes:         r.Notes,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}
