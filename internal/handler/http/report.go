package http

import (
	"encoding/json"
	"net/http"

	"github.com/teampulse/workload-backend-go/internal/domain/report"
	"github.com/teampulse/workload-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Submit stores a new workload report for the authenticated employee
	Submit(w http.ResponseWriter, r *http.Request)
	// Latest returns the authenticated employee's most recent report
	Latest(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// Submit handles POST /reports
func (h *reportHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req report.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.reportService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Report submitted", result)
}

// Latest handles GET /reports/latest
func (h *reportHandlerImpl) Latest(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Latest(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
