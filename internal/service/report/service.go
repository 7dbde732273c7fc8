package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/teampulse/workload-backend-go/internal/domain/auth"
	"github.com/teampulse/workload-backend-go/internal/domain/report"
)

type reportServiceImpl struct {
	reportRepo report.Repository
}

func NewReportService(reportRepo report.Repository) report.Service {
	return &reportServiceImpl{reportRepo: reportRepo}
}

// Submit implements report.Service. The report is tagged with the submitting
// employee's user ID from the session, never from the request body. After the
// insert the latest report is re-fetched so the response reflects the store's
// ordering, not an optimistic local echo.
func (s *reportServiceImpl) Submit(ctx context.Context, req report.SubmitReportRequest) (report.WorkloadReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.WorkloadReportResponse{}, err
	}

	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return report.WorkloadReportResponse{}, err
	}

	_, err = s.reportRepo.Create(ctx, report.WorkloadReport{
		ID:            uuid.NewString(),
		UserID:        session.UserID(),
		WorkloadLevel: req.WorkloadLevel,
		Notes:         req.Notes,
	})
	if err != nil {
		return report.WorkloadReportResponse{}, fmt.Errorf("failed to submit report: %w", err)
	}

	latest, err := s.reportRepo.GetLatestByUserID(ctx, session.UserID())
	if err != nil {
		return report.WorkloadReportResponse{}, fmt.Errorf("failed to re-fetch latest report: %w", err)
	}
	return report.ToResponse(latest), nil
}

// Latest implements report.Service.
func (s *reportServiceImpl) Latest(ctx context.Context) (report.WorkloadReportResponse, error) {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return report.WorkloadReportResponse{}, err
	}

	latest, err := s.reportRepo.GetLatestByUserID(ctx, session.UserID())
	if err != nil {
		return report.WorkloadReportResponse{}, err
	}
	return report.ToResponse(latest), nil
}
