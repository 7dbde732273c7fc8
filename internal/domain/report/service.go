package report

import "context"

// Service is the employee-side submission flow.
type Service interface {
	// Submit validates and stores a new report for the authenticated employee,
	// then re-fetches that employee's latest report so the caller can refresh
	// the "last report" card from the store's view of the write.
	Submit(ctx context.Context, req SubmitReportRequest) (WorkloadReportResponse, error)

	// Latest returns the authenticated employee's most recent report, or
	// ErrReportNotFound if none exists yet.
	Latest(ctx context.Context) (WorkloadReportResponse, error)
}
