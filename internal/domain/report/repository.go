package report

import "context"

type Repository interface {
	Create(ctx context.Context, newReport WorkloadReport) (WorkloadReport, error)

	// GetLatestByUserID returns the report with the maximum created_at for the
	// user, or ErrReportNotFound when the user has never submitted one.
	GetLatestByUserID(ctx context.Context, userID string) (WorkloadReport, error)

	// DeleteByUserID removes all reports belonging to a user. Used when the
	// owning user is deleted; reports are never removed on their own.
	DeleteByUserID(ctx context.Context, userID string) error
}
