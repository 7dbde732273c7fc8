package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teampulse/workload-backend-go/internal/domain/report"
	"github.com/teampulse/workload-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepositoryImpl{db: db}
}

// Create implements report.Repository. created_at is assigned by the store at
// insert time; the returned row carries it back.
func (r *reportRepositoryImpl) Create(ctx context.Context, newReport report.WorkloadReport) (report.WorkloadReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workload_reports (id, user_id, workload_level, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, workload_level, notes, created_at
	`

	var created report.WorkloadReport
	err := q.QueryRow(ctx, query,
		newReport.ID, newReport.UserID, newReport.WorkloadLevel, newReport.Notes,
	).Scan(
		&created.ID, &created.UserID, &created.WorkloadLevel, &created.Notes, &created.CreatedAt,
	)
	if err != nil {
		return report.WorkloadReport{}, fmt.Errorf("failed to create workload report: %w", err)
	}
	return created, nil
}

// GetLatestByUserID implements report.Repository.
func (r *reportRepositoryImpl) GetLatestByUserID(ctx context.Context, userID string) (report.WorkloadReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, workload_level, notes, created_at
		FROM workload_reports
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var latest report.WorkloadReport
	err := q.QueryRow(ctx, query, userID).Scan(
		&latest.ID, &latest.UserID, &latest.WorkloadLevel, &latest.Notes, &latest.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.WorkloadReport{}, report.ErrReportNotFound
		}
		return report.WorkloadReport{}, fmt.Errorf("failed to get latest report for user %s: %w", userID, err)
	}
	return latest, nil
}

// DeleteByUserID implements report.Repository. Zero deleted rows is fine: the
// user may never have reported.
func (r *reportRepositoryImpl) DeleteByUserID(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM workload_reports WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete reports for user %s: %w", userID, err)
	}
	return nil
}
