package report

import "time"

// Workload levels, 1 (very low) to 5 (critical).
const (
	LevelMin = 1
	LevelMax = 5
)

// WorkloadReport is immutable once created; reports are only inserted, never
// updated, and removed only when the owning user is deleted.
type WorkloadReport struct {
	ID            string
	UserID        string
	WorkloadLevel int
	Notes         string
	CreatedAt     time.Time
}
