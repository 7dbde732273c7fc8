package roster

import (
	"time"

	"github.com/teampulse/workload-backend-go/internal/domain/report"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
)

// EmployeeReport pairs an employee with their latest workload report.
// LatestReport is nil when the employee has never submitted one; that is a valid
// empty state, not an error.
type EmployeeReport struct {
	User         user.User
	LatestReport *report.WorkloadReport
}

// Snapshot is the in-memory result of one roster load. It is a pure projection:
// discarded and rebuilt wholesale on every load, never patched in place, and always
// replaced atomically so readers never see a torn cross-employee state.
type Snapshot struct {
	Reports  []EmployeeReport
	LoadedAt time.Time
}
