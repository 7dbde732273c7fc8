package roster

import "context"

// Service keeps the manager dashboard's snapshot fresh and serves the filtered
// view. Load is invoked by the background refresh ticker and by the manual
// refresh action; both may run concurrently and the snapshot sequence decides
// which result is published.
type Service interface {
	// Load fetches all employees and each one's latest report, then publishes
	// the combined snapshot unless a newer load already did.
	Load(ctx context.Context) error

	// View returns the roster filtered by the calling manager's filter state,
	// plus the summary over the unfiltered snapshot.
	View(ctx context.Context) (ViewResponse, error)

	ToggleDepartment(ctx context.Context, department string) (FilterStateResponse, error)
	ToggleLevel(ctx context.Context, level int) (FilterStateResponse, error)
	ClearFilters(ctx context.Context) (FilterStateResponse, error)

	// ResetFilters drops the filter state owned by a manager session. Called on
	// logout; filters are session-local and must not survive it.
	ResetFilters(userID string)
}
