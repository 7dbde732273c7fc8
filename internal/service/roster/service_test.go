package roster

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/workload-backend-go/internal/domain/report"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
)

// ---- in-memory fakes ----

type fakeUserRepo struct {
	mu    sync.Mutex
	users []user.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []user.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = append(f.users, newUser)
	return newUser, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, u := range f.users {
		if u.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (f *fakeUserRepo) ListDepartments(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[string]struct{})
	var out []string
	for _, u := range f.users {
		if _, ok := seen[u.DepartmentName]; !ok {
			seen[u.DepartmentName] = struct{}{}
			out = append(out, u.DepartmentName)
		}
	}
	sort.Strings(out)
	return out, nil
}

type fakeReportRepo struct {
	mu      sync.Mutex
	reports map[string][]report.WorkloadReport
	failing bool

	// afterGetLatest, when set, runs after the result is computed but before it
	// is returned. Lets tests hold a load in flight with a stale result.
	afterGetLatest func()
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string][]report.WorkloadReport)}
}

func (f *fakeReportRepo) Create(ctx context.Context, r report.WorkloadReport) (report.WorkloadReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	f.reports[r.UserID] = append(f.reports[r.UserID], r)
	return r, nil
}

func (f *fakeReportRepo) GetLatestByUserID(ctx context.Context, userID string) (report.WorkloadReport, error) {
	f.mu.Lock()
	if f.failing {
		f.mu.Unlock()
		return report.WorkloadReport{}, errors.New("store unavailable")
	}
	list := f.reports[userID]
	var latest report.WorkloadReport
	found := false
	for _, r := range list {
		if !found || r.CreatedAt.After(latest.CreatedAt) {
			latest = r
			found = true
		}
	}
	hook := f.afterGetLatest
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if !found {
		return report.WorkloadReport{}, report.ErrReportNotFound
	}
	return latest, nil
}

func (f *fakeReportRepo) DeleteByUserID(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.reports, userID)
	return nil
}

// ---- helpers ----

func managerCtx(t *testing.T, userID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":  userID,
		"username": "boss",
		"role":     "manager",
		"type":     "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func seedEmployee(repo *fakeUserRepo, id, username, department string) {
	repo.users = append(repo.users, user.User{
		ID:             id,
		Username:       username,
		Role:           user.RoleEmployee,
		DepartmentName: department,
		CreatedAt:      time.Now(),
	})
}

func seedReport(repo *fakeReportRepo, userID string, level int, createdAt time.Time) {
	repo.reports[userID] = append(repo.reports[userID], report.WorkloadReport{
		ID:            userID + "-r",
		UserID:        userID,
		WorkloadLevel: level,
		CreatedAt:     createdAt,
	})
}

// ---- tests ----

func TestRosterService_LoadJoinsLatestReportsInRosterOrder(t *testing.T) {
	userRepo := &fakeUserRepo{}
	reportRepo := newFakeReportRepo()
	seedEmployee(userRepo, "u1", "anna", "Sales")
	seedEmployee(userRepo, "u2", "boris", "Engineering")
	seedEmployee(userRepo, "u3", "clara", "Support")

	now := time.Now()
	seedReport(reportRepo, "u1", 2, now.Add(-2*time.Hour))
	seedReport(reportRepo, "u1", 5, now.Add(-time.Minute)) // latest wins
	seedReport(reportRepo, "u3", 4, now.Add(-time.Hour))
	// u2 never reported.

	svc := NewRosterService(userRepo, reportRepo)
	ctx := managerCtx(t, "mgr")

	require.NoError(t, svc.Load(context.Background()))

	view, err := svc.View(ctx)
	require.NoError(t, err)

	require.Len(t, view.Reports, 3)
	assert.Equal(t, "anna", view.Reports[0].User.Username)
	assert.Equal(t, "boris", view.Reports[1].User.Username)
	assert.Equal(t, "clara", view.Reports[2].User.Username)

	require.NotNil(t, view.Reports[0].LatestReport)
	assert.Equal(t, 5, view.Reports[0].LatestReport.WorkloadLevel)
	assert.Nil(t, view.Reports[1].LatestReport)
	require.NotNil(t, view.Reports[2].LatestReport)
	assert.Equal(t, 4, view.Reports[2].LatestReport.WorkloadLevel)

	assert.Equal(t, 3, view.Summary.Headcount)
	assert.InDelta(t, 3.0, view.Summary.AverageWorkload, 1e-9) // (5+0+4)/3
}

func TestRosterService_ViewBeforeFirstLoadIsEmpty(t *testing.T) {
	svc := NewRosterService(&fakeUserRepo{}, newFakeReportRepo())

	view, err := svc.View(managerCtx(t, "mgr"))
	require.NoError(t, err)

	assert.Empty(t, view.Reports)
	assert.Equal(t, 0, view.Summary.Headcount)
}

func TestRosterService_FailedLoadKeepsPriorSnapshot(t *testing.T) {
	userRepo := &fakeUserRepo{}
	reportRepo := newFakeReportRepo()
	seedEmployee(userRepo, "u1", "anna", "Sales")
	seedReport(reportRepo, "u1", 3, time.Now())

	svc := NewRosterService(userRepo, reportRepo)
	require.NoError(t, svc.Load(context.Background()))

	reportRepo.mu.Lock()
	reportRepo.failing = true
	reportRepo.mu.Unlock()

	err := svc.Load(context.Background())
	require.Error(t, err)

	view, err := svc.View(managerCtx(t, "mgr"))
	require.NoError(t, err)
	require.Len(t, view.Reports, 1)
	require.NotNil(t, view.Reports[0].LatestReport)
	assert.Equal(t, 3, view.Reports[0].LatestReport.WorkloadLevel)
}

func TestRosterService_StaleLoadIsDiscarded(t *testing.T) {
	userRepo := &fakeUserRepo{}
	reportRepo := newFakeReportRepo()
	seedEmployee(userRepo, "u1", "anna", "Sales")
	seedReport(reportRepo, "u1", 1, time.Now().Add(-time.Hour))

	svc := NewRosterService(userRepo, reportRepo)

	inFlight := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	reportRepo.afterGetLatest = func() {
		once.Do(func() {
			close(inFlight)
			<-release
		})
	}

	// First load stalls after computing its (old) result.
	firstDone := make(chan error, 1)
	go func() { firstDone <- svc.Load(context.Background()) }()
	<-inFlight

	// A newer report lands and a second load publishes it.
	seedReportLocked(reportRepo, "u1", 5, time.Now())
	require.NoError(t, svc.Load(context.Background()))

	// The first load completes last but was issued first: its result must not
	// overwrite the fresher snapshot.
	close(release)
	require.NoError(t, <-firstDone)

	view, err := svc.View(managerCtx(t, "mgr"))
	require.NoError(t, err)
	require.Len(t, view.Reports, 1)
	require.NotNil(t, view.Reports[0].LatestReport)
	assert.Equal(t, 5, view.Reports[0].LatestReport.WorkloadLevel)
}

func seedReportLocked(repo *fakeReportRepo, userID string, level int, createdAt time.Time) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.reports[userID] = append(repo.reports[userID], report.WorkloadReport{
		ID:            userID + "-r2",
		UserID:        userID,
		WorkloadLevel: level,
		CreatedAt:     createdAt,
	})
}

func TestRosterService_DeletedEmployeeDisappears(t *testing.T) {
	userRepo := &fakeUserRepo{}
	reportRepo := newFakeReportRepo()
	seedEmployee(userRepo, "u1", "anna", "Sales")
	seedEmployee(userRepo, "u2", "boris", "Sales")
	seedReport(reportRepo, "u2", 5, time.Now())

	svc := NewRosterService(userRepo, reportRepo)
	require.NoError(t, svc.Load(context.Background()))

	require.NoError(t, userRepo.Delete(context.Background(), "u2"))
	require.NoError(t, reportRepo.DeleteByUserID(context.Background(), "u2"))
	require.NoError(t, svc.Load(context.Background()))

	view, err := svc.View(managerCtx(t, "mgr"))
	require.NoError(t, err)
	require.Len(t, view.Reports, 1)
	assert.Equal(t, "anna", view.Reports[0].User.Username)
}

func TestRosterService_FilterStatePerManagerAndReset(t *testing.T) {
	userRepo := &fakeUserRepo{}
	reportRepo := newFakeReportRepo()
	seedEmployee(userRepo, "u1", "anna", "Sales")
	seedEmployee(userRepo, "u2", "boris", "Engineering")

	svc := NewRosterService(userRepo, reportRepo)
	require.NoError(t, svc.Load(context.Background()))

	ctxA := managerCtx(t, "mgr-a")
	ctxB := managerCtx(t, "mgr-b")

	state, err := svc.ToggleDepartment(ctxA, "Sales")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sales"}, state.SelectedDepartments)
	assert.True(t, state.Active)

	// Manager B is unaffected.
	viewB, err := svc.View(ctxB)
	require.NoError(t, err)
	assert.Len(t, viewB.Reports, 2)
	assert.False(t, viewB.Filters.Active)

	viewA, err := svc.View(ctxA)
	require.NoError(t, err)
	require.Len(t, viewA.Reports, 1)
	assert.Equal(t, "anna", viewA.Reports[0].User.Username)
	// Summary still covers the whole roster.
	assert.Equal(t, 2, viewA.Summary.Headcount)

	// Logout drops the session's filters.
	svc.ResetFilters("mgr-a")
	viewA, err = svc.View(ctxA)
	require.NoError(t, err)
	assert.Len(t, viewA.Reports, 2)
	assert.False(t, viewA.Filters.Active)
}

func TestRosterService_ToggleLevelValidatesDomain(t *testing.T) {
	svc := NewRosterService(&fakeUserRepo{}, newFakeReportRepo())
	ctx := managerCtx(t, "mgr")

	_, err := svc.ToggleLevel(ctx, 0)
	assert.ErrorIs(t, err, report.ErrInvalidLevel)

	state, err := svc.ToggleLevel(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, state.MinLevel)
	assert.Equal(t, 4, state.MaxLevel)
}

func TestRosterService_ClearFilters(t *testing.T) {
	svc := NewRosterService(&fakeUserRepo{}, newFakeReportRepo())
	ctx := managerCtx(t, "mgr")

	_, err := svc.ToggleDepartment(ctx, "Sales")
	require.NoError(t, err)
	_, err = svc.ToggleLevel(ctx, 1)
	require.NoError(t, err)

	state, err := svc.ClearFilters(ctx)
	require.NoError(t, err)
	assert.False(t, state.Active)
	assert.Empty(t, state.SelectedDepartments)
	assert.Equal(t, 1, state.MinLevel)
	assert.Equal(t, 5, state.MaxLevel)
}

func TestRosterService_ViewRequiresSession(t *testing.T) {
	svc := NewRosterService(&fakeUserRepo{}, newFakeReportRepo())

	_, err := svc.View(context.Background())
	assert.Error(t, err)
}
