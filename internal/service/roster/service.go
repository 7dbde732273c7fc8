package roster

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/teampulse/workload-backend-go/internal/domain/auth"
	"github.com/teampulse/workload-backend-go/internal/domain/report"
	"github.com/teampulse/workload-backend-go/internal/domain/roster"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type rosterServiceImpl struct {
	userRepo   user.Repository
	reportRepo report.Repository

	// snapshot plus the sequence of the load that produced it. Loads from the
	// refresh ticker and the manual refresh action run unserialized; the
	// sequence makes the later-issued load win, so a slow stale response can
	// never overwrite a fresher snapshot.
	mu       sync.RWMutex
	snapshot *roster.Snapshot
	loadSeq  uint64
	pubSeq   uint64

	filterMu sync.RWMutex
	filters  map[string]*roster.FilterState
}

func NewRosterService(userRepo user.Repository, reportRepo report.Repository) roster.Service {
	return &rosterServiceImpl{
		userRepo:   userRepo,
		reportRepo: reportRepo,
		filters:    make(map[string]*roster.FilterState),
	}
}

// Load implements roster.Service. One fetch per employee, fanned out and joined
// positionally, so the snapshot preserves the roster order. Any failed fetch
// fails the whole load and the previous snapshot stays published.
func (s *rosterServiceImpl) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.mu.Unlock()

	employees, err := s.userRepo.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	reports := make([]roster.EmployeeReport, len(employees))
	g, gCtx := errgroup.WithContext(ctx)
	for i, emp := range employees {
		g.Go(func() error {
			latest, err := s.reportRepo.GetLatestByUserID(gCtx, emp.ID)
			if err != nil {
				if errors.Is(err, report.ErrReportNotFound) {
					reports[i] = roster.EmployeeReport{User: emp}
					return nil
				}
				return fmt.Errorf("failed to fetch latest report for %s: %w", emp.Username, err)
			}
			reports[i] = roster.EmployeeReport{User: emp, LatestReport: &latest}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.publish(seq, &roster.Snapshot{Reports: reports, LoadedAt: time.Now()})
	return nil
}

// publish swaps the snapshot in unless a later-issued load already published.
func (s *rosterServiceImpl) publish(seq uint64, snap *roster.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.pubSeq {
		return
	}
	s.pubSeq = seq
	s.snapshot = snap
}

func (s *rosterServiceImpl) current() *roster.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// View implements roster.Service. The summary is always computed over the full
// snapshot; only the report list is filtered.
func (s *rosterServiceImpl) View(ctx context.Context) (roster.ViewResponse, error) {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return roster.ViewResponse{}, err
	}

	snap := s.current()
	if snap == nil {
		// First load has not completed yet; an empty roster is a valid state.
		snap = &roster.Snapshot{LoadedAt: time.Now()}
	}

	filter := s.filterFor(session.UserID())
	s.filterMu.RLock()
	filtered := filter.Apply(snap.Reports)
	resp := roster.ToViewResponse(filtered, roster.Summarize(snap.Reports, time.Now()), filter, snap.LoadedAt)
	s.filterMu.RUnlock()

	return resp, nil
}

// ToggleDepartment implements roster.Service.
func (s *rosterServiceImpl) ToggleDepartment(ctx context.Context, department string) (roster.FilterStateResponse, error) {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return roster.FilterStateResponse{}, err
	}

	filter := s.filterFor(session.UserID())
	s.filterMu.Lock()
	filter.ToggleDepartment(department)
	resp := roster.ToFilterStateResponse(filter)
	s.filterMu.Unlock()
	return resp, nil
}

// ToggleLevel implements roster.Service.
func (s *rosterServiceImpl) ToggleLevel(ctx context.Context, level int) (roster.FilterStateResponse, error) {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return roster.FilterStateResponse{}, err
	}
	if level < report.LevelMin || level > report.LevelMax {
		return roster.FilterStateResponse{}, report.ErrInvalidLevel
	}

	filter := s.filterFor(session.UserID())
	s.filterMu.Lock()
	filter.ToggleLevel(level)
	resp := roster.ToFilterStateResponse(filter)
	s.filterMu.Unlock()
	return resp, nil
}

// ClearFilters implements roster.Service.
func (s *rosterServiceImpl) ClearFilters(ctx context.Context) (roster.FilterStateResponse, error) {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return roster.FilterStateResponse{}, err
	}

	filter := s.filterFor(session.UserID())
	s.filterMu.Lock()
	filter.Clear()
	resp := roster.ToFilterStateResponse(filter)
	s.filterMu.Unlock()
	return resp, nil
}

// ResetFilters implements roster.Service.
func (s *rosterServiceImpl) ResetFilters(userID string) {
	s.filterMu.Lock()
	delete(s.filters, userID)
	s.filterMu.Unlock()
}

func (s *rosterServiceImpl) filterFor(userID string) *roster.FilterState {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()

	if f, ok := s.filters[userID]; ok {
		return f
	}
	f := roster.NewFilterState()
	s.filters[userID] = f
	return f
}
