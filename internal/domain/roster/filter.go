package roster

import (
	"sort"

	"github.com/teampulse/workload-backend-go/internal/domain/report"
)

// FilterState is the manager dashboard's filter: a set of selected departments
// (empty set means "all departments") and an inclusive workload level range.
// The range is driven by per-level checkboxes, so it can become empty (MinLevel >
// MaxLevel) by unchecking every level; an empty range matches nothing except
// employees with no report, who always bypass the level predicate.
type FilterState struct {
	selectedDepartments map[string]struct{}
	MinLevel            int
	MaxLevel            int
}

func NewFilterState() *FilterState {
	return &FilterState{
		selectedDepartments: make(map[string]struct{}),
		MinLevel:            report.LevelMin,
		MaxLevel:            report.LevelMax,
	}
}

// ToggleDepartment selects the department if unselected and unselects it
// otherwise. Toggling twice restores the original state.
func (f *FilterState) ToggleDepartment(name string) {
	if _, ok := f.selectedDepartments[name]; ok {
		delete(f.selectedDepartments, name)
		return
	}
	f.selectedDepartments[name] = struct{}{}
}

// ToggleLevel mirrors the per-level checkbox: unchecking the bottom or top edge
// shrinks the range, checking a level outside grows the range to include it.
// A level strictly inside the range cannot be unchecked in a single step without
// splitting the range, so that click is a no-op.
func (f *FilterState) ToggleLevel(level int) {
	if level < report.LevelMin || level > report.LevelMax {
		return
	}

	inside := level >= f.MinLevel && level <= f.MaxLevel
	switch {
	case inside && level == f.MinLevel:
		f.MinLevel++
	case inside && level == f.MaxLevel:
		f.MaxLevel--
	case inside:
		// Strictly interior, no single-step shrink.
	default:
		f.MinLevel = min(level, f.MinLevel)
		f.MaxLevel = max(level, f.MaxLevel)
	}
}

// Clear resets to the unfiltered default: no departments selected, full range.
func (f *FilterState) Clear() {
	f.selectedDepartments = make(map[string]struct{})
	f.MinLevel = report.LevelMin
	f.MaxLevel = report.LevelMax
}

// IsFiltered reports whether the state differs from the unfiltered default.
func (f *FilterState) IsFiltered() bool {
	return len(f.selectedDepartments) > 0 ||
		f.MinLevel != report.LevelMin ||
		f.MaxLevel != report.LevelMax
}

// SelectedDepartments returns the selected set as a sorted slice.
func (f *FilterState) SelectedDepartments() []string {
	names := make([]string, 0, len(f.selectedDepartments))
	for name := range f.selectedDepartments {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Matches reports whether a single roster entry passes both predicates. An entry
// with no report passes the level predicate unconditionally: absence of data is
// never filtered out.
func (f *FilterState) Matches(er EmployeeReport) bool {
	if len(f.selectedDepartments) > 0 {
		if _, ok := f.selectedDepartments[er.User.DepartmentName]; !ok {
			return false
		}
	}
	if er.LatestReport == nil {
		return true
	}
	level := er.LatestReport.WorkloadLevel
	return level >= f.MinLevel && level <= f.MaxLevel
}

// Apply returns the subsequence of reports that pass the filter, preserving the
// input order.
func (f *FilterState) Apply(reports []EmployeeReport) []EmployeeReport {
	filtered := make([]EmployeeReport, 0, len(reports))
	for _, er := range reports {
		if f.Matches(er) {
			filtered = append(filtered, er)
		}
	}
	return filtered
}
