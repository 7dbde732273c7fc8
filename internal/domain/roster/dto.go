package roster

import (
	"time"

	"github.com/teampulse/workload-backend-go/internal/domain/report"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
)

type EmployeeReportResponse struct {
	User         user.UserResponse              `json:"user"`
	LatestReport *report.WorkloadReportResponse `json:"latest_report,omitempty"`
}

type SummaryResponse struct {
	Headcount       int     `json:"headcount"`
	AverageWorkload float64 `json:"average_workload"`
	ReportsToday    int     `json:"reports_today"`
}

type FilterStateResponse struct {
	SelectedDepartments []string `json:"selected_departments"`
	MinLevel            int      `json:"min_level"`
	MaxLevel            int      `json:"max_level"`
	Active              bool     `json:"active"`
}

// ViewResponse is the manager dashboard read model: the filtered roster, the
// summary over the unfiltered snapshot, and the caller's current filter state.
type ViewResponse struct {
	Reports  []EmployeeReportResponse `json:"reports"`
	Summary  SummaryResponse          `json:"summary"`
	Filters  FilterStateResponse      `json:"filters"`
	LoadedAt string                   `json:"loaded_at"`
}

func ToEmployeeReportResponse(er EmployeeReport) EmployeeReportResponse {
	resp := EmployeeReportResponse{User: user.ToResponse(er.User)}
	if er.LatestReport != nil {
		r := report.ToResponse(*er.LatestReport)
		resp.LatestReport = &r
	}
	return resp
}

func ToSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		Headcount:       s.Headcount,
		AverageWorkload: s.AverageWorkload,
		ReportsToday:    s.ReportsToday,
	}
}

func ToFilterStateResponse(f *FilterState) FilterStateResponse {
	return FilterStateResponse{
		SelectedDepartments: f.SelectedDepartments(),
		MinLevel:            f.MinLevel,
		MaxLevel:            f.MaxLevel,
		Active:              f.IsFiltered(),
	}
}

func ToViewResponse(filtered []EmployeeReport, summary Summary, f *FilterState, loadedAt time.Time) ViewResponse {
	reports := make([]EmployeeReportResponse, 0, len(filtered))
	for _, er := range filtered {
		reports = append(reports, ToEmployeeReportResponse(er))
	}
	return ViewResponse{
		Reports:  reports,
		Summary:  ToSummaryResponse(summary),
		Filters:  ToFilterStateResponse(f),
		LoadedAt: loadedAt.Format(time.RFC3339),
	}
}
