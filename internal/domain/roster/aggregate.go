package roster

import "time"

// Summary holds the dashboard's headline numbers, always computed over the full
// unfiltered snapshot.
type Summary struct {
	Headcount       int
	AverageWorkload float64
	ReportsToday    int
}

// Summarize recomputes the summary from scratch. Employees without a report
// contribute 0 to the average, pulling it down rather than being excluded; that
// matches the dashboard's intent of showing "how loaded is the whole roster".
// ReportsToday counts latest reports submitted on now's local calendar date.
func Summarize(reports []EmployeeReport, now time.Time) Summary {
	s := Summary{Headcount: len(reports)}
	if s.Headcount == 0 {
		return s
	}

	sum := 0
	year, month, day := now.Date()
	for _, er := range reports {
		if er.LatestReport == nil {
			continue
		}
		sum += er.LatestReport.WorkloadLevel

		y, m, d := er.LatestReport.CreatedAt.In(now.Location()).Date()
		if y == year && m == month && d == day {
			s.ReportsToday++
		}
	}
	s.AverageWorkload = float64(sum) / float64(s.Headcount)
	return s
}
