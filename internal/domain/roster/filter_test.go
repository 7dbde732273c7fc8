package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/teampulse/workload-backend-go/internal/domain/report"
	"github.com/teampulse/workload-backend-go/internal/domain/user"
)

func entry(username, department string, level int) EmployeeReport {
	er := EmployeeReport{
		User: user.User{
			ID:             "id-" + username,
			Username:       username,
			Role:           user.RoleEmployee,
			DepartmentName: department,
			CreatedAt:      time.Now(),
		},
	}
	if level > 0 {
		er.LatestReport = &report.WorkloadReport{
			ID:            "rep-" + username,
			UserID:        er.User.ID,
			WorkloadLevel: level,
			CreatedAt:     time.Now(),
		}
	}
	return er
}

func testRoster() []EmployeeReport {
	return []EmployeeReport{
		entry("anna", "Sales", 5),
		entry("boris", "Sales", 3),
		entry("clara", "Engineering", 1),
		entry("dmitri", "Engineering", 0), // never reported
		entry("elena", "Support", 4),
	}
}

func TestFilter_DefaultIsIdentity(t *testing.T) {
	f := NewFilterState()
	reports := testRoster()

	got := f.Apply(reports)

	assert.Equal(t, reports, got)
	assert.False(t, f.IsFiltered())
}

func TestFilter_AbsentReportBypassesRange(t *testing.T) {
	f := NewFilterState()
	// Shrink to an empty range: nothing with a report can match.
	for level := 1; level <= 5; level++ {
		f.ToggleLevel(f.MinLevel)
	}
	assert.Greater(t, f.MinLevel, f.MaxLevel)

	got := f.Apply(testRoster())

	if assert.Len(t, got, 1) {
		assert.Equal(t, "dmitri", got[0].User.Username)
		assert.Nil(t, got[0].LatestReport)
	}
}

func TestFilter_DepartmentToggleIsInvolution(t *testing.T) {
	f := NewFilterState()

	f.ToggleDepartment("Sales")
	assert.Equal(t, []string{"Sales"}, f.SelectedDepartments())
	assert.True(t, f.IsFiltered())

	f.ToggleDepartment("Sales")
	assert.Empty(t, f.SelectedDepartments())
	assert.False(t, f.IsFiltered())
}

func TestFilter_DepartmentPredicate(t *testing.T) {
	f := NewFilterState()
	f.ToggleDepartment("Engineering")

	got := f.Apply(testRoster())

	usernames := make([]string, 0, len(got))
	for _, er := range got {
		usernames = append(usernames, er.User.Username)
	}
	assert.Equal(t, []string{"clara", "dmitri"}, usernames)
}

func TestFilter_DepartmentAndRangeCombineWithAnd(t *testing.T) {
	f := NewFilterState()
	f.ToggleDepartment("Sales")
	f.ToggleLevel(1) // [2,5]
	f.ToggleLevel(5) // [2,4]

	got := f.Apply(testRoster())

	// anna (Sales, 5) fails the range; boris (Sales, 3) passes both.
	if assert.Len(t, got, 1) {
		assert.Equal(t, "boris", got[0].User.Username)
	}
}

func TestFilter_ShrinkFromEdges(t *testing.T) {
	f := NewFilterState()

	f.ToggleLevel(1)
	assert.Equal(t, 2, f.MinLevel)
	assert.Equal(t, 5, f.MaxLevel)

	f.ToggleLevel(5)
	assert.Equal(t, 2, f.MinLevel)
	assert.Equal(t, 4, f.MaxLevel)
}

func TestFilter_GrowToIncludeOutsideLevel(t *testing.T) {
	f := NewFilterState()
	// Collapse to [3,3].
	f.ToggleLevel(1)
	f.ToggleLevel(2)
	f.ToggleLevel(5)
	f.ToggleLevel(4)
	assert.Equal(t, 3, f.MinLevel)
	assert.Equal(t, 3, f.MaxLevel)

	f.ToggleLevel(1)
	assert.Equal(t, 1, f.MinLevel)
	assert.Equal(t, 3, f.MaxLevel)
}

func TestFilter_InteriorToggleIsNoOp(t *testing.T) {
	f := NewFilterState()

	f.ToggleLevel(3)
	assert.Equal(t, 1, f.MinLevel)
	assert.Equal(t, 5, f.MaxLevel)
}

func TestFilter_SingleLevelRangeEmptiesFromMin(t *testing.T) {
	f := NewFilterState()
	f.ToggleLevel(1)
	f.ToggleLevel(2)
	f.ToggleLevel(5)
	f.ToggleLevel(4)
	// [3,3]: unchecking the only level empties the range from the bottom.
	f.ToggleLevel(3)
	assert.Equal(t, 4, f.MinLevel)
	assert.Equal(t, 3, f.MaxLevel)
	assert.True(t, f.IsFiltered())
}

func TestFilter_ClearResetsEverything(t *testing.T) {
	f := NewFilterState()
	f.ToggleDepartment("Sales")
	f.ToggleDepartment("Support")
	f.ToggleLevel(1)
	f.ToggleLevel(5)

	f.Clear()

	assert.False(t, f.IsFiltered())
	assert.Empty(t, f.SelectedDepartments())
	assert.Equal(t, report.LevelMin, f.MinLevel)
	assert.Equal(t, report.LevelMax, f.MaxLevel)
	assert.Equal(t, testRoster(), f.Apply(testRoster()))
}

func TestFilter_PreservesInputOrder(t *testing.T) {
	f := NewFilterState()
	f.ToggleLevel(1) // [2,5]: drops clara, keeps the rest in place

	got := f.Apply(testRoster())

	usernames := make([]string, 0, len(got))
	for _, er := range got {
		usernames = append(usernames, er.User.Username)
	}
	assert.Equal(t, []string{"anna", "boris", "dmitri", "elena"}, usernames)
}

func TestFilter_ToggleLevelOutOfDomainIsIgnored(t *testing.T) {
	f := NewFilterState()
	f.ToggleLevel(0)
	f.ToggleLevel(6)
	assert.False(t, f.IsFiltered())
}
