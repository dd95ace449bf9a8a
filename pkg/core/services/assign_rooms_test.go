package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/datasquad/roomcheck/internal/config"
	"github.com/datasquad/roomcheck/pkg/core/model"
)

// fakeSource is an in-memory DataSource for service tests.
type fakeSource struct {
	occupancies []model.ClassOccupancy
	shifts      []model.Shift
	rooms       []*model.Room
	coords      map[string]model.Coordinate
	issues      []model.Issue
}

func (f *fakeSource) ClassSchedule() ([]model.ClassOccupancy, []model.Issue, error) {
	return f.occupancies, f.issues, nil
}

func (f *fakeSource) Shifts() ([]model.Shift, []model.Issue, error) {
	return f.shifts, nil, nil
}

func (f *fakeSource) Rooms() ([]*model.Room, []model.Issue, error) {
	return f.rooms, nil, nil
}

func (f *fakeSource) Coordinates() (map[string]model.Coordinate, []model.Issue, error) {
	if f.coords == nil {
		return map[string]model.Coordinate{}, nil, nil
	}
	return f.coords, nil, nil
}

func clock(hour, min int) time.Time {
	return time.Date(2000, 1, 3, hour, min, 0, 0, time.UTC)
}

func testConfig() *config.Config {
	return &config.Config{
		ClassSchedulePath: "unused",
		StudentShiftsPath: "unused",
		RoomsPath:         "unused",
		OutputDir:         "unused",
	}
}

func campusSource() *fakeSource {
	return &fakeSource{
		shifts: []model.Shift{
			{Student: "Avery", Day: model.Monday, Start: clock(9, 0), End: clock(9, 30)},
		},
		rooms: []*model.Room{
			{Name: "SCI 101", Zone: "North", Building: "SCI", Priority: 1, Type: "Classroom"},
			{Name: "SCI 102", Zone: "North", Building: "SCI", Priority: 2, Type: "Classroom"},
			{Name: "ART 210", Zone: "South", Building: "ART", Priority: 3, Type: "Studio"},
		},
		coords: map[string]model.Coordinate{
			"ART": {Lat: 44.46, Long: -93.15},
		},
	}
}

func TestAssignRooms_EndToEnd(t *testing.T) {
	result, err := AssignRooms(campusSource(), testConfig(), zap.NewNop())
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.False(t, result.TwoWeek)
	assert.Equal(t, 1, result.ShiftCount)
	assert.Equal(t, 3, result.RoomCount)

	// 30-minute shift at 10 minutes per room: SCI 101 then SCI 102
	require.Len(t, result.Assignments, 2)
	assert.Equal(t, "SCI 101", result.Assignments[0].Room)
	assert.Equal(t, "SCI 102", result.Assignments[1].Room)
	assert.Equal(t, model.WeekNone, result.Assignments[0].Week)
	assert.NotEmpty(t, result.Assignments[0].ID)
	assert.Empty(t, result.Assignments[0].Date, "no term start configured")

	require.Len(t, result.Unchecked, 1)
	assert.Equal(t, "ART 210", result.Unchecked[0].Room)
	require.NotNil(t, result.Unchecked[0].Location, "coordinates attached by building")
	assert.InDelta(t, 44.46, result.Unchecked[0].Location.Lat, 1e-9)
}

func TestAssignRooms_TermStartYieldsDates(t *testing.T) {
	cfg := testConfig()
	cfg.TermStart = "2025-09-01" // a Monday

	result, err := AssignRooms(campusSource(), cfg, zap.NewNop())
	require.NoError(t, err)

	require.NotEmpty(t, result.Assignments)
	assert.Equal(t, "2025-09-01", result.Assignments[0].Date)
}

func TestAssignRooms_RespectsOccupancies(t *testing.T) {
	source := campusSource()
	source.occupancies = []model.ClassOccupancy{
		{Room: "SCI 101", Day: model.Monday, Start: clock(8, 0), End: clock(12, 0)},
	}

	result, err := AssignRooms(source, testConfig(), zap.NewNop())
	require.NoError(t, err)

	for _, a := range result.Assignments {
		assert.NotEqual(t, "SCI 101", a.Room)
	}
}

func TestAssignRooms_FlagsUnknownRoomsInSchedule(t *testing.T) {
	source := campusSource()
	source.occupancies = []model.ClassOccupancy{
		{Room: "GYM 001", Day: model.Monday, Start: clock(8, 0), End: clock(12, 0)},
		{Room: "GYM 001", Day: model.Tuesday, Start: clock(8, 0), End: clock(12, 0)},
	}

	result, err := AssignRooms(source, testConfig(), zap.NewNop())
	require.NoError(t, err)

	inconsistent := 0
	for _, issue := range result.Issues {
		if issue.Kind == model.IssueInconsistentData {
			inconsistent++
		}
	}
	assert.Equal(t, 1, inconsistent, "each unknown room flagged once")
}

func TestAssignRooms_PropagatesReaderIssues(t *testing.T) {
	source := campusSource()
	source.issues = []model.Issue{
		{Source: "class schedule", Line: 7, Kind: model.IssueInvalidInterval, Detail: "bad row"},
	}

	result, err := AssignRooms(source, testConfig(), zap.NewNop())
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, 7, result.Issues[0].Line)
	assert.NotEmpty(t, result.Assignments, "issues never block the run")
}

func TestAssignRooms_NoShiftsStillReportsUnchecked(t *testing.T) {
	source := campusSource()
	source.shifts = nil

	result, err := AssignRooms(source, testConfig(), zap.NewNop())
	require.NoError(t, err)

	assert.Empty(t, result.Assignments)
	assert.Len(t, result.Unchecked, 3)
	// Sorted by priority, then building, then room
	assert.Equal(t, "SCI 101", result.Unchecked[0].Room)
	assert.Equal(t, "SCI 102", result.Unchecked[1].Room)
	assert.Equal(t, "ART 210", result.Unchecked[2].Room)
}

func TestValidateInputs(t *testing.T) {
	source := campusSource()
	source.occupancies = []model.ClassOccupancy{
		{Room: "SCI 101", Day: model.Monday, Start: clock(8, 0), End: clock(9, 0)},
		{Room: "GYM 001", Day: model.Monday, Start: clock(8, 0), End: clock(9, 0)},
	}

	result, err := ValidateInputs(source, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 1, result.OccupancyCount, "unknown-room occupancy excluded")
	assert.Equal(t, 1, result.ShiftCount)
	assert.Equal(t, 3, result.RoomCount)
	assert.Equal(t, 1, result.BuildingCount)
	assert.Len(t, result.Issues, 1)
}
