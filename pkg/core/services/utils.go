package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/datasquad/roomcheck/pkg/core/assigner"
	"github.com/datasquad/roomcheck/pkg/core/model"
)

// inputs holds the normalized, cross-checked records for one run.
type inputs struct {
	Occupancies []model.ClassOccupancy
	Shifts      []model.Shift
	Rooms       []*model.Room
	Coordinates map[string]model.Coordinate
	Issues      []model.Issue
}

// loadInputs reads all four tables and applies the consistency check:
// occupancy records naming rooms absent from the metadata are excluded
// and flagged, never fatal.
func loadInputs(source DataSource, logger *zap.Logger) (*inputs, error) {
	occupancies, scheduleIssues, err := source.ClassSchedule()
	if err != nil {
		return nil, fmt.Errorf("failed to load class schedule: %w", err)
	}
	logger.Debug("Loaded class schedule",
		zap.Int("occupancies", len(occupancies)),
		zap.Int("issues", len(scheduleIssues)))

	shifts, shiftIssues, err := source.Shifts()
	if err != nil {
		return nil, fmt.Errorf("failed to load student shifts: %w", err)
	}
	logger.Debug("Loaded student shifts",
		zap.Int("shifts", len(shifts)),
		zap.Int("issues", len(shiftIssues)))

	rooms, roomIssues, err := source.Rooms()
	if err != nil {
		return nil, fmt.Errorf("failed to load room metadata: %w", err)
	}
	logger.Debug("Loaded rooms",
		zap.Int("rooms", len(rooms)),
		zap.Int("issues", len(roomIssues)))

	coords, coordIssues, err := source.Coordinates()
	if err != nil {
		return nil, fmt.Errorf("failed to load building coordinates: %w", err)
	}

	in := &inputs{
		Shifts:      shifts,
		Rooms:       rooms,
		Coordinates: coords,
	}
	in.Issues = append(in.Issues, scheduleIssues...)
	in.Issues = append(in.Issues, shiftIssues...)
	in.Issues = append(in.Issues, roomIssues...)
	in.Issues = append(in.Issues, coordIssues...)

	in.Occupancies = crossCheckOccupancies(occupancies, rooms, in)

	for _, issue := range in.Issues {
		logger.Warn("Input issue",
			zap.String("source", issue.Source),
			zap.Int("line", issue.Line),
			zap.String("kind", string(issue.Kind)),
			zap.String("detail", issue.Detail))
	}

	return in, nil
}

// crossCheckOccupancies excludes occupancy records for rooms the metadata
// does not know, flagging each distinct unknown room once.
func crossCheckOccupancies(occupancies []model.ClassOccupancy, rooms []*model.Room, in *inputs) []model.ClassOccupancy {
	known := make(map[string]bool, len(rooms))
	for _, r := range rooms {
		known[r.Name] = true
	}

	kept := make([]model.ClassOccupancy, 0, len(occupancies))
	flagged := make(map[string]bool)
	for _, occ := range occupancies {
		if known[occ.Room] {
			kept = append(kept, occ)
			continue
		}
		if !flagged[occ.Room] {
			flagged[occ.Room] = true
			in.Issues = append(in.Issues, model.Issue{
				Source: "class schedule",
				Kind:   model.IssueInconsistentData,
				Detail: fmt.Sprintf("room %q has class occupancies but no metadata entry", occ.Room),
			})
		}
	}
	return kept
}

// weekDates maps a weekday to the calendar dates of its week-1 and week-2
// occurrences, derived from the configured term start.
type weekDates map[model.Weekday][2]string

var rruleWeekdays = map[model.Weekday]rrule.Weekday{
	model.Monday:    rrule.MO,
	model.Tuesday:   rrule.TU,
	model.Wednesday: rrule.WE,
	model.Thursday:  rrule.TH,
	model.Friday:    rrule.FR,
}

// expandWeekDates computes, for every working day, the concrete dates of
// the two weekly occurrences following the term start. Returns nil when
// no term start is configured; output rows then carry weekday labels only.
func expandWeekDates(termStart string) (weekDates, error) {
	if termStart == "" {
		return nil, nil
	}

	start, err := time.Parse("2006-01-02", termStart)
	if err != nil {
		return nil, fmt.Errorf("failed to parse term start: %w", err)
	}

	dates := make(weekDates, len(rruleWeekdays))
	for day, rday := range rruleWeekdays {
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Count:     2,
			Byweekday: []rrule.Weekday{rday},
			Dtstart:   start,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build recurrence for %s: %w", day, err)
		}

		occurrences := rule.All()
		if len(occurrences) != 2 {
			return nil, fmt.Errorf("expected 2 occurrences for %s, got %d", day, len(occurrences))
		}
		dates[day] = [2]string{
			occurrences[0].Format("2006-01-02"),
			occurrences[1].Format("2006-01-02"),
		}
	}

	return dates, nil
}

// dateFor resolves the calendar date of a shift occurrence, empty when no
// term start is configured. Week-none (single-week) runs use the first
// occurrence.
func (wd weekDates) dateFor(day model.Weekday, week model.Week) string {
	if wd == nil {
		return ""
	}
	pair, ok := wd[day]
	if !ok {
		return ""
	}
	if week == model.Week2 {
		return pair[1]
	}
	return pair[0]
}

// toAssignments flattens per-shift results into output records, stamping
// each with an ID and the calendar date of its shift occurrence.
func toAssignments(results []assigner.ShiftAssignment, dates weekDates, newID func() string) []model.Assignment {
	records := make([]model.Assignment, 0)
	for _, sa := range results {
		for _, check := range sa.Checks {
			records = append(records, model.Assignment{
				ID:         newID(),
				Student:    sa.Shift.Student,
				Day:        sa.Shift.Day,
				Date:       dates.dateFor(sa.Shift.Day, check.Week),
				ShiftStart: sa.Shift.Start,
				ShiftEnd:   sa.Shift.End,
				Room:       check.Room.Name,
				Building:   check.Room.Building,
				Zone:       check.Room.Zone,
				Priority:   check.Room.Priority,
				RoomType:   check.Room.Type,
				CheckAt:    check.CheckAt,
				Week:       check.Week,
			})
		}
	}
	return records
}

// toUnchecked shapes the leftover rooms into output records, attaching
// building coordinates where known.
func toUnchecked(rooms []*model.Room, coords map[string]model.Coordinate) []model.UncheckedRoom {
	records := make([]model.UncheckedRoom, 0, len(rooms))
	for _, r := range rooms {
		var location *model.Coordinate
		if c, ok := coords[r.Building]; ok {
			location = &c
		}
		records = append(records, model.UncheckedRoom{
			Room:     r.Name,
			Building: r.Building,
			Zone:     r.Zone,
			Priority: r.Priority,
			RoomType: r.Type,
			Location: location,
		})
	}
	return records
}
