package assigner

import (
	"errors"
	"sort"

	"github.com/datasquad/roomcheck/pkg/core/conflict"
	"github.com/datasquad/roomcheck/pkg/core/interval"
	"github.com/datasquad/roomcheck/pkg/core/model"
)

// AssignAll runs the greedy zone-constrained assignment for every shift.
//
// Shifts are processed in a fixed deterministic order (day, then start
// time, then student) so the same input always yields the same output.
// Room availability is consumed greedily through the shared RunState:
// when two shifts compete for a room, the earlier-ordered shift wins and
// the later shift's zone selection falls back to its next-best zone.
func AssignAll(
	shifts []model.Shift,
	rooms []*model.Room,
	idx *conflict.Index,
	cfg Config,
	state *RunState,
	week model.Week,
) []ShiftAssignment {
	ordered := SortShifts(shifts)

	results := make([]ShiftAssignment, 0, len(ordered))
	for _, shift := range ordered {
		results = append(results, AssignShift(shift, rooms, idx, cfg, state, week))
	}
	return results
}

// AssignShift fills one shift's time budget with the highest-priority,
// conflict-free, not-yet-assigned rooms of a single zone.
//
// A shift with zero eligible rooms produces zero checks; that is a valid
// terminal outcome, not an error.
func AssignShift(
	shift model.Shift,
	rooms []*model.Room,
	idx *conflict.Index,
	cfg Config,
	state *RunState,
	week model.Week,
) ShiftAssignment {
	result := ShiftAssignment{Shift: shift}

	budget := NewShiftBudget(shift, cfg.Buffer, cfg.CheckDuration)
	if !budget.CanConsume() {
		return result
	}

	candidates := unassignedByPriority(rooms, state, week)
	if len(candidates) == 0 {
		return result
	}

	// The zone offering the single best still-available (priority, name)
	// pair is fixed for the entire shift.
	result.Zone = candidates[0].Zone

	for _, room := range candidates {
		if room.Zone != result.Zone {
			continue
		}
		if state.IsAssigned(week, room.Name) {
			continue
		}

		proposed := budget.Peek()
		if _, err := interval.EndFor(proposed, cfg.CheckDuration, budget.ShiftEnd()); err != nil {
			break
		}
		if !idx.IsFree(room.Name, shift.Day, proposed, cfg.CheckDuration) {
			continue
		}

		at, err := budget.TryConsume()
		if errors.Is(err, ErrBudgetExhausted) {
			break
		}

		result.Checks = append(result.Checks, RoomCheck{Room: room, CheckAt: at, Week: week})
		state.Mark(week, room.Name)

		if !budget.CanConsume() {
			break
		}
	}

	return result
}

// SortShifts returns shifts in the canonical processing order: day of
// week, then start time, then student identifier. The input slice is
// not modified.
func SortShifts(shifts []model.Shift) []model.Shift {
	ordered := make([]model.Shift, len(shifts))
	copy(ordered, shifts)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Day.Index() != b.Day.Index() {
			return a.Day.Index() < b.Day.Index()
		}
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.Student < b.Student
	})

	return ordered
}

// UncheckedRooms returns the rooms not assigned in any of the given week
// scopes, sorted by priority, then building, then room name for locality
// of follow-up.
func UncheckedRooms(state *RunState, rooms []*model.Room, weeks ...model.Week) []*model.Room {
	unchecked := make([]*model.Room, 0)

	for _, room := range rooms {
		taken := false
		for _, week := range weeks {
			if state.IsAssigned(week, room.Name) {
				taken = true
				break
			}
		}
		if !taken {
			unchecked = append(unchecked, room)
		}
	}

	sort.Slice(unchecked, func(i, j int) bool {
		a, b := unchecked[i], unchecked[j]
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.Building != b.Building {
			return a.Building < b.Building
		}
		return a.Name < b.Name
	})

	return unchecked
}

// unassignedByPriority returns the rooms not yet assigned in the week
// scope, sorted by (priority ascending, room name ascending). The sort
// key is explicit so no run ever depends on input row order.
func unassignedByPriority(rooms []*model.Room, state *RunState, week model.Week) []*model.Room {
	candidates := make([]*model.Room, 0, len(rooms))
	for _, room := range rooms {
		if !state.IsAssigned(week, room.Name) {
			candidates = append(candidates, room)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority < candidates[j].Priority
		}
		return candidates[i].Name < candidates[j].Name
	})

	return candidates
}
