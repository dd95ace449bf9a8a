package assigner

import (
	"github.com/datasquad/roomcheck/pkg/core/conflict"
	"github.com/datasquad/roomcheck/pkg/core/model"
)

// AssignTwoWeeks runs the assignment at the reduced per-room duration and
// splits each shift's room list across two successive weekly occurrences
// of the shift.
//
// The pass itself uses a single pooled assigned-set so no room is checked
// more than once across the whole two-week period. The split then tags
// the first half of each shift's ordered list as week 1 and the rest as
// week 2, recording every room in its week-scoped set as well. Week 1
// always receives the higher-priority half, and the extra room of an
// odd-length list.
func AssignTwoWeeks(
	shifts []model.Shift,
	rooms []*model.Room,
	idx *conflict.Index,
	cfg Config,
	state *RunState,
) []ShiftAssignment {
	perShift := AssignAll(shifts, rooms, idx, cfg, state, model.WeekNone)

	for i := range perShift {
		splitShiftAcrossWeeks(&perShift[i], state)
	}

	return perShift
}

// splitShiftAcrossWeeks partitions one shift's ordered checks into the
// week-1 and week-2 halves in place.
func splitShiftAcrossWeeks(sa *ShiftAssignment, state *RunState) {
	n := len(sa.Checks)
	if n == 0 {
		return
	}

	// ceil(n/2) rooms go to week 1
	cut := (n + 1) / 2

	for i := range sa.Checks {
		week := model.Week1
		if i >= cut {
			week = model.Week2
		}
		sa.Checks[i].Week = week
		state.Mark(week, sa.Checks[i].Room.Name)
	}
}
