package assigner

import (
	"time"

	"github.com/datasquad/roomcheck/pkg/core/model"
)

const (
	// DefaultCheckDuration is the per-room inspection time in one-week mode
	DefaultCheckDuration = 10 * time.Minute

	// TwoWeekCheckDuration is the per-room inspection time in two-week
	// mode: the default halved, never below one minute
	TwoWeekCheckDuration = 5 * time.Minute

	// DefaultShiftBuffer is trimmed from the start of each shift before
	// checks are scheduled
	DefaultShiftBuffer = 0 * time.Minute
)

// Config controls a single assignment pass.
type Config struct {
	// CheckDuration is the fixed per-room inspection time
	CheckDuration time.Duration

	// Buffer is subtracted from each shift's usable time and delays the
	// first scheduled check past the shift start
	Buffer time.Duration
}

// RoomCheck is one room scheduled for inspection within a shift.
type RoomCheck struct {
	Room    *model.Room
	CheckAt time.Time
	Week    model.Week
}

// ShiftAssignment holds the outcome of one shift's assignment pass: zero
// or more room checks, all confined to a single zone.
type ShiftAssignment struct {
	Shift  model.Shift
	Zone   string
	Checks []RoomCheck
}

// RunState carries the already-assigned room sets for a run. It is scoped
// explicitly (per run, and per week in two-week mode) so repeated runs and
// tests never leak state into each other. Mutated only by the single
// sequential assignment loop.
type RunState struct {
	assigned map[model.Week]map[string]bool
}

// NewRunState creates empty assigned-room bookkeeping for one run.
func NewRunState() *RunState {
	return &RunState{assigned: make(map[model.Week]map[string]bool)}
}

// IsAssigned reports whether the room is already taken in the given
// week scope.
func (s *RunState) IsAssigned(week model.Week, room string) bool {
	return s.assigned[week][room]
}

// Mark records the room as taken in the given week scope.
func (s *RunState) Mark(week model.Week, room string) {
	set, ok := s.assigned[week]
	if !ok {
		set = make(map[string]bool)
		s.assigned[week] = set
	}
	set[room] = true
}

// AssignedCount returns how many rooms are taken in the given week scope.
func (s *RunState) AssignedCount(week model.Week) int {
	return len(s.assigned[week])
}
