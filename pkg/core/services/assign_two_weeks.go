package services

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/datasquad/roomcheck/internal/config"
	"github.com/datasquad/roomcheck/pkg/core/assigner"
	"github.com/datasquad/roomcheck/pkg/core/conflict"
	"github.com/datasquad/roomcheck/pkg/core/model"
)

// AssignTwoWeeks runs the two-week assignment: each shift's feasible room
// list is computed at the reduced per-room duration and split across the
// week-1 and week-2 occurrences of the shift, doubling coverage. Unchecked
// rooms are aggregated across both weeks.
func AssignTwoWeeks(source DataSource, cfg *config.Config, logger *zap.Logger) (*AssignResult, error) {
	runID := uuid.New().String()
	logger.Info("Starting two-week assignment", zap.String("run_id", runID))

	in, err := loadInputs(source, logger)
	if err != nil {
		return nil, err
	}

	dates, err := expandWeekDates(cfg.TermStart)
	if err != nil {
		return nil, fmt.Errorf("failed to expand term dates: %w", err)
	}

	idx := conflict.BuildIndex(in.Occupancies)
	logger.Debug("Built conflict index", zap.Int("room_days", idx.Len()))

	state := assigner.NewRunState()
	assignerCfg := assigner.Config{
		CheckDuration: assigner.TwoWeekCheckDuration,
		Buffer:        cfg.Buffer(),
	}

	results := assigner.AssignTwoWeeks(in.Shifts, in.Rooms, idx, assignerCfg, state)

	assignments := toAssignments(results, dates, func() string { return uuid.New().String() })
	unchecked := toUnchecked(
		assigner.UncheckedRooms(state, in.Rooms, model.Week1, model.Week2),
		in.Coordinates,
	)

	logger.Info("Two-week assignment completed",
		zap.String("run_id", runID),
		zap.Int("assignments", len(assignments)),
		zap.Int("unchecked_rooms", len(unchecked)),
		zap.Int("issues", len(in.Issues)))

	return &AssignResult{
		RunID:       runID,
		TwoWeek:     true,
		Assignments: assignments,
		Unchecked:   unchecked,
		Issues:      in.Issues,
		ShiftCount:  len(in.Shifts),
		RoomCount:   len(in.Rooms),
	}, nil
}
