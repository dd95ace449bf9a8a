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

// AssignResult contains one run's complete output: every room check, the
// rooms nothing could cover, and the input rows that were dropped along
// the way. Both output sets are always produced, even when individual
// input records are malformed.
type AssignResult struct {
	RunID       string
	TwoWeek     bool
	Assignments []model.Assignment
	Unchecked   []model.UncheckedRoom
	Issues      []model.Issue
	ShiftCount  int
	RoomCount   int
}

// AssignRooms runs the one-week assignment: each room checked at most
// once this week, at the full per-room duration.
func AssignRooms(source DataSource, cfg *config.Config, logger *zap.Logger) (*AssignResult, error) {
	runID := uuid.New().String()
	logger.Info("Starting one-week assignment", zap.String("run_id", runID))

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
		CheckDuration: assigner.DefaultCheckDuration,
		Buffer:        cfg.Buffer(),
	}

	results := assigner.AssignAll(in.Shifts, in.Rooms, idx, assignerCfg, state, model.WeekNone)

	assignments := toAssignments(results, dates, func() string { return uuid.New().String() })
	unchecked := toUnchecked(
		assigner.UncheckedRooms(state, in.Rooms, model.WeekNone),
		in.Coordinates,
	)

	logger.Info("Assignment completed",
		zap.String("run_id", runID),
		zap.Int("assignments", len(assignments)),
		zap.Int("unchecked_rooms", len(unchecked)),
		zap.Int("issues", len(in.Issues)))

	return &AssignResult{
		RunID:       runID,
		Assignments: assignments,
		Unchecked:   unchecked,
		Issues:      in.Issues,
		ShiftCount:  len(in.Shifts),
		RoomCount:   len(in.Rooms),
	}, nil
}
