package services

import (
	"go.uber.org/zap"

	"github.com/datasquad/roomcheck/pkg/core/model"
)

// ValidateResult summarizes an ingestion dry run.
type ValidateResult struct {
	OccupancyCount int
	ShiftCount     int
	RoomCount      int
	BuildingCount  int
	Issues         []model.Issue
}

// ValidateInputs loads and cross-checks all input tables without running
// the assignment, so bad exports can be fixed before schedules go out.
func ValidateInputs(source DataSource, logger *zap.Logger) (*ValidateResult, error) {
	in, err := loadInputs(source, logger)
	if err != nil {
		return nil, err
	}

	return &ValidateResult{
		OccupancyCount: len(in.Occupancies),
		ShiftCount:     len(in.Shifts),
		RoomCount:      len(in.Rooms),
		BuildingCount:  len(in.Coordinates),
		Issues:         in.Issues,
	}, nil
}
