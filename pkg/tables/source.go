package tables

import (
	"fmt"
	"os"

	"github.com/datasquad/roomcheck/pkg/core/model"
)

// FileSource loads the four input tables from local CSV files. It
// implements the collaborator interfaces the services consume.
type FileSource struct {
	SchedulePath    string
	ShiftsPath      string
	RoomsPath       string
	CoordinatesPath string // optional; only used to locate unchecked rooms
}

func (s *FileSource) ClassSchedule() ([]model.ClassOccupancy, []model.Issue, error) {
	f, err := os.Open(s.SchedulePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open class schedule: %w", err)
	}
	defer f.Close()
	return ReadClassSchedule(f)
}

func (s *FileSource) Shifts() ([]model.Shift, []model.Issue, error) {
	f, err := os.Open(s.ShiftsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open student shifts: %w", err)
	}
	defer f.Close()
	return ReadShifts(f)
}

func (s *FileSource) Rooms() ([]*model.Room, []model.Issue, error) {
	f, err := os.Open(s.RoomsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open room metadata: %w", err)
	}
	defer f.Close()
	return ReadRooms(f)
}

func (s *FileSource) Coordinates() (map[string]model.Coordinate, []model.Issue, error) {
	if s.CoordinatesPath == "" {
		return map[string]model.Coordinate{}, nil, nil
	}
	f, err := os.Open(s.CoordinatesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open building coordinates: %w", err)
	}
	defer f.Close()
	return ReadCoordinates(f)
}
