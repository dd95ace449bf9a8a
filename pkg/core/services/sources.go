package services

import (
	"github.com/datasquad/roomcheck/pkg/core/model"
)

// DataSource defines the tabular collaborators the assignment services
// consume. Parsing lives behind this interface; the services only see
// normalized records plus the issues the readers reported.
type DataSource interface {
	ClassSchedule() ([]model.ClassOccupancy, []model.Issue, error)
	Shifts() ([]model.Shift, []model.Issue, error)
	Rooms() ([]*model.Room, []model.Issue, error)
	Coordinates() (map[string]model.Coordinate, []model.Issue, error)
}
