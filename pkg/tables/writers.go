package tables

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/datasquad/roomcheck/pkg/core/model"
)

// AssignmentHeader is the column layout of the assignment output table.
var AssignmentHeader = []string{
	"Student", "Day", "Date", "Shift Start", "Shift End",
	"Room", "Building", "Zone", "Priority", "Room Type", "Check Time", "Week",
}

// UncheckedHeader is the column layout of the unchecked-rooms output table.
var UncheckedHeader = []string{
	"Room", "Building", "Zone", "Priority", "Room Type", "Lat", "Long",
}

func assignmentRecord(a model.Assignment) []string {
	week := ""
	if a.Week != model.WeekNone {
		week = strconv.Itoa(int(a.Week))
	}
	return []string{
		a.Student,
		string(a.Day),
		a.Date,
		a.ShiftStart.Format("15:04"),
		a.ShiftEnd.Format("15:04"),
		a.Room,
		a.Building,
		a.Zone,
		strconv.Itoa(a.Priority),
		a.RoomType,
		a.CheckAt.Format("15:04"),
		week,
	}
}

func uncheckedRecord(u model.UncheckedRoom) []string {
	lat, long := "", ""
	if u.Location != nil {
		lat = strconv.FormatFloat(u.Location.Lat, 'f', -1, 64)
		long = strconv.FormatFloat(u.Location.Long, 'f', -1, 64)
	}
	return []string{
		u.Room,
		u.Building,
		u.Zone,
		strconv.Itoa(u.Priority),
		u.RoomType,
		lat,
		long,
	}
}

// WriteAssignmentsCSV writes the assignment table in the order given; the
// caller owns sorting.
func WriteAssignmentsCSV(w io.Writer, rows []model.Assignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(AssignmentHeader); err != nil {
		return fmt.Errorf("failed to write assignment header: %w", err)
	}
	for _, a := range rows {
		if err := cw.Write(assignmentRecord(a)); err != nil {
			return fmt.Errorf("failed to write assignment row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush assignments: %w", err)
	}
	return nil
}

// WriteUncheckedCSV writes the unchecked-rooms table in the order given.
func WriteUncheckedCSV(w io.Writer, rows []model.UncheckedRoom) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(UncheckedHeader); err != nil {
		return fmt.Errorf("failed to write unchecked header: %w", err)
	}
	for _, u := range rows {
		if err := cw.Write(uncheckedRecord(u)); err != nil {
			return fmt.Errorf("failed to write unchecked row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush unchecked rooms: %w", err)
	}
	return nil
}
