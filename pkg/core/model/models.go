package model

import "time"

// Weekday is a campus working day. Cross-midnight and weekend shifts are
// out of scope, so Saturday and Sunday are deliberately absent.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

var weekdayOrder = map[Weekday]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
}

func (d Weekday) IsValid() bool {
	_, ok := weekdayOrder[d]
	return ok
}

// Index returns the position of the day within the working week,
// used for deterministic shift ordering.
func (d Weekday) Index() int {
	idx, ok := weekdayOrder[d]
	if !ok {
		return len(weekdayOrder)
	}
	return idx
}

// Week tags an assignment with the week of a two-week run.
// WeekNone is used for single-week runs.
type Week int

const (
	WeekNone Week = 0
	Week1    Week = 1
	Week2    Week = 2
)

// Room is a classroom eligible for checking.
type Room struct {
	// Name is the canonical room identifier, unique per run
	Name string

	// Zone is the campus-area category; exactly one per room
	Zone string

	// Building is the building code extracted from the room name
	Building string

	// Type describes the room (classroom, lab, ...)
	Type string

	// Priority ranks rooms for checking, 1 = must-check-first
	Priority int
}

// ClassOccupancy is one scheduled class block occupying a room.
type ClassOccupancy struct {
	Room  string
	Day   Weekday
	Start time.Time
	End   time.Time
}

// Shift is a student worker's scheduled work interval on a given day.
type Shift struct {
	Student string
	Day     Weekday
	Start   time.Time
	End     time.Time
}

// Duration returns the total length of the shift.
func (s Shift) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Coordinate is a building location attached to unchecked rooms for
// follow-up. It never affects feasibility.
type Coordinate struct {
	Lat  float64
	Long float64
}

// Assignment is one scheduled room check, ready for output.
type Assignment struct {
	ID         string
	Student    string
	Day        Weekday
	Date       string // calendar date of the shift occurrence, empty if no term start configured
	ShiftStart time.Time
	ShiftEnd   time.Time
	Room       string
	Building   string
	Zone       string
	Priority   int
	RoomType   string
	CheckAt    time.Time
	Week       Week
}

// UncheckedRoom is a room no shift could cover this run.
type UncheckedRoom struct {
	Room     string
	Building string
	Zone     string
	Priority int
	RoomType string
	Location *Coordinate // nil when no coordinates are known for the building
}
