package interval

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval is returned for intervals where start >= end, or for
// check intervals that would run past their owning shift.
var ErrInvalidInterval = errors.New("invalid interval")

// Interval is a half-open time interval [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// New builds an interval, rejecting empty or inverted ranges.
func New(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, fmt.Errorf("%w: start %s is not before end %s",
			ErrInvalidInterval, start.Format("15:04"), end.Format("15:04"))
	}
	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching endpoints do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Contains reports whether t falls inside the interval.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Duration returns the length of the interval.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// EndFor builds the check interval starting at start with duration d,
// bounded by limit (the owning shift's end). Returns ErrInvalidInterval
// when the interval would run past the limit.
func EndFor(start time.Time, d time.Duration, limit time.Time) (Interval, error) {
	if d <= 0 {
		return Interval{}, fmt.Errorf("%w: non-positive duration %s", ErrInvalidInterval, d)
	}
	end := start.Add(d)
	if end.After(limit) {
		return Interval{}, fmt.Errorf("%w: check ending %s exceeds shift end %s",
			ErrInvalidInterval, end.Format("15:04"), limit.Format("15:04"))
	}
	return Interval{Start: start, End: end}, nil
}
