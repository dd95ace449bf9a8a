package tables

import (
	"fmt"
	"io"

	"github.com/datasquad/roomcheck/pkg/core/model"
)

// shiftDays normalizes the student-worker sheet day abbreviations.
var shiftDays = map[string]model.Weekday{
	"M":  model.Monday,
	"Tu": model.Tuesday,
	"W":  model.Wednesday,
	"Th": model.Thursday,
	"F":  model.Friday,
}

const shiftSource = "student shifts"

// ReadShifts parses the student worker shift sheet. Rows with an unknown
// day, unparseable times, or start >= end (which covers cross-midnight
// shifts, out of scope) are dropped and reported as issues.
func ReadShifts(r io.Reader) ([]model.Shift, []model.Issue, error) {
	cr := newReader(r)

	first, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read shift header: %w", err)
	}
	h := readHeader(first)

	var shifts []model.Shift
	var issues []model.Issue

	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read shift row: %w", err)
		}
		line++

		student := h.get(rec, "person", "student", "name")
		if student == "" {
			issues = append(issues, model.Issue{
				Source: shiftSource, Line: line, Kind: model.IssueMalformedRow,
				Detail: "missing student name",
			})
			continue
		}

		dayRaw := h.get(rec, "day")
		day, ok := shiftDays[dayRaw]
		if !ok {
			issues = append(issues, model.Issue{
				Source: shiftSource, Line: line, Kind: model.IssueMalformedRow,
				Detail: fmt.Sprintf("unknown day %q for %s", dayRaw, student),
			})
			continue
		}

		start, err := parseClock(h.get(rec, "start"))
		if err != nil {
			issues = append(issues, model.Issue{
				Source: shiftSource, Line: line, Kind: model.IssueMalformedRow,
				Detail: fmt.Sprintf("shift for %s: %v", student, err),
			})
			continue
		}
		end, err := parseClock(h.get(rec, "end"))
		if err != nil {
			issues = append(issues, model.Issue{
				Source: shiftSource, Line: line, Kind: model.IssueMalformedRow,
				Detail: fmt.Sprintf("shift for %s: %v", student, err),
			})
			continue
		}
		if !start.Before(end) {
			issues = append(issues, model.Issue{
				Source: shiftSource, Line: line, Kind: model.IssueInvalidInterval,
				Detail: fmt.Sprintf("shift for %s starts %s, ends %s",
					student, start.Format("15:04"), end.Format("15:04")),
			})
			continue
		}

		shifts = append(shifts, model.Shift{
			Student: student,
			Day:     day,
			Start:   start,
			End:     end,
		})
	}

	return shifts, issues, nil
}
