package tables

import (
	"fmt"
	"io"
	"strings"

	"github.com/datasquad/roomcheck/pkg/core/model"
)

// scheduleDays normalizes the 25Live day abbreviations.
var scheduleDays = map[string]model.Weekday{
	"Mon":  model.Monday,
	"Tue":  model.Tuesday,
	"Weds": model.Wednesday,
	"Thu":  model.Thursday,
	"Fri":  model.Friday,
}

const scheduleSource = "class schedule"

// ReadClassSchedule parses the class schedule export. Only Confirmed rows
// count; a row listing several rooms is exploded into one occupancy per
// room. Rows with unknown days, unparseable times, or start >= end are
// dropped and reported as issues, never fatally.
func ReadClassSchedule(r io.Reader) ([]model.ClassOccupancy, []model.Issue, error) {
	cr := newReader(r)

	first, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read class schedule header: %w", err)
	}
	h := readHeader(first)

	var occupancies []model.ClassOccupancy
	var issues []model.Issue

	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read class schedule row: %w", err)
		}
		line++

		if !strings.EqualFold(h.get(rec, "status"), "Confirmed") {
			continue
		}

		dayRaw := h.get(rec, "day of week of first session", "day")
		day, ok := scheduleDays[dayRaw]
		if !ok {
			issues = append(issues, model.Issue{
				Source: scheduleSource, Line: line, Kind: model.IssueMalformedRow,
				Detail: fmt.Sprintf("unknown day %q", dayRaw),
			})
			continue
		}

		start, err := parseClock(h.get(rec, "initial start time", "start time", "start"))
		if err != nil {
			issues = append(issues, model.Issue{
				Source: scheduleSource, Line: line, Kind: model.IssueMalformedRow,
				Detail: err.Error(),
			})
			continue
		}
		end, err := parseClock(h.get(rec, "initial end time", "end time", "end"))
		if err != nil {
			issues = append(issues, model.Issue{
				Source: scheduleSource, Line: line, Kind: model.IssueMalformedRow,
				Detail: err.Error(),
			})
			continue
		}
		if !start.Before(end) {
			issues = append(issues, model.Issue{
				Source: scheduleSource, Line: line, Kind: model.IssueInvalidInterval,
				Detail: fmt.Sprintf("occupancy start %s is not before end %s",
					start.Format("15:04"), end.Format("15:04")),
			})
			continue
		}

		// A class may occupy several rooms at once ("SCI 101, SCI 102")
		for _, roomName := range strings.Split(h.get(rec, "locations", "room"), ",") {
			roomName = strings.TrimSpace(roomName)
			if roomName == "" {
				continue
			}
			occupancies = append(occupancies, model.ClassOccupancy{
				Room:  roomName,
				Day:   day,
				Start: start,
				End:   end,
			})
		}
	}

	return occupancies, issues, nil
}
