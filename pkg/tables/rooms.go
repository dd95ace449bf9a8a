package tables

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/datasquad/roomcheck/pkg/core/model"
)

const roomSource = "room metadata"

// fallbackPriority is assigned when the priority cell is empty or
// unparseable, matching the campus convention that unranked rooms sit at
// the bottom of the list.
const fallbackPriority = 5

// buildingCode extracts the leading run of capital letters from a room
// name ("SCI 101" -> "SCI").
var buildingCode = regexp.MustCompile(`^([A-Z]+)`)

// ReadRooms parses the room metadata sheet. Duplicate room names keep the
// first row and flag the rest; rooms without a zone are excluded since the
// assigner cannot place them.
func ReadRooms(r io.Reader) ([]*model.Room, []model.Issue, error) {
	cr := newReader(r)

	first, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read room header: %w", err)
	}
	h := readHeader(first)

	var rooms []*model.Room
	var issues []model.Issue
	seen := make(map[string]bool)

	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read room row: %w", err)
		}
		line++

		name := h.get(rec, "complete 25live room name", "room")
		if name == "" {
			issues = append(issues, model.Issue{
				Source: roomSource, Line: line, Kind: model.IssueMalformedRow,
				Detail: "missing room name",
			})
			continue
		}
		if seen[name] {
			issues = append(issues, model.Issue{
				Source: roomSource, Line: line, Kind: model.IssueMalformedRow,
				Detail: fmt.Sprintf("duplicate room %q", name),
			})
			continue
		}

		zone := h.get(rec, "zone")
		if zone == "" {
			issues = append(issues, model.Issue{
				Source: roomSource, Line: line, Kind: model.IssueMalformedRow,
				Detail: fmt.Sprintf("room %q has no zone", name),
			})
			continue
		}

		priority := fallbackPriority
		if raw := h.get(rec, "priority"); raw != "" {
			if p, err := strconv.Atoi(raw); err == nil && p > 0 {
				priority = p
			}
		}

		building := ""
		if m := buildingCode.FindStringSubmatch(strings.ToUpper(name)); m != nil {
			building = m[1]
		}

		seen[name] = true
		rooms = append(rooms, &model.Room{
			Name:     name,
			Zone:     zone,
			Building: building,
			Type:     h.get(rec, "type", "room type"),
			Priority: priority,
		})
	}

	return rooms, issues, nil
}
