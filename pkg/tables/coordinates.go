package tables

import (
	"fmt"
	"io"
	"strconv"

	"github.com/datasquad/roomcheck/pkg/core/model"
)

const coordinateSource = "building coordinates"

// ReadCoordinates parses the building latitude/longitude sheet into a
// building -> coordinate map. Coordinates only annotate unchecked rooms
// for follow-up, never feasibility, so bad rows are simply dropped and
// reported.
func ReadCoordinates(r io.Reader) (map[string]model.Coordinate, []model.Issue, error) {
	cr := newReader(r)

	first, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read coordinate header: %w", err)
	}
	h := readHeader(first)

	coords := make(map[string]model.Coordinate)
	var issues []model.Issue

	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read coordinate row: %w", err)
		}
		line++

		building := h.get(rec, "building", "building code")
		if building == "" {
			issues = append(issues, model.Issue{
				Source: coordinateSource, Line: line, Kind: model.IssueMalformedRow,
				Detail: "missing building code",
			})
			continue
		}

		lat, latErr := strconv.ParseFloat(h.get(rec, "lat", "latitude"), 64)
		long, longErr := strconv.ParseFloat(h.get(rec, "long", "lng", "longitude"), 64)
		if latErr != nil || longErr != nil {
			issues = append(issues, model.Issue{
				Source: coordinateSource, Line: line, Kind: model.IssueMalformedRow,
				Detail: fmt.Sprintf("building %q has unparseable coordinates", building),
			})
			continue
		}

		coords[building] = model.Coordinate{Lat: lat, Long: long}
	}

	return coords, issues, nil
}
