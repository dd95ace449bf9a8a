package conflict

import (
	"sort"
	"time"

	"github.com/datasquad/roomcheck/pkg/core/interval"
	"github.com/datasquad/roomcheck/pkg/core/model"
)

type key struct {
	room string
	day  model.Weekday
}

// Index answers "is room R occupied at time T for duration D" for a fixed
// set of class occupancies. Build it once per run; lookups are read-only
// and O(log n) per room/day.
type Index struct {
	occupied map[key][]interval.Interval
}

// BuildIndex constructs the occupancy index from class occupancy records.
// Occupancy rows with start >= end never reach the index; the ingestion
// layer drops and reports them first. Intervals within a room/day are
// assumed non-overlapping, as constructed by the source schedule.
func BuildIndex(occupancies []model.ClassOccupancy) *Index {
	idx := &Index{occupied: make(map[key][]interval.Interval)}

	for _, occ := range occupancies {
		iv, err := interval.New(occ.Start, occ.End)
		if err != nil {
			continue
		}
		k := key{room: occ.Room, day: occ.Day}
		idx.occupied[k] = append(idx.occupied[k], iv)
	}

	// Sort each room/day sequence by start time so lookups can binary search
	for k := range idx.occupied {
		ivs := idx.occupied[k]
		sort.Slice(ivs, func(i, j int) bool {
			return ivs[i].Start.Before(ivs[j].Start)
		})
	}

	return idx
}

// IsFree reports whether the proposed check interval [start, start+d)
// overlaps no occupancy for the room on that day.
func (idx *Index) IsFree(room string, day model.Weekday, start time.Time, d time.Duration) bool {
	ivs, ok := idx.occupied[key{room: room, day: day}]
	if !ok || len(ivs) == 0 {
		return true
	}

	end := start.Add(d)

	// First occupancy starting at or after the proposed end. Only the
	// entry before it can overlap, since the sequence is sorted and
	// non-overlapping.
	i := sort.Search(len(ivs), func(i int) bool {
		return !ivs[i].Start.Before(end)
	})
	if i == 0 {
		return true
	}
	return !ivs[i-1].End.After(start)
}

// Occupancies returns the sorted occupancy intervals for a room/day.
// The returned slice must not be mutated.
func (idx *Index) Occupancies(room string, day model.Weekday) []interval.Interval {
	return idx.occupied[key{room: room, day: day}]
}

// Len returns the number of indexed room/day sequences.
func (idx *Index) Len() int {
	return len(idx.occupied)
}
