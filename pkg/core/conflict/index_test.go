package conflict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/datasquad/roomcheck/pkg/core/model"
)

func at(hour, min int) time.Time {
	return time.Date(2000, 1, 3, hour, min, 0, 0, time.UTC)
}

func TestIsFree_NoOccupancies(t *testing.T) {
	idx := BuildIndex(nil)
	assert.True(t, idx.IsFree("SCI 101", model.Monday, at(9, 0), 10*time.Minute))
}

func TestIsFree_OtherDayDoesNotConflict(t *testing.T) {
	idx := BuildIndex([]model.ClassOccupancy{
		{Room: "SCI 101", Day: model.Tuesday, Start: at(9, 0), End: at(10, 0)},
	})
	assert.True(t, idx.IsFree("SCI 101", model.Monday, at(9, 0), 10*time.Minute))
}

func TestIsFree_OtherRoomDoesNotConflict(t *testing.T) {
	idx := BuildIndex([]model.ClassOccupancy{
		{Room: "SCI 102", Day: model.Monday, Start: at(9, 0), End: at(10, 0)},
	})
	assert.True(t, idx.IsFree("SCI 101", model.Monday, at(9, 0), 10*time.Minute))
}

func TestIsFree_OverlapDetected(t *testing.T) {
	idx := BuildIndex([]model.ClassOccupancy{
		{Room: "SCI 101", Day: model.Monday, Start: at(9, 0), End: at(10, 0)},
	})

	assert.False(t, idx.IsFree("SCI 101", model.Monday, at(9, 30), 10*time.Minute), "inside the class")
	assert.False(t, idx.IsFree("SCI 101", model.Monday, at(8, 55), 10*time.Minute), "overlapping the start")
	assert.False(t, idx.IsFree("SCI 101", model.Monday, at(9, 55), 10*time.Minute), "overlapping the end")
}

func TestIsFree_TouchingEndpointsAreFree(t *testing.T) {
	idx := BuildIndex([]model.ClassOccupancy{
		{Room: "SCI 101", Day: model.Monday, Start: at(9, 0), End: at(10, 0)},
	})

	assert.True(t, idx.IsFree("SCI 101", model.Monday, at(8, 50), 10*time.Minute), "check ending when class starts")
	assert.True(t, idx.IsFree("SCI 101", model.Monday, at(10, 0), 10*time.Minute), "check starting when class ends")
}

func TestIsFree_FindsGapBetweenClasses(t *testing.T) {
	idx := BuildIndex([]model.ClassOccupancy{
		{Room: "SCI 101", Day: model.Monday, Start: at(9, 0), End: at(10, 0)},
		{Room: "SCI 101", Day: model.Monday, Start: at(10, 15), End: at(11, 0)},
		{Room: "SCI 101", Day: model.Monday, Start: at(13, 0), End: at(14, 0)},
	})

	assert.True(t, idx.IsFree("SCI 101", model.Monday, at(10, 0), 10*time.Minute))
	assert.False(t, idx.IsFree("SCI 101", model.Monday, at(10, 10), 10*time.Minute))
	assert.True(t, idx.IsFree("SCI 101", model.Monday, at(11, 0), 10*time.Minute))
}

func TestBuildIndex_SortsUnorderedInput(t *testing.T) {
	idx := BuildIndex([]model.ClassOccupancy{
		{Room: "SCI 101", Day: model.Monday, Start: at(13, 0), End: at(14, 0)},
		{Room: "SCI 101", Day: model.Monday, Start: at(9, 0), End: at(10, 0)},
	})

	ivs := idx.Occupancies("SCI 101", model.Monday)
	assert.Len(t, ivs, 2)
	assert.Equal(t, at(9, 0), ivs[0].Start)
	assert.Equal(t, at(13, 0), ivs[1].Start)
}

func TestBuildIndex_DropsInvertedOccupancies(t *testing.T) {
	idx := BuildIndex([]model.ClassOccupancy{
		{Room: "SCI 101", Day: model.Monday, Start: at(10, 0), End: at(9, 0)},
	})

	assert.Empty(t, idx.Occupancies("SCI 101", model.Monday))
	assert.True(t, idx.IsFree("SCI 101", model.Monday, at(9, 30), 10*time.Minute))
}
