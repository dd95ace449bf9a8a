package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2000, 1, 3, hour, min, 0, 0, time.UTC)
}

func TestNew_RejectsInvertedInterval(t *testing.T) {
	_, err := New(at(10, 0), at(9, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNew_RejectsEmptyInterval(t *testing.T) {
	_, err := New(at(10, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestOverlaps(t *testing.T) {
	a, err := New(at(9, 0), at(10, 0))
	require.NoError(t, err)

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected bool
	}{
		{"fully before", at(8, 0), at(8, 30), false},
		{"touching start", at(8, 0), at(9, 0), false},
		{"overlapping start", at(8, 30), at(9, 30), true},
		{"contained", at(9, 15), at(9, 45), true},
		{"containing", at(8, 0), at(11, 0), true},
		{"overlapping end", at(9, 30), at(10, 30), true},
		{"touching end", at(10, 0), at(11, 0), false},
		{"fully after", at(10, 30), at(11, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := New(tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, a.Overlaps(b))
			assert.Equal(t, tc.expected, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestContains(t *testing.T) {
	iv, err := New(at(9, 0), at(10, 0))
	require.NoError(t, err)

	assert.True(t, iv.Contains(at(9, 0)), "start is inside a half-open interval")
	assert.True(t, iv.Contains(at(9, 59)))
	assert.False(t, iv.Contains(at(10, 0)), "end is outside a half-open interval")
	assert.False(t, iv.Contains(at(8, 59)))
}

func TestEndFor_WithinShift(t *testing.T) {
	iv, err := EndFor(at(9, 0), 10*time.Minute, at(9, 30))
	require.NoError(t, err)
	assert.Equal(t, at(9, 0), iv.Start)
	assert.Equal(t, at(9, 10), iv.End)
}

func TestEndFor_ExactlyAtShiftEnd(t *testing.T) {
	iv, err := EndFor(at(9, 20), 10*time.Minute, at(9, 30))
	require.NoError(t, err)
	assert.Equal(t, at(9, 30), iv.End)
}

func TestEndFor_ExceedsShiftEnd(t *testing.T) {
	_, err := EndFor(at(9, 25), 10*time.Minute, at(9, 30))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestEndFor_RejectsNonPositiveDuration(t *testing.T) {
	_, err := EndFor(at(9, 0), 0, at(9, 30))
	assert.ErrorIs(t, err, ErrInvalidInterval)
}
