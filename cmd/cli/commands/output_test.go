package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datasquad/roomcheck/pkg/core/model"
	"github.com/datasquad/roomcheck/pkg/core/services"
)

func sampleResult() *services.AssignResult {
	start := time.Date(2000, 1, 3, 9, 0, 0, 0, time.UTC)
	return &services.AssignResult{
		RunID: "test-run",
		Assignments: []model.Assignment{
			{
				ID:         "a1",
				Student:    "Avery",
				Day:        model.Monday,
				ShiftStart: start,
				ShiftEnd:   start.Add(30 * time.Minute),
				Room:       "SCI 101",
				Building:   "SCI",
				Zone:       "North",
				Priority:   1,
				RoomType:   "Classroom",
				CheckAt:    start,
			},
		},
		Unchecked: []model.UncheckedRoom{
			{Room: "ART 210", Building: "ART", Zone: "South", Priority: 3, RoomType: "Studio"},
		},
		ShiftCount: 1,
		RoomCount:  2,
	}
}

func TestWriteResult_CSV(t *testing.T) {
	dir := t.TempDir()

	assignmentsPath, uncheckedPath, err := writeResult(sampleResult(), dir, formatCSV)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "assignments.csv"), assignmentsPath)
	assert.Equal(t, filepath.Join(dir, "unchecked_rooms.csv"), uncheckedPath)

	data, err := os.ReadFile(assignmentsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SCI 101")

	data, err = os.ReadFile(uncheckedPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ART 210")
}

func TestWriteResult_XLSX(t *testing.T) {
	dir := t.TempDir()

	assignmentsPath, _, err := writeResult(sampleResult(), dir, formatXLSX)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(assignmentsPath, ".xlsx"))

	data, err := os.ReadFile(assignmentsPath)
	require.NoError(t, err)
	// XLSX files are zip archives
	require.GreaterOrEqual(t, len(data), 2)
	assert.Equal(t, "PK", string(data[:2]))
}

func TestWriteResult_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	_, _, err := writeResult(sampleResult(), dir, formatCSV)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestWriteResult_RejectsUnknownFormat(t *testing.T) {
	_, _, err := writeResult(sampleResult(), t.TempDir(), "pdf")
	assert.ErrorContains(t, err, "unsupported output format")
}
