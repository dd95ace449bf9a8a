package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/datasquad/roomcheck/pkg/core/model"
	"github.com/datasquad/roomcheck/pkg/core/services"
	"github.com/datasquad/roomcheck/pkg/tables"
)

const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

// writeResult persists one run's assignment and unchecked-room tables to
// the configured output directory, returning the written paths.
func writeResult(result *services.AssignResult, outputDir, format string) (string, string, error) {
	if format != formatCSV && format != formatXLSX {
		return "", "", fmt.Errorf("unsupported output format %q (use csv or xlsx)", format)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	assignmentsPath := filepath.Join(outputDir, "assignments."+format)
	uncheckedPath := filepath.Join(outputDir, "unchecked_rooms."+format)

	err := writeFile(assignmentsPath, func(w io.Writer) error {
		if format == formatXLSX {
			return tables.WriteAssignmentsXLSX(w, result.Assignments)
		}
		return tables.WriteAssignmentsCSV(w, result.Assignments)
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to write assignments: %w", err)
	}

	err = writeFile(uncheckedPath, func(w io.Writer) error {
		if format == formatXLSX {
			return tables.WriteUncheckedXLSX(w, result.Unchecked)
		}
		return tables.WriteUncheckedCSV(w, result.Unchecked)
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to write unchecked rooms: %w", err)
	}

	return assignmentsPath, uncheckedPath, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printResult renders the run summary to the console.
func printResult(result *services.AssignResult) {
	fmt.Printf("\n✓ Assignment completed!\n\n")
	fmt.Printf("Run ID:      %s\n", result.RunID)
	fmt.Printf("Shifts:      %d\n", result.ShiftCount)
	fmt.Printf("Rooms:       %d\n", result.RoomCount)
	fmt.Printf("Checks:      %d\n", len(result.Assignments))
	fmt.Printf("Unchecked:   %d\n", len(result.Unchecked))

	if len(result.Issues) > 0 {
		fmt.Printf("\n⚠️  %d input rows were dropped:\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Printf("  ✗ %s\n", issue)
		}
	}
	fmt.Println()
}

// printAssignments renders the per-check detail, grouped per shift.
func printAssignments(assignments []model.Assignment) {
	if len(assignments) == 0 {
		fmt.Println("No rooms could be assigned.")
		return
	}

	fmt.Printf("Room checks:\n")
	lastShift := ""
	for _, a := range assignments {
		shiftKey := fmt.Sprintf("%s %s %s w%d", a.Student, a.Day, a.ShiftStart.Format("15:04"), a.Week)
		if shiftKey != lastShift {
			lastShift = shiftKey
			fmt.Printf("\n  %s — %s %s-%s", a.Student, a.Day,
				a.ShiftStart.Format("15:04"), a.ShiftEnd.Format("15:04"))
			if a.Week != model.WeekNone {
				fmt.Printf(" (week %d)", a.Week)
			}
			if a.Date != "" {
				fmt.Printf(" [%s]", a.Date)
			}
			fmt.Printf(" zone %s:\n", a.Zone)
		}
		fmt.Printf("    %s  %s (priority %d)\n", a.CheckAt.Format("15:04"), a.Room, a.Priority)
	}
	fmt.Println()
}
