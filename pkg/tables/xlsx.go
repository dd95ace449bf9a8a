package tables

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/datasquad/roomcheck/pkg/core/model"
)

// WriteAssignmentsXLSX writes the assignment table as a styled spreadsheet
// for the facilities staff who consume the schedule outside the terminal.
func WriteAssignmentsXLSX(w io.Writer, rows []model.Assignment) error {
	records := make([][]string, len(rows))
	for i, a := range rows {
		records[i] = assignmentRecord(a)
	}
	return writeSheet(w, "Assignments", AssignmentHeader, records)
}

// WriteUncheckedXLSX writes the unchecked-rooms table as a spreadsheet.
func WriteUncheckedXLSX(w io.Writer, rows []model.UncheckedRoom) error {
	records := make([][]string, len(rows))
	for i, u := range rows {
		records[i] = uncheckedRecord(u)
	}
	return writeSheet(w, "Unchecked Rooms", UncheckedHeader, records)
}

func writeSheet(w io.Writer, sheetName string, headers []string, records [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, name := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to locate header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("failed to write header cell: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to style header cell: %w", err)
		}
	}

	for rowIdx, record := range records {
		for col, value := range record {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to locate cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
