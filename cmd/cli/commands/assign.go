package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datasquad/roomcheck/pkg/core/services"
)

// AssignCmd creates the assign command, which runs the one-week
// assignment and writes the assignment and unchecked-room tables.
func AssignCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign room checks to student shifts for a single week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			format, _ := cmd.Flags().GetString("format")

			result, err := services.AssignRooms(app.Source, app.Cfg, app.Logger)
			if err != nil {
				return err
			}

			printResult(result)
			printAssignments(result.Assignments)

			if dryRun {
				fmt.Println("Dry run: no files written.")
				return nil
			}

			assignmentsPath, uncheckedPath, err := writeResult(result, app.Cfg.OutputDir, format)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", assignmentsPath)
			fmt.Printf("Wrote %s\n", uncheckedPath)

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Print the result without writing output files")
	cmd.Flags().String("format", formatCSV, "Output file format (csv or xlsx)")

	return cmd
}
