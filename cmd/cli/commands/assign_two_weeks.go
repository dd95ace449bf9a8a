package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datasquad/roomcheck/pkg/core/services"
)

// AssignTwoWeeksCmd creates the assignTwoWeeks command, which splits each
// shift's room list across its week-1 and week-2 occurrences at the
// reduced per-room duration.
func AssignTwoWeeksCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignTwoWeeks",
		Short: "Assign room checks across a two-week window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			format, _ := cmd.Flags().GetString("format")

			result, err := services.AssignTwoWeeks(app.Source, app.Cfg, app.Logger)
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
