package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datasquad/roomcheck/pkg/core/services"
)

// ValidateCmd creates the validate command, an ingestion dry run that
// surfaces malformed and inconsistent input rows before a real run.
func ValidateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and cross-check all input tables without assigning",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ValidateInputs(app.Source, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Inputs loaded!\n\n")
			fmt.Printf("Class occupancies: %d\n", result.OccupancyCount)
			fmt.Printf("Student shifts:    %d\n", result.ShiftCount)
			fmt.Printf("Rooms:             %d\n", result.RoomCount)
			fmt.Printf("Buildings located: %d\n", result.BuildingCount)

			if len(result.Issues) == 0 {
				fmt.Println("\nNo issues found.")
				return nil
			}

			fmt.Printf("\n⚠️  %d issues:\n", len(result.Issues))
			for _, issue := range result.Issues {
				fmt.Printf("  ✗ %s\n", issue)
			}
			fmt.Println()

			return nil
		},
	}
}
