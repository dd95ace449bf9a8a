package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListRoomsCmd creates the listRooms command
func ListRoomsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRooms",
		Short: "List all rooms from the room metadata table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, issues, err := app.Source.Rooms()
			if err != nil {
				return fmt.Errorf("failed to list rooms: %w", err)
			}

			app.Logger.Info("Rooms loaded",
				zap.Int("count", len(rooms)),
				zap.Int("issues", len(issues)))

			fmt.Printf("\nFound %d rooms:\n\n", len(rooms))
			for _, r := range rooms {
				fmt.Printf("- %s [%s] zone %s, priority %d (%s)\n",
					r.Name, r.Building, r.Zone, r.Priority, r.Type)
			}

			if len(issues) > 0 {
				fmt.Printf("\n⚠️  %d rows were dropped or flagged:\n", len(issues))
				for _, issue := range issues {
					fmt.Printf("  ✗ %s\n", issue)
				}
			}
			fmt.Println()

			return nil
		},
	}
}
