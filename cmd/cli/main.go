package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/datasquad/roomcheck/cmd/cli/commands"
	"github.com/datasquad/roomcheck/internal/config"
	"github.com/datasquad/roomcheck/pkg/tables"
	"github.com/datasquad/roomcheck/pkg/utils/logging"
)

var (
	env     string
	verbose bool
	app     = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roomcheck",
		Short: "Room check scheduler - assign classroom inspections to student shifts",
		Long:  `A CLI tool for assigning classroom technology checks to student-worker shifts, working around the class schedule.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug detail on the console")
	rootCmd.MarkPersistentFlagRequired("env")

	// Commands share the AppContext; initApp fills it in before RunE fires
	rootCmd.AddCommand(commands.AssignCmd(app))
	rootCmd.AddCommand(commands.AssignTwoWeeksCmd(app))
	rootCmd.AddCommand(commands.ListRoomsCmd(app))
	rootCmd.AddCommand(commands.ValidateCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger, configuration, and input source
func initApp() error {
	// Optional .env for local overrides such as ROOMCHECK_CONFIG
	godotenv.Load()

	logger, err := logging.InitLogger(env, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Source = &tables.FileSource{
		SchedulePath:    app.Cfg.ClassSchedulePath,
		ShiftsPath:      app.Cfg.StudentShiftsPath,
		RoomsPath:       app.Cfg.RoomsPath,
		CoordinatesPath: app.Cfg.CoordinatesPath,
	}

	return nil
}
