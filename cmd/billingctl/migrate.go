package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/workshop_billing_app/internal/logger"
	"github.com/SscSPs/workshop_billing_app/internal/platform/config"
	"github.com/SscSPs/workshop_billing_app/pkg/database"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back schema migrations",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMigrate(cmd, database.Up, 0)
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Example: `  # Roll back the latest migration
  billingctl migrate down --steps 1

  # Roll back everything
  billingctl migrate down --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, _ := cmd.Flags().GetInt("steps")
			all, _ := cmd.Flags().GetBool("all")
			if steps < 0 {
				return fmt.Errorf("steps must be positive")
			}
			if steps == 0 && !all {
				return fmt.Errorf("pass --steps N or --all")
			}
			if all {
				steps = 0
			}
			return runMigrate(cmd, database.Down, steps)
		},
	}
	down.Flags().Int("steps", 0, "number of migrations to roll back")
	down.Flags().Bool("all", false, "roll back every migration")

	cmd.AddCommand(up, down)
	return cmd
}

func runMigrate(cmd *cobra.Command, direction database.Direction, steps int) error {
	log := logger.WithComponent("migrate")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log.Info().
		Str("direction", string(direction)).
		Int("steps", steps).
		Str("path", cfg.MigrationsPath).
		Msg("running migrations")

	result, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, direction, steps)
	if err != nil {
		log.Error().Err(err).Msg("migration failed")
		return err
	}

	log.Info().
		Uint("version", result.Version).
		Bool("dirty", result.Dirty).
		Bool("no_change", result.NoChange).
		Msg("migrations finished")
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty=%t)\n", result.Version, result.Dirty)
	return nil
}
