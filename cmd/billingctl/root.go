package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SscSPs/workshop_billing_app/internal/core/ports/services"
	svc "github.com/SscSPs/workshop_billing_app/internal/core/services"
	"github.com/SscSPs/workshop_billing_app/internal/logger"
	"github.com/SscSPs/workshop_billing_app/internal/platform/config"
	"github.com/SscSPs/workshop_billing_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/workshop_billing_app/pkg/database"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "billingctl",
		Short: "Operator commands for the workshop billing backend",
		Long: `billingctl runs maintenance tasks against the billing database:
schema migrations, the one-time legacy notes backfill and a quick
accounts overview. It reads the same environment as the server.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	// LOG_LEVEL and LOG_FORMAT apply unless the flag is given explicitly.
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		viper.AutomaticEnv()
		if err := viper.BindPFlag("LOG_LEVEL", flags.Lookup("log-level")); err != nil {
			return err
		}
		if err := viper.BindPFlag("LOG_FORMAT", flags.Lookup("log-format")); err != nil {
			return err
		}
		return logger.Setup(logger.LogConfig{
			Level:  viper.GetString("LOG_LEVEL"),
			Format: viper.GetString("LOG_FORMAT"),
		}, cmd.ErrOrStderr())
	}

	root.AddCommand(newMigrateCmd(), newBackfillCmd(), newOverviewCmd())
	return root
}

// withServices loads configuration, opens the database and hands a service
// container to fn. The pool is closed when fn returns.
func withServices(ctx context.Context, fn func(*services.ServiceContainer) error) error {
	log := logger.WithComponent("bootstrap")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer closePool(pool)
	log.Debug().Str("timezone", cfg.BillingLocation.String()).Msg("database connected")

	container := svc.NewServiceContainer(pgsql.NewRepositoryProvider(pool), svc.WithLocation(cfg.BillingLocation))
	return fn(container)
}

func closePool(pool *pgxpool.Pool) {
	pool.Close()
	log := logger.WithComponent("bootstrap")
	log.Debug().Msg("database pool closed")
}
