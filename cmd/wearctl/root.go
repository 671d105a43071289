package main

import (
	"context"
	"database/sql"

	"github.com/sm8ta/webike_wear_microservice/internal/adapter/logger"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/postgres"
	"github.com/sm8ta/webike_wear_microservice/internal/config"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
	"github.com/spf13/cobra"
)

// env is shared by every subcommand once the root has loaded configuration.
type env struct {
	cfg    *config.Container
	logger ports.LoggerPort
	openDB func(ctx context.Context, cfg *config.DB) (*sql.DB, error)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&env{openDB: postgres.Open})
}

func newRootCmdWith(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "wearctl",
		Short:         "Operate the webike wear service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = logger.NewLoggerAdapter(cfg.App.Env)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}

	root.AddCommand(newMigrateCmd(e))
	root.AddCommand(newCatalogCmd(e))
	root.AddCommand(newTokenCmd(e))
	root.AddCommand(newGarageCmd(e))
	return root
}
