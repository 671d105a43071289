package main

import (
	"database/sql"
	"fmt"

	"github.com/sm8ta/webike_wear_microservice/internal/adapter/postgres"
	"github.com/spf13/cobra"
)

type migrateFunc func(cmd *cobra.Command, db *sql.DB, dir string) error

// withDB opens the database for the running subcommand and falls back to
// DB_MIGRATIONS_DIR when --dir is empty.
func withDB(e *env, dir *string, fn migrateFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		db, err := e.openDB(cmd.Context(), e.cfg.DB)
		if err != nil {
			return err
		}
		defer db.Close()

		migrationsDir := *dir
		if migrationsDir == "" {
			migrationsDir = e.cfg.DB.MigrationsDir
		}
		return fn(cmd, db, migrationsDir)
	}
}

func newMigrateCmd(e *env) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the Postgres schema",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "migrations directory (default: DB_MIGRATIONS_DIR)")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: withDB(e, &dir, func(cmd *cobra.Command, db *sql.DB, dir string) error {
			if err := postgres.Migrate(db, dir); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		Args:  cobra.NoArgs,
		RunE: withDB(e, &dir, func(_ *cobra.Command, db *sql.DB, dir string) error {
			return postgres.Rollback(db, dir)
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print migration status",
		Args:  cobra.NoArgs,
		RunE: withDB(e, &dir, func(_ *cobra.Command, db *sql.DB, dir string) error {
			return postgres.MigrationStatus(db, dir)
		}),
	})

	return cmd
}
