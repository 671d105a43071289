package main

import (
	"context"
	"database/sql"
	"testing"

	"github.com/sm8ta/webike_wear_microservice/internal/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDBPassesRunningCommand(t *testing.T) {
	tests := []struct {
		name    string
		dirFlag string
		wantDir string
	}{
		{name: "default directory", dirFlag: "", wantDir: "./migrations"},
		{name: "flag overrides", dirFlag: "/tmp/other", wantDir: "/tmp/other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &env{
				cfg: &config.Container{DB: &config.DB{MigrationsDir: "./migrations"}},
				openDB: func(ctx context.Context, cfg *config.DB) (*sql.DB, error) {
					// lib/pq connects lazily, so no server is needed.
					return sql.Open("postgres", "host=localhost dbname=wear sslmode=disable")
				},
			}
			dir := tt.dirFlag

			var (
				gotCmd *cobra.Command
				gotDir string
			)
			sub := &cobra.Command{Use: "up"}
			sub.RunE = withDB(e, &dir, func(cmd *cobra.Command, db *sql.DB, dir string) error {
				gotCmd = cmd
				gotDir = dir
				return nil
			})

			require.NoError(t, sub.RunE(sub, nil))
			assert.Same(t, sub, gotCmd)
			assert.Equal(t, tt.wantDir, gotDir)
			assert.Equal(t, tt.dirFlag, dir)
		})
	}
}
