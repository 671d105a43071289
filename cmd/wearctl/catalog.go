package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/webike_wear_microservice/internal/app"
	"github.com/sm8ta/webike_wear_microservice/internal/catalog"
	"github.com/sm8ta/webike_wear_microservice/internal/core/services"
	"github.com/spf13/cobra"
)

func newCatalogCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage component types",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create or update component types from a YAML catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			types, err := catalog.Parse(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			store, db, err := app.NewStore(cmd.Context(), e.cfg, e.logger)
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()
			}

			catalogService := services.NewCatalogService(store, e.logger, validator.New())
			created, updated, err := catalogService.ImportComponentTypes(cmd.Context(), types)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d created, %d updated, %d unchanged\n",
				created, updated, len(types)-created-updated)
			return nil
		},
	})

	return cmd
}
