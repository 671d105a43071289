package main

import (
	"encoding/json"
	"fmt"

	"github.com/sm8ta/webike_wear_microservice/internal/app"
	"github.com/sm8ta/webike_wear_microservice/internal/core/services"
	"github.com/spf13/cobra"
)

func newGarageCmd(e *env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "garage <user-id>",
		Short: "Print the wear condition of a user's garage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, db, err := app.NewStore(cmd.Context(), e.cfg, e.logger)
			if err != nil {
				return err
			}
			if db != nil {
				defer db.Close()
			}

			condition, err := services.NewGarageService(store, e.logger).GetGarageCondition(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(condition)
			}

			fmt.Fprintf(out, "condition:  %.1f%%\n", condition.Condition)
			fmt.Fprintf(out, "components: %d\n", condition.Components)
			fmt.Fprintf(out, "critical:   %d\n", condition.Counts.Critical)
			fmt.Fprintf(out, "warning:    %d\n", condition.Counts.Warning)
			fmt.Fprintf(out, "good:       %d\n", condition.Counts.Good)
			fmt.Fprintf(out, "excellent:  %d\n", condition.Counts.Excellent)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
