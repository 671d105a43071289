package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/adapter/handler/http"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/spf13/cobra"
)

func newTokenCmd(e *env) *cobra.Command {
	var (
		userID string
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.cfg.Token.Secret == "" {
				return errors.New("TOKEN_SECRET is not set")
			}

			id := uuid.New()
			if userID != "" {
				parsed, err := uuid.Parse(userID)
				if err != nil {
					return fmt.Errorf("invalid --user-id: %w", err)
				}
				id = parsed
			}

			r := domain.UserRole(role)
			if r != domain.Admin && r != domain.AppUser {
				return fmt.Errorf("invalid --role %q: want %s or %s", role, domain.AppUser, domain.Admin)
			}
			if ttl <= 0 {
				ttl = e.cfg.Token.TokenDuration()
			}

			token, err := http.NewJWTTokenService(e.cfg.Token.Secret, e.logger).CreateToken(id, r, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "subject user ID (default: random)")
	cmd.Flags().StringVar(&role, "role", string(domain.AppUser), "appuser or admin")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: TOKEN_DURATION)")
	return cmd
}
