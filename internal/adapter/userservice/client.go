package userservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
	user_client "github.com/sm8ta/webike_user_microservice_nikita/pkg/client"
	"github.com/sm8ta/webike_user_microservice_nikita/pkg/client/users"
)

// Client looks bike owners up in the user microservice.
type Client struct {
	api    *user_client.UserMicroservice
	logger ports.LoggerPort
}

var _ ports.UserDirectory = (*Client)(nil)

func NewClient(address string, logger ports.LoggerPort) *Client {
	host, scheme := address, "http"
	if strings.HasPrefix(address, "https://") {
		host, scheme = strings.TrimPrefix(address, "https://"), "https"
	} else {
		host = strings.TrimPrefix(address, "http://")
	}

	transport := httptransport.New(host, "", []string{scheme})
	return &Client{
		api:    user_client.New(transport, strfmt.Default),
		logger: logger,
	}
}

func (c *Client) GetUser(ctx context.Context, userID uuid.UUID, bearerToken string) (*domain.Owner, error) {
	params := users.NewGetUsersIDParams()
	params.ID = userID.String()
	params.Context = ctx

	var authInfo runtime.ClientAuthInfoWriter
	if bearerToken != "" {
		authInfo = httptransport.BearerToken(bearerToken)
	}

	resp, err := c.api.Users.GetUsersID(params, authInfo)
	if err != nil {
		c.logger.Warn("Failed to get user from user-service", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID.String(),
		})
		return nil, fmt.Errorf("user service: %w: %w", domain.ErrDependencyFailure, err)
	}
	if resp == nil || resp.Payload == nil {
		return nil, fmt.Errorf("user %s not found: %w", userID, domain.ErrNotFound)
	}

	return &domain.Owner{
		ID:          resp.Payload.ID,
		Name:        resp.Payload.Name,
		Email:       resp.Payload.Email,
		DateOfBirth: resp.Payload.DateOfBirth,
		Role:        resp.Payload.Role,
		CreatedAt:   resp.Payload.CreatedAt,
		UpdatedAt:   resp.Payload.UpdatedAt,
	}, nil
}
