package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type TokenService interface {
	VerifyToken(token string) (*domain.TokenPayload, error)
	CreateToken(userID uuid.UUID, role domain.UserRole, duration time.Duration) (string, error)
}

// UserDirectory resolves bike owners against the user service.
type UserDirectory interface {
	GetUser(ctx context.Context, userID uuid.UUID, bearerToken string) (*domain.Owner, error)
}
