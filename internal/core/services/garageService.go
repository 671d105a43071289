package services

import (
	"context"

	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type GarageService struct {
	store  ports.Store
	logger ports.LoggerPort
}

var _ ports.GarageService = (*GarageService)(nil)

func NewGarageService(store ports.Store, logger ports.LoggerPort) *GarageService {
	return &GarageService{store: store, logger: logger}
}

// GetGarageCondition aggregates wear over the active components of every
// bike the user owns.
func (s *GarageService) GetGarageCondition(ctx context.Context, userID string) (*domain.GarageCondition, error) {
	userUUID, err := parseID("user", userID)
	if err != nil {
		return nil, err
	}

	components, err := s.store.Repositories().Components.GetActiveComponentsByUserID(ctx, userUUID)
	if err != nil {
		s.logger.Error("Failed to load garage components", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}

	condition := domain.AggregateGarage(components)

	s.logger.Debug("Garage condition computed", map[string]interface{}{
		"user_id":    userID,
		"components": condition.Components,
		"condition":  condition.Condition,
	})
	return &condition, nil
}
