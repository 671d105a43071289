package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

func bikeCacheKey(bikeID uuid.UUID) string {
	return fmt.Sprintf("bike:%s", bikeID.String())
}

func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s ID %q: %w", kind, raw, domain.ErrInvalidInput)
	}
	return id, nil
}

func validateStruct(validate *validator.Validate, v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("validation error: %w: %w", domain.ErrInvalidInput, err)
	}
	return nil
}

func invalidateBike(cache ports.CachePort, logger ports.LoggerPort, bikeID uuid.UUID) {
	if err := cache.Delete(bikeCacheKey(bikeID)); err != nil {
		logger.Warn("Failed to invalidate bike cache", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID.String(),
		})
	}
}
