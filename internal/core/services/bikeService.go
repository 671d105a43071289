package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

const defaultBikeCacheTTL = 15 * time.Minute

type BikeService struct {
	store    ports.Store
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
	cacheTTL time.Duration
}

var _ ports.BikeService = (*BikeService)(nil)

func NewBikeService(
	store ports.Store,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
	cacheTTL time.Duration,
) *BikeService {
	if cacheTTL <= 0 {
		cacheTTL = defaultBikeCacheTTL
	}
	return &BikeService{
		store:    store,
		logger:   logger,
		validate: validate,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (s *BikeService) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	if err := validateStruct(s.validate, bike); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	if bike.BikeID == uuid.Nil {
		bike.BikeID = uuid.New()
	}

	createdBike, err := s.store.Repositories().Bikes.CreateBike(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to create bike", map[string]interface{}{
			"error":   err.Error(),
			"user_id": bike.UserID,
		})
		return nil, err
	}

	s.logger.Info("Bike created successfully", map[string]interface{}{
		"bike_id": createdBike.BikeID,
		"user_id": createdBike.UserID,
	})

	return createdBike, nil
}

// GetBikeByID reads through the bike cache.
func (s *BikeService) GetBikeByID(ctx context.Context, bikeID string) (*domain.Bike, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"bike_id": bikeID,
			"error":   err.Error(),
		})
		return nil, err
	}

	cacheKey := bikeCacheKey(bikeUUID)
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cachedBike domain.Bike
		if err := json.Unmarshal(cachedData, &cachedBike); err == nil {
			s.logger.Debug("Bike found in cache", map[string]interface{}{
				"bike_id": bikeID,
			})
			return &cachedBike, nil
		}
	}

	bike, err := s.store.Repositories().Bikes.GetBikeByID(ctx, bikeUUID)
	if err != nil {
		s.logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	bikeData, err := json.Marshal(bike)
	if err != nil {
		s.logger.Warn("Failed to marshal bike for cache", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
	} else if err := s.cache.Set(cacheKey, bikeData, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
	}

	return bike, nil
}

func (s *BikeService) GetBikesByUserID(ctx context.Context, userID string) ([]*domain.Bike, error) {
	userUUID, err := parseID("user", userID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	bikes, err := s.store.Repositories().Bikes.GetBikesByUserID(ctx, userUUID)
	if err != nil {
		s.logger.Error("Failed to get bikes", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}

	s.logger.Info("Retrieved bikes for user", map[string]interface{}{
		"user_id":     userID,
		"bikes_count": len(bikes),
	})

	return bikes, nil
}

// UpdateBike changes descriptive fields only. Total distance goes through
// RecordDistance so that component wear follows it.
func (s *BikeService) UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	if err := validateStruct(s.validate, bike); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	updatedBike, err := s.store.Repositories().Bikes.UpdateBike(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to update bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bike.BikeID,
		})
		return nil, err
	}

	invalidateBike(s.cache, s.logger, bike.BikeID)

	s.logger.Info("Bike updated successfully", map[string]interface{}{
		"bike_id": bike.BikeID,
	})

	return updatedBike, nil
}

func (s *BikeService) DeleteBike(ctx context.Context, bikeID string) error {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"bike_id": bikeID,
			"error":   err.Error(),
		})
		return err
	}

	if err := s.store.Repositories().Bikes.DeleteBike(ctx, bikeUUID); err != nil {
		s.logger.Error("Failed to delete bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return err
	}

	invalidateBike(s.cache, s.logger, bikeUUID)

	s.logger.Info("Bike deleted successfully", map[string]interface{}{
		"bike_id": bikeID,
	})

	return nil
}

func (s *BikeService) GetBikeWithComponents(ctx context.Context, bikeID string) (*domain.Bike, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"bike_id": bikeID,
			"error":   err.Error(),
		})
		return nil, err
	}

	repos := s.store.Repositories()
	bike, err := repos.Bikes.GetBikeByID(ctx, bikeUUID)
	if err != nil {
		s.logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	components, err := repos.Components.GetActiveComponentsByBikeID(ctx, bikeUUID)
	if err != nil {
		s.logger.Error("Failed to get components", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}
	if components == nil {
		components = []*domain.BikeComponent{}
	}
	bike.Components = components

	s.logger.Info("Retrieved bike with components", map[string]interface{}{
		"bike_id":          bikeID,
		"components_count": len(components),
	})

	return bike, nil
}

// RecordDistance stores a new odometer reading for the bike and adds the
// difference to every active component. A lower reading than before takes
// distance off the components, never below zero.
func (s *BikeService) RecordDistance(ctx context.Context, bikeID string, total float64) (*domain.Bike, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		return nil, err
	}
	if total < 0 {
		return nil, fmt.Errorf("total distance must not be negative: %w", domain.ErrInvalidInput)
	}

	var (
		updated  *domain.Bike
		delta    float64
		affected int64
	)
	err = s.store.WithinTx(ctx, func(repos ports.Repositories) error {
		// Concurrent readings for one bike must see each other's total,
		// otherwise the same delta is accrued twice.
		bike, err := repos.Bikes.GetBikeForUpdate(ctx, bikeUUID)
		if err != nil {
			return err
		}
		delta = total - bike.TotalDistance

		updated, err = repos.Bikes.SetTotalDistance(ctx, bikeUUID, total)
		if err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		affected, err = repos.Components.AccrueDistance(ctx, bikeUUID, delta)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to record bike distance", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
			"total":   total,
		})
		return nil, err
	}

	invalidateBike(s.cache, s.logger, bikeUUID)

	s.logger.Info("Bike distance recorded", map[string]interface{}{
		"bike_id":             bikeID,
		"total_distance":      total,
		"delta":               delta,
		"components_affected": affected,
	})

	return updated, nil
}

func (s *BikeService) GetMaintenanceRecords(ctx context.Context, bikeID string) ([]*domain.MaintenanceRecord, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		return nil, err
	}

	repos := s.store.Repositories()
	if _, err := repos.Bikes.GetBikeByID(ctx, bikeUUID); err != nil {
		return nil, err
	}

	records, err := repos.Maintenance.GetRecordsByBikeID(ctx, bikeUUID)
	if err != nil {
		s.logger.Error("Failed to get maintenance records", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}
	if records == nil {
		records = []*domain.MaintenanceRecord{}
	}
	return records, nil
}
