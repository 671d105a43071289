package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

const (
	EventComponentAdded    = "added"
	EventComponentReplaced = "replaced"
)

type ComponentService struct {
	store    ports.Store
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
	metrics  ports.MetricsPort
	now      func() time.Time
}

var _ ports.ComponentService = (*ComponentService)(nil)

func NewComponentService(
	store ports.Store,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
	metrics ports.MetricsPort,
) *ComponentService {
	return &ComponentService{
		store:    store,
		logger:   logger,
		validate: validate,
		cache:    cache,
		metrics:  metrics,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// AddComponent fits a new active component to a bike. The replacement
// distance falls back to the catalog default when absent or non-positive.
func (s *ComponentService) AddComponent(ctx context.Context, input domain.AddComponentInput) (*domain.BikeComponent, error) {
	bikeID, err := parseID("bike", input.BikeID)
	if err != nil {
		return nil, err
	}
	typeID, err := parseID("component type", input.ComponentTypeID)
	if err != nil {
		return nil, err
	}

	var current float64
	if input.CurrentDistance != nil {
		current = *input.CurrentDistance
	}
	if current < 0 {
		return nil, fmt.Errorf("current distance must not be negative: %w", domain.ErrInvalidInput)
	}

	var created *domain.BikeComponent
	err = s.store.WithinTx(ctx, func(repos ports.Repositories) error {
		bike, err := repos.Bikes.GetBikeForUpdate(ctx, bikeID)
		if err != nil {
			return err
		}
		componentType, err := repos.ComponentTypes.GetComponentTypeByID(ctx, typeID)
		if err != nil {
			return err
		}

		replacement := componentType.DefaultReplacementDistance
		if input.ReplacementDistance != nil && *input.ReplacementDistance > 0 {
			replacement = *input.ReplacementDistance
		}
		if replacement <= 0 {
			return fmt.Errorf("replacement distance must be positive: %w", domain.ErrInvalidInput)
		}

		existing, err := repos.Components.GetActiveComponent(ctx, bikeID, typeID)
		switch {
		case err == nil:
			return fmt.Errorf("bike already has an active %s (%s): %w", componentType.Name, existing.ID, domain.ErrConflict)
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}

		installDistance := bike.TotalDistance - current
		if installDistance < 0 {
			s.logger.Warn("Component starting distance exceeds bike total distance", map[string]interface{}{
				"bike_id":          bikeID.String(),
				"current_distance": current,
				"total_distance":   bike.TotalDistance,
			})
		}

		component := &domain.BikeComponent{
			ID:                  uuid.New(),
			BikeID:              bikeID,
			ComponentTypeID:     typeID,
			Brand:               input.Brand,
			Model:               input.Model,
			ReplacementDistance: replacement,
			CurrentDistance:     current,
			InstallDistance:     installDistance,
			IsActive:            true,
			InstalledAt:         s.now(),
		}
		if err := validateStruct(s.validate, component); err != nil {
			return err
		}

		created, err = repos.Components.CreateComponent(ctx, component)
		if err != nil {
			return err
		}
		created.ComponentType = componentType
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to add component", map[string]interface{}{
			"error":             err.Error(),
			"bike_id":           input.BikeID,
			"component_type_id": input.ComponentTypeID,
		})
		return nil, err
	}

	invalidateBike(s.cache, s.logger, bikeID)
	s.metrics.RecordComponentEvent(EventComponentAdded)

	s.logger.Info("Component added successfully", map[string]interface{}{
		"component_id":         created.ID,
		"bike_id":              created.BikeID,
		"component_type_id":    created.ComponentTypeID,
		"replacement_distance": created.ReplacementDistance,
		"install_distance":     created.InstallDistance,
	})

	return created, nil
}

func (s *ComponentService) GetComponentByID(ctx context.Context, componentID string) (*domain.BikeComponent, error) {
	componentUUID, err := parseID("component", componentID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"component_id": componentID,
			"error":        err.Error(),
		})
		return nil, err
	}

	component, err := s.store.Repositories().Components.GetComponentByID(ctx, componentUUID)
	if err != nil {
		s.logger.Error("Failed to get component", map[string]interface{}{
			"error":        err.Error(),
			"component_id": componentID,
		})
		return nil, err
	}

	return component, nil
}

func (s *ComponentService) GetActiveComponents(ctx context.Context, bikeID string) ([]*domain.BikeComponent, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		return nil, err
	}

	repos := s.store.Repositories()
	if _, err := repos.Bikes.GetBikeByID(ctx, bikeUUID); err != nil {
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

	s.logger.Info("Retrieved components for bike", map[string]interface{}{
		"bike_id":          bikeID,
		"components_count": len(components),
	})

	return components, nil
}

func (s *ComponentService) UpdateComponent(ctx context.Context, input domain.UpdateComponentInput) (*domain.BikeComponent, error) {
	componentUUID, err := parseID("component", input.ComponentID)
	if err != nil {
		return nil, err
	}
	if input.ReplacementDistance != nil && *input.ReplacementDistance <= 0 {
		return nil, fmt.Errorf("replacement distance must be positive: %w", domain.ErrInvalidInput)
	}

	repos := s.store.Repositories()
	component, err := repos.Components.GetComponentByID(ctx, componentUUID)
	if err != nil {
		return nil, err
	}
	// Retired instances are history and stay as they were at replacement.
	if !component.IsActive {
		return nil, fmt.Errorf("component %s is not active: %w", component.ID, domain.ErrNotFound)
	}

	if input.Brand != nil {
		component.Brand = *input.Brand
	}
	if input.Model != nil {
		component.Model = *input.Model
	}
	if input.ReplacementDistance != nil {
		component.ReplacementDistance = *input.ReplacementDistance
	}
	if err := validateStruct(s.validate, component); err != nil {
		s.logger.Error("Component validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	componentType := component.ComponentType
	updated, err := repos.Components.UpdateComponent(ctx, component)
	if err != nil {
		s.logger.Error("Failed to update component", map[string]interface{}{
			"error":        err.Error(),
			"component_id": input.ComponentID,
		})
		return nil, err
	}
	updated.ComponentType = componentType

	invalidateBike(s.cache, s.logger, updated.BikeID)

	s.logger.Info("Component updated successfully", map[string]interface{}{
		"component_id": updated.ID,
	})

	return updated, nil
}

// ReplaceComponent retires an active component and installs a fresh one of
// the same type at the bike's current total distance. Deactivation, the
// maintenance record and the new component are written in one transaction.
func (s *ComponentService) ReplaceComponent(ctx context.Context, input domain.ReplaceComponentInput) (*domain.Replacement, error) {
	componentUUID, err := parseID("component", input.ComponentID)
	if err != nil {
		return nil, err
	}
	if input.Cost.Valid && input.Cost.Decimal.IsNegative() {
		return nil, fmt.Errorf("cost must not be negative: %w", domain.ErrInvalidInput)
	}

	var result *domain.Replacement
	err = s.store.WithinTx(ctx, func(repos ports.Repositories) error {
		current, err := repos.Components.GetComponentByID(ctx, componentUUID)
		if err != nil {
			return err
		}
		if !current.IsActive {
			return fmt.Errorf("component %s is not active: %w", current.ID, domain.ErrNotFound)
		}

		bike, err := repos.Bikes.GetBikeForUpdate(ctx, current.BikeID)
		if err != nil {
			return err
		}

		if err := repos.Components.DeactivateComponent(ctx, current.ID); err != nil {
			return err
		}

		record := &domain.MaintenanceRecord{
			ID:               uuid.New(),
			BikeComponentID:  current.ID,
			ActionType:       domain.ActionReplaced,
			DistanceAtAction: bike.TotalDistance,
			Cost:             input.Cost,
			Notes:            input.Notes,
		}
		if err := validateStruct(s.validate, record); err != nil {
			return err
		}
		record, err = repos.Maintenance.CreateRecord(ctx, record)
		if err != nil {
			return err
		}

		successor, err := repos.Components.CreateComponent(ctx, current.Successor(bike.TotalDistance, s.now()))
		if err != nil {
			return err
		}
		successor.ComponentType = current.ComponentType

		current.IsActive = false
		result = &domain.Replacement{
			Retired:     current,
			Replacement: successor,
			Record:      record,
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to replace component", map[string]interface{}{
			"error":        err.Error(),
			"component_id": input.ComponentID,
		})
		return nil, err
	}

	invalidateBike(s.cache, s.logger, result.Retired.BikeID)
	s.metrics.RecordComponentEvent(EventComponentReplaced)

	s.logger.Info("Component replaced successfully", map[string]interface{}{
		"retired_component_id": result.Retired.ID,
		"new_component_id":     result.Replacement.ID,
		"bike_id":              result.Retired.BikeID,
		"distance_at_action":   result.Record.DistanceAtAction,
	})

	return result, nil
}

// GetComponentHistory lists every instance of a component type fitted to a
// bike, newest first, with their maintenance records.
func (s *ComponentService) GetComponentHistory(ctx context.Context, bikeID, componentTypeID string) (*domain.ComponentHistory, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		return nil, err
	}
	typeUUID, err := parseID("component type", componentTypeID)
	if err != nil {
		return nil, err
	}

	repos := s.store.Repositories()
	if _, err := repos.Bikes.GetBikeByID(ctx, bikeUUID); err != nil {
		return nil, err
	}
	if _, err := repos.ComponentTypes.GetComponentTypeByID(ctx, typeUUID); err != nil {
		return nil, err
	}

	instances, err := repos.Components.GetComponentHistory(ctx, bikeUUID, typeUUID)
	if err != nil {
		return nil, err
	}

	history := &domain.ComponentHistory{
		BikeID:          bikeUUID,
		ComponentTypeID: typeUUID,
		Instances:       []*domain.BikeComponent{},
		Records:         []*domain.MaintenanceRecord{},
	}
	if len(instances) == 0 {
		return history, nil
	}
	history.Instances = instances

	ids := make([]uuid.UUID, 0, len(instances))
	for _, c := range instances {
		ids = append(ids, c.ID)
	}
	records, err := repos.Maintenance.GetRecordsByComponentIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if records != nil {
		history.Records = records
	}

	return history, nil
}
