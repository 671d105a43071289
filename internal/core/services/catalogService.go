package services

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
	"github.com/sm8ta/webike_wear_microservice/internal/core/ports"
)

type CatalogService struct {
	store    ports.Store
	logger   ports.LoggerPort
	validate *validator.Validate
}

var _ ports.CatalogService = (*CatalogService)(nil)

func NewCatalogService(store ports.Store, logger ports.LoggerPort, validate *validator.Validate) *CatalogService {
	return &CatalogService{
		store:    store,
		logger:   logger,
		validate: validate,
	}
}

func (s *CatalogService) ListComponentTypes(ctx context.Context) ([]*domain.ComponentType, error) {
	types, err := s.store.Repositories().ComponentTypes.ListComponentTypes(ctx)
	if err != nil {
		s.logger.Error("Failed to list component types", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	if types == nil {
		types = []*domain.ComponentType{}
	}
	return types, nil
}

func (s *CatalogService) GetComponentType(ctx context.Context, id string) (*domain.ComponentType, error) {
	typeID, err := parseID("component type", id)
	if err != nil {
		return nil, err
	}
	return s.store.Repositories().ComponentTypes.GetComponentTypeByID(ctx, typeID)
}

func (s *CatalogService) CreateComponentType(ctx context.Context, componentType *domain.ComponentType) (*domain.ComponentType, error) {
	componentType.Name = strings.TrimSpace(componentType.Name)
	if err := validateStruct(s.validate, componentType); err != nil {
		s.logger.Error("Component type validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	if componentType.ID == uuid.Nil {
		componentType.ID = uuid.New()
	}

	created, err := s.store.Repositories().ComponentTypes.CreateComponentType(ctx, componentType)
	if err != nil {
		s.logger.Error("Failed to create component type", map[string]interface{}{
			"error": err.Error(),
			"name":  componentType.Name,
		})
		return nil, err
	}

	s.logger.Info("Component type created", map[string]interface{}{
		"component_type_id": created.ID,
		"name":              created.Name,
	})
	return created, nil
}

// ImportComponentTypes upserts a catalog by name: unknown names are created,
// known ones get the imported default replacement distance. Nothing is
// written unless every entry is accepted.
func (s *CatalogService) ImportComponentTypes(ctx context.Context, types []*domain.ComponentType) (int, int, error) {
	var created, updated int
	err := s.store.WithinTx(ctx, func(repos ports.Repositories) error {
		created, updated = 0, 0
		for _, t := range types {
			t.Name = strings.TrimSpace(t.Name)
			if err := validateStruct(s.validate, t); err != nil {
				return err
			}

			existing, err := repos.ComponentTypes.GetComponentTypeByName(ctx, t.Name)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				if t.ID == uuid.Nil {
					t.ID = uuid.New()
				}
				if _, err := repos.ComponentTypes.CreateComponentType(ctx, t); err != nil {
					return err
				}
				created++
			case err != nil:
				return err
			default:
				if existing.DefaultReplacementDistance == t.DefaultReplacementDistance {
					continue
				}
				existing.DefaultReplacementDistance = t.DefaultReplacementDistance
				if _, err := repos.ComponentTypes.UpdateComponentType(ctx, existing); err != nil {
					return err
				}
				updated++
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to import component types", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, 0, err
	}

	s.logger.Info("Component catalog imported", map[string]interface{}{
		"created": created,
		"updated": updated,
	})
	return created, updated, nil
}
