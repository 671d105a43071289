package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type ComponentTypeRepository interface {
	CreateComponentType(ctx context.Context, componentType *domain.ComponentType) (*domain.ComponentType, error)
	GetComponentTypeByID(ctx context.Context, id uuid.UUID) (*domain.ComponentType, error)
	GetComponentTypeByName(ctx context.Context, name string) (*domain.ComponentType, error)
	ListComponentTypes(ctx context.Context) ([]*domain.ComponentType, error)
	UpdateComponentType(ctx context.Context, componentType *domain.ComponentType) (*domain.ComponentType, error)
}

type CatalogService interface {
	ListComponentTypes(ctx context.Context) ([]*domain.ComponentType, error)
	GetComponentType(ctx context.Context, id string) (*domain.ComponentType, error)
	CreateComponentType(ctx context.Context, componentType *domain.ComponentType) (*domain.ComponentType, error)
	ImportComponentTypes(ctx context.Context, types []*domain.ComponentType) (created int, updated int, err error)
}
