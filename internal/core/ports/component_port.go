package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type ComponentRepository interface {
	CreateComponent(ctx context.Context, component *domain.BikeComponent) (*domain.BikeComponent, error)
	GetComponentByID(ctx context.Context, componentID uuid.UUID) (*domain.BikeComponent, error)
	// GetActiveComponent returns domain.ErrNotFound when the pair has no active instance.
	GetActiveComponent(ctx context.Context, bikeID, componentTypeID uuid.UUID) (*domain.BikeComponent, error)
	GetActiveComponentsByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.BikeComponent, error)
	GetActiveComponentsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.BikeComponent, error)
	GetComponentHistory(ctx context.Context, bikeID, componentTypeID uuid.UUID) ([]*domain.BikeComponent, error)
	UpdateComponent(ctx context.Context, component *domain.BikeComponent) (*domain.BikeComponent, error)
	// DeactivateComponent only matches active rows; an inactive or missing id is domain.ErrNotFound.
	DeactivateComponent(ctx context.Context, componentID uuid.UUID) error
	AccrueDistance(ctx context.Context, bikeID uuid.UUID, delta float64) (int64, error)
}

type ComponentService interface {
	AddComponent(ctx context.Context, input domain.AddComponentInput) (*domain.BikeComponent, error)
	GetComponentByID(ctx context.Context, componentID string) (*domain.BikeComponent, error)
	GetActiveComponents(ctx context.Context, bikeID string) ([]*domain.BikeComponent, error)
	UpdateComponent(ctx context.Context, input domain.UpdateComponentInput) (*domain.BikeComponent, error)
	ReplaceComponent(ctx context.Context, input domain.ReplaceComponentInput) (*domain.Replacement, error)
	GetComponentHistory(ctx context.Context, bikeID, componentTypeID string) (*domain.ComponentHistory, error)
}
