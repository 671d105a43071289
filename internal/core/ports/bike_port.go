package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type BikeRepository interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error)
	// GetBikeForUpdate reads the bike and holds its row lock until the
	// surrounding transaction ends. Reads that feed a write of
	// total_distance-derived values must use it.
	GetBikeForUpdate(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error)
	GetBikesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Bike, error)
	UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	SetTotalDistance(ctx context.Context, bikeID uuid.UUID, total float64) (*domain.Bike, error)
	DeleteBike(ctx context.Context, bikeID uuid.UUID) error
}

type BikeService interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetBikeByID(ctx context.Context, bikeID string) (*domain.Bike, error)
	GetBikesByUserID(ctx context.Context, userID string) ([]*domain.Bike, error)
	UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	DeleteBike(ctx context.Context, bikeID string) error
	GetBikeWithComponents(ctx context.Context, bikeID string) (*domain.Bike, error)
	RecordDistance(ctx context.Context, bikeID string, total float64) (*domain.Bike, error)
	GetMaintenanceRecords(ctx context.Context, bikeID string) ([]*domain.MaintenanceRecord, error)
}
