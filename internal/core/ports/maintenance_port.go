package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

// MaintenanceRepository is append-only: records are never updated or deleted.
type MaintenanceRepository interface {
	CreateRecord(ctx context.Context, record *domain.MaintenanceRecord) (*domain.MaintenanceRecord, error)
	GetRecordsByComponentIDs(ctx context.Context, componentIDs []uuid.UUID) ([]*domain.MaintenanceRecord, error)
	GetRecordsByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.MaintenanceRecord, error)
}

type GarageService interface {
	GetGarageCondition(ctx context.Context, userID string) (*domain.GarageCondition, error)
}
