package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type MaintenanceAction string

const (
	ActionReplaced MaintenanceAction = "replaced"
)

// MaintenanceRecord is an append-only audit entry. It is written in the same
// transaction that retires a component and is never updated afterwards.
type MaintenanceRecord struct {
	ID               uuid.UUID           `json:"id"`
	BikeComponentID  uuid.UUID           `json:"bike_component_id" validate:"required"`
	ActionType       MaintenanceAction   `json:"action_type" validate:"required"`
	DistanceAtAction float64             `json:"distance_at_action" validate:"gte=0"`
	Cost             decimal.NullDecimal `json:"cost"`
	Notes            *string             `json:"notes,omitempty" validate:"omitempty,max=1000"`
	CreatedAt        time.Time           `json:"created_at"`
}

// Replacement is the outcome of replacing a component.
type Replacement struct {
	Retired     *BikeComponent     `json:"retired"`
	Replacement *BikeComponent     `json:"replacement"`
	Record      *MaintenanceRecord `json:"record"`
}
