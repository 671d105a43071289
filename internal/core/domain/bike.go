package domain

import (
	"time"

	"github.com/google/uuid"
)

// swagger:model domain.Bike
type Bike struct {
	UserID        uuid.UUID        `json:"user_id" validate:"required"`
	BikeID        uuid.UUID        `json:"bike_id"`
	BikeName      string           `json:"bike_name" validate:"max=100"`
	Type          BikeType         `json:"type" validate:"omitempty,oneof=bmx mtb road gravel city"`
	Model         string           `json:"model" validate:"max=100"`
	Components    []*BikeComponent `json:"components,omitempty"`
	Year          int              `json:"year" validate:"omitempty,min=1900,max=2100"`
	TotalDistance float64          `json:"total_distance" validate:"gte=0"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type BikeType string

const (
	BMX    BikeType = "bmx"
	MTB    BikeType = "mtb"
	Road   BikeType = "road"
	Gravel BikeType = "gravel"
	City   BikeType = "city"
)

// Owner is the bike owner's profile as reported by the user service.
type Owner struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	DateOfBirth string    `json:"date_of_birth"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
