package domain

import (
	"time"

	"github.com/google/uuid"
)

// BikeComponent is one installed instance of a ComponentType on a bike.
// At most one instance per (bike, component type) is active; replaced
// instances stay behind as inactive history.
type BikeComponent struct {
	ID                  uuid.UUID      `json:"id"`
	BikeID              uuid.UUID      `json:"bike_id" validate:"required"`
	ComponentTypeID     uuid.UUID      `json:"component_type_id" validate:"required"`
	ComponentType       *ComponentType `json:"component_type,omitempty" validate:"-"`
	Brand               string         `json:"brand,omitempty" validate:"max=100"`
	Model               string         `json:"model,omitempty" validate:"max=100"`
	ReplacementDistance float64        `json:"replacement_distance" validate:"gt=0"`
	CurrentDistance     float64        `json:"current_distance" validate:"gte=0"`
	InstallDistance     float64        `json:"install_distance"`
	IsActive            bool           `json:"is_active"`
	InstalledAt         time.Time      `json:"installed_at"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func (c *BikeComponent) UsagePercent() float64 {
	return UsagePercent(c.CurrentDistance, c.ReplacementDistance)
}

func (c *BikeComponent) Severity() Severity {
	return ClassifySeverity(c.UsagePercent())
}

func (c *BikeComponent) NeedsReplacement() bool {
	return c.CurrentDistance >= c.ReplacementDistance
}

// Wear summarises the component's state for presentation.
func (c *BikeComponent) Wear() Wear {
	usage := c.UsagePercent()
	return Wear{
		UsagePercent:      usage,
		DisplayPercent:    DisplayPercent(usage),
		Severity:          ClassifySeverity(usage),
		Band:              ConditionBand(usage),
		RemainingDistance: RemainingDistance(c.CurrentDistance, c.ReplacementDistance),
	}
}

// Successor builds the fresh instance that takes over when c is replaced at
// the given bike distance.
func (c *BikeComponent) Successor(bikeDistance float64, now time.Time) *BikeComponent {
	return &BikeComponent{
		ID:                  uuid.New(),
		BikeID:              c.BikeID,
		ComponentTypeID:     c.ComponentTypeID,
		ComponentType:       c.ComponentType,
		Brand:               c.Brand,
		Model:               c.Model,
		ReplacementDistance: c.ReplacementDistance,
		CurrentDistance:     0,
		InstallDistance:     bikeDistance,
		IsActive:            true,
		InstalledAt:         now,
	}
}

// ComponentHistory is every instance of one component type on one bike,
// newest first, with the maintenance records written against them.
type ComponentHistory struct {
	BikeID          uuid.UUID            `json:"bike_id"`
	ComponentTypeID uuid.UUID            `json:"component_type_id"`
	Instances       []*BikeComponent     `json:"instances"`
	Records         []*MaintenanceRecord `json:"records"`
}
