package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

type BikeResponse struct {
	BikeID        uuid.UUID `json:"bike_id"`
	UserID        uuid.UUID `json:"user_id"`
	BikeName      string    `json:"bike_name"`
	Model         string    `json:"model"`
	Type          string    `json:"type"`
	Year          int       `json:"year"`
	TotalDistance float64   `json:"total_distance"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ComponentResponse struct {
	ID                  uuid.UUID   `json:"id"`
	BikeID              uuid.UUID   `json:"bike_id"`
	ComponentTypeID     uuid.UUID   `json:"component_type_id"`
	ComponentTypeName   string      `json:"component_type_name,omitempty"`
	Brand               string      `json:"brand"`
	Model               string      `json:"model"`
	ReplacementDistance float64     `json:"replacement_distance"`
	CurrentDistance     float64     `json:"current_distance"`
	InstallDistance     float64     `json:"install_distance"`
	IsActive            bool        `json:"is_active"`
	Wear                domain.Wear `json:"wear"`
	InstalledAt         time.Time   `json:"installed_at"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

type MaintenanceRecordResponse struct {
	ID               uuid.UUID `json:"id"`
	BikeComponentID  uuid.UUID `json:"bike_component_id"`
	ActionType       string    `json:"action_type"`
	DistanceAtAction float64   `json:"distance_at_action"`
	Cost             *string   `json:"cost,omitempty" example:"24.99"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func toBikeResponse(bike *domain.Bike) BikeResponse {
	return BikeResponse{
		BikeID:        bike.BikeID,
		UserID:        bike.UserID,
		BikeName:      bike.BikeName,
		Model:         bike.Model,
		Type:          string(bike.Type),
		Year:          bike.Year,
		TotalDistance: bike.TotalDistance,
		CreatedAt:     bike.CreatedAt,
		UpdatedAt:     bike.UpdatedAt,
	}
}

func toComponentResponse(component *domain.BikeComponent) ComponentResponse {
	resp := ComponentResponse{
		ID:                  component.ID,
		BikeID:              component.BikeID,
		ComponentTypeID:     component.ComponentTypeID,
		Brand:               component.Brand,
		Model:               component.Model,
		ReplacementDistance: component.ReplacementDistance,
		CurrentDistance:     component.CurrentDistance,
		InstallDistance:     component.InstallDistance,
		IsActive:            component.IsActive,
		Wear:                component.Wear(),
		InstalledAt:         component.InstalledAt,
		CreatedAt:           component.CreatedAt,
		UpdatedAt:           component.UpdatedAt,
	}
	if component.ComponentType != nil {
		resp.ComponentTypeName = component.ComponentType.Name
	}
	return resp
}

func toComponentResponses(components []*domain.BikeComponent) []ComponentResponse {
	out := make([]ComponentResponse, len(components))
	for i, c := range components {
		out[i] = toComponentResponse(c)
	}
	return out
}

func toRecordResponse(record *domain.MaintenanceRecord) MaintenanceRecordResponse {
	resp := MaintenanceRecordResponse{
		ID:               record.ID,
		BikeComponentID:  record.BikeComponentID,
		ActionType:       string(record.ActionType),
		DistanceAtAction: record.DistanceAtAction,
		Notes:            record.Notes,
		CreatedAt:        record.CreatedAt,
	}
	if record.Cost.Valid {
		cost := record.Cost.Decimal.StringFixed(2)
		resp.Cost = &cost
	}
	return resp
}

func toRecordResponses(records []*domain.MaintenanceRecord) []MaintenanceRecordResponse {
	out := make([]MaintenanceRecordResponse, len(records))
	for i, r := range records {
		out[i] = toRecordResponse(r)
	}
	return out
}
