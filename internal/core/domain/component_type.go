package domain

import (
	"time"

	"github.com/google/uuid"
)

// ComponentType is catalog reference data: a kind of part and how long it
// is expected to last.
type ComponentType struct {
	ID                         uuid.UUID `json:"id" yaml:"-"`
	Name                       string    `json:"name" yaml:"name" validate:"required,max=100"`
	DefaultReplacementDistance float64   `json:"default_replacement_distance" yaml:"default_replacement_distance" validate:"gt=0"`
	CreatedAt                  time.Time `json:"created_at" yaml:"-"`
}
