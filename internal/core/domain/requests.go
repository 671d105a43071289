package domain

import "github.com/shopspring/decimal"

// AddComponentInput describes a component being fitted to a bike.
// ReplacementDistance falls back to the catalog default when nil or
// non-positive; CurrentDistance defaults to zero and lets a used part be
// logged retroactively.
type AddComponentInput struct {
	BikeID              string
	ComponentTypeID     string
	Brand               string
	Model               string
	ReplacementDistance *float64
	CurrentDistance     *float64
}

type UpdateComponentInput struct {
	ComponentID         string
	Brand               *string
	Model               *string
	ReplacementDistance *float64
}

type ReplaceComponentInput struct {
	ComponentID string
	Cost        decimal.NullDecimal
	Notes       *string
}
