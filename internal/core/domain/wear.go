package domain

import "math"

type Severity string

const (
	SeverityCritical  Severity = "critical"
	SeverityWarning   Severity = "warning"
	SeverityGood      Severity = "good"
	SeverityExcellent Severity = "excellent"
)

// Band thresholds in usage percent, inclusive lower bounds.
const (
	CriticalThreshold = 90.0
	WarningThreshold  = 70.0
	ExcellentCeiling  = 30.0
)

type Wear struct {
	UsagePercent      float64  `json:"usage_percent"`
	DisplayPercent    float64  `json:"display_percent"`
	Severity          Severity `json:"severity"`
	Band              Severity `json:"band"`
	RemainingDistance float64  `json:"remaining_distance"`
}

// UsagePercent is current/replacement as a percentage. It is not clamped: an
// overdue part reports more than 100. A non-positive replacement distance
// never reaches storage, and yields 0 here.
func UsagePercent(current, replacement float64) float64 {
	if replacement <= 0 {
		return 0
	}
	return current / replacement * 100
}

// DisplayPercent clamps a usage percentage to [0, 100].
func DisplayPercent(usage float64) float64 {
	return math.Max(0, math.Min(100, usage))
}

func ClassifySeverity(usage float64) Severity {
	switch {
	case usage >= CriticalThreshold:
		return SeverityCritical
	case usage >= WarningThreshold:
		return SeverityWarning
	default:
		return SeverityGood
	}
}

// ConditionBand is ClassifySeverity with "good" split into good/excellent
// for display grouping.
func ConditionBand(usage float64) Severity {
	s := ClassifySeverity(usage)
	if s == SeverityGood && usage < ExcellentCeiling {
		return SeverityExcellent
	}
	return s
}

func RemainingDistance(current, replacement float64) float64 {
	return math.Max(0, replacement-current)
}

type BandCounts struct {
	Critical  int `json:"critical"`
	Warning   int `json:"warning"`
	Good      int `json:"good"`
	Excellent int `json:"excellent"`
}

type GarageCondition struct {
	Condition  float64    `json:"condition"`
	Components int        `json:"components"`
	Counts     BandCounts `json:"counts"`
}

// AggregateGarage averages the remaining condition of the given components.
// An empty garage is in perfect condition.
func AggregateGarage(components []*BikeComponent) GarageCondition {
	result := GarageCondition{Condition: 100}
	if len(components) == 0 {
		return result
	}

	var sum float64
	for _, c := range components {
		usage := c.UsagePercent()
		sum += math.Max(0, 100-usage)

		switch ConditionBand(usage) {
		case SeverityCritical:
			result.Counts.Critical++
		case SeverityWarning:
			result.Counts.Warning++
		case SeverityExcellent:
			result.Counts.Excellent++
		default:
			result.Counts.Good++
		}
	}

	result.Components = len(components)
	result.Condition = sum / float64(len(components))
	return result
}
