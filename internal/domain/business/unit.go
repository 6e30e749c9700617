package business

import (
	"context"
	"errors"
)

type UnitKind string

const (
	UnitExecutive  UnitKind = "executive"
	UnitGeneral    UnitKind = "general"
	UnitStudent    UnitKind = "student"
	UnitEntryLevel UnitKind = "entry_level"
)

type TransportMode string

const (
	ModeDriving   TransportMode = "driving"
	ModeTransit   TransportMode = "transit"
	ModeBicycling TransportMode = "bicycling"
	ModeWalking   TransportMode = "walking"
)

type FlexibilityOption string

const (
	FlexRemote        FlexibilityOption = "remote"
	FlexHybrid        FlexibilityOption = "hybrid"
	FlexFlexibleHours FlexibilityOption = "flexible_hours"
	FlexOffice        FlexibilityOption = "office"
)

type Office struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type UnitConfig struct {
	ID                     string
	Kind                   UnitKind
	Offices                []Office
	CostPerKm              float64
	MaxCommuteToleranceMin float64
	StressThreshold        float64
	CostSensitivity        float64
	LocationWeight         float64
	AllowedModes           []TransportMode
	FlexibilityPreference  FlexibilityOption
}

var ErrUnknownUnit = errors.New("unknown business unit")

type Registry interface {
	Get(ctx context.Context, unitID string) (UnitConfig, error)
}

func (c UnitConfig) ModeAllowed(mode TransportMode) bool {
	for _, m := range c.AllowedModes {
		if m == mode {
			return true
		}
	}
	return false
}

// DefaultConfig returns the built-in policy for a unit kind. Offices are
// intentionally empty: units without configured offices skip location analysis.
func DefaultConfig(kind UnitKind) (UnitConfig, bool) {
	base := UnitConfig{
		ID:                     string(kind),
		Kind:                   kind,
		CostPerKm:              5.0,
		MaxCommuteToleranceMin: 90,
		StressThreshold:        6.0,
		CostSensitivity:        1.0,
		AllowedModes:           []TransportMode{ModeDriving, ModeTransit, ModeBicycling, ModeWalking},
		FlexibilityPreference:  FlexHybrid,
	}

	switch kind {
	case UnitExecutive:
		base.LocationWeight = 0.25
		base.MaxCommuteToleranceMin = 120
		base.CostSensitivity = 0.5
	case UnitGeneral:
		base.LocationWeight = 0.20
	case UnitStudent:
		base.LocationWeight = 0.15
		base.MaxCommuteToleranceMin = 75
		base.CostSensitivity = 1.5
	case UnitEntryLevel:
		base.LocationWeight = 0.10
		base.CostSensitivity = 1.3
	default:
		return UnitConfig{}, false
	}
	return base, true
}
