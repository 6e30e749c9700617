package scoring

import (
	"talent-match/internal/commute"
	"talent-match/internal/domain/business"
)

type LocationAdjustment struct {
	Base           float64 `json:"base"`
	LocationFactor float64 `json:"location_factor"`
	LocationWeight float64 `json:"location_weight"`
	Adjusted       float64 `json:"adjusted"`
	Applied        bool    `json:"applied"`
}

// LocationScoreAdjuster blends a base match score with commute compatibility
// using the business unit's location weight. The blend is a convex
// combination, so the adjusted score stays in [0,1]. Without location data the
// adjuster is a no-op.
type LocationScoreAdjuster struct{}

func NewLocationScoreAdjuster() *LocationScoreAdjuster {
	return &LocationScoreAdjuster{}
}

func (a *LocationScoreAdjuster) Adjust(base float64, prof *commute.Profile, unit business.UnitConfig) LocationAdjustment {
	base = clamp01(base)
	if prof == nil {
		return LocationAdjustment{Base: base, Adjusted: base, Applied: false}
	}

	factor := locationFactor(prof, unit)
	weight := clamp01(unit.LocationWeight)
	adjusted := clamp01(base*(1-weight) + factor*weight)

	return LocationAdjustment{
		Base:           base,
		LocationFactor: factor,
		LocationWeight: weight,
		Adjusted:       adjusted,
		Applied:        true,
	}
}

// locationFactor starts at the commute feasibility ratio and receives bounded
// adjustments (each within +-0.02..+-0.15) for feasibility, relative time,
// relative stress, and cost tier. Cost adjustments scale with the unit's cost
// sensitivity.
func locationFactor(prof *commute.Profile, unit business.UnitConfig) float64 {
	tolerance := unit.MaxCommuteToleranceMin
	factor := feasibilityRatio(prof.TotalMinutes, tolerance)

	if tolerance > 0 {
		if prof.TotalMinutes <= tolerance {
			factor += 0.05
		} else {
			factor -= 0.10
		}

		switch {
		case prof.TotalMinutes < 0.5*tolerance:
			factor += 0.10
		case prof.TotalMinutes > 1.5*tolerance:
			factor -= 0.15
		}
	}

	if unit.StressThreshold > 0 {
		switch {
		case prof.StressScore <= unit.StressThreshold-2:
			factor += 0.05
		case prof.StressScore > unit.StressThreshold:
			factor -= 0.10
		}
	}

	factor += costAdjustment(prof.MonthlyCost, unit.CostSensitivity)
	return clamp01(factor)
}

func feasibilityRatio(totalMinutes, toleranceMin float64) float64 {
	if toleranceMin <= 0 {
		return defaultSignal
	}
	if totalMinutes <= 0 {
		return 1.0
	}
	return clamp01(toleranceMin / totalMinutes)
}

func costAdjustment(monthlyCost, sensitivity float64) float64 {
	if sensitivity < 0 {
		sensitivity = 0
	}
	var adj float64
	switch {
	case monthlyCost <= 0:
		adj = 0
	case monthlyCost < 1000:
		adj = 0.04
	case monthlyCost < 3000:
		adj = 0
	case monthlyCost < 6000:
		adj = -0.05
	default:
		adj = -0.08
	}
	adj *= sensitivity
	// keep within the bounded adjustment band regardless of sensitivity
	if adj > 0.15 {
		adj = 0.15
	}
	if adj < -0.15 {
		adj = -0.15
	}
	return adj
}
