package commute

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/domain/business"
	"talent-match/internal/geo"

	"go.uber.org/zap"
)

const (
	morningDepartureHour = 8
	eveningDepartureHour = 18
	weeksPerMonth        = 4.33
	workDaysPerWeek      = 5
)

var ErrNoOffices = errors.New("business unit has no offices")

// Profile is the full round-trip commute estimate between a candidate address
// and the closest office of a business unit.
type Profile struct {
	Office           business.Office            `json:"office"`
	Morning          geo.RouteEstimate          `json:"morning"`
	Evening          geo.RouteEstimate          `json:"evening"`
	RoundTripKm      float64                    `json:"round_trip_km"`
	TotalMinutes     float64                    `json:"total_minutes"`
	WeeklyCost       float64                    `json:"weekly_cost"`
	MonthlyCost      float64                    `json:"monthly_cost"`
	StressScore      float64                    `json:"stress_score"`
	RecommendedMode  business.TransportMode     `json:"recommended_mode"`
	Flexibility      business.FlexibilityOption `json:"flexibility"`
	CandidateAddress string                     `json:"candidate_address"`
}

// Analyzer computes commute profiles from the geocoder and distance engine.
type Analyzer struct {
	geocoder *geo.Geocoder
	engine   *geo.Engine
	now      func() time.Time
	logger   *zap.Logger
}

func NewAnalyzer(geocoder *geo.Geocoder, engine *geo.Engine, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{geocoder: geocoder, engine: engine, now: time.Now, logger: logger}
}

// Analyze geocodes the candidate address and every unit office, estimates the
// 08:00 outbound and 18:00 return legs for each office, and keeps the office
// with the smallest round-trip time. An unresolvable candidate address returns
// geo.ErrUnresolved so callers can degrade to a location-free result.
func (a *Analyzer) Analyze(ctx context.Context, unit business.UnitConfig, address string) (*Profile, error) {
	if len(unit.Offices) == 0 {
		return nil, ErrNoOffices
	}

	home, err := a.geocoder.Resolve(ctx, unit.ID, address)
	if err != nil {
		return nil, err
	}

	offices := make([]business.Office, 0, len(unit.Offices))
	coords := make([]geo.Coordinate, 0, len(unit.Offices))
	for _, office := range unit.Offices {
		c, err := a.geocoder.Resolve(ctx, unit.ID, office.Address)
		if err != nil {
			a.logger.Warn("office address unresolved, skipping",
				zap.String("unit", unit.ID), zap.String("office", office.Name))
			continue
		}
		offices = append(offices, office)
		coords = append(coords, c)
	}
	if len(coords) == 0 {
		return nil, geo.ErrUnresolved
	}

	morningAt := nextWeekdayAt(a.now(), morningDepartureHour)
	eveningAt := nextWeekdayAt(a.now(), eveningDepartureHour)

	outbound := a.engine.Estimate(ctx, []geo.Coordinate{home}, coords, business.ModeDriving, morningAt)
	returns := a.engine.Estimate(ctx, coords, []geo.Coordinate{home}, business.ModeDriving, eveningAt)

	best := -1
	bestTotal := 0.0
	for i := range coords {
		total := outbound[0][i].TrafficDurationMin + returns[i][0].TrafficDurationMin
		if best == -1 || total < bestTotal {
			best = i
			bestTotal = total
		}
	}

	morning := outbound[0][best]
	evening := returns[best][0]
	roundTripKm := morning.DistanceKm + evening.DistanceKm
	weekly := roundTripKm * unit.CostPerKm * workDaysPerWeek

	p := &Profile{
		Office:           offices[best],
		Morning:          morning,
		Evening:          evening,
		RoundTripKm:      roundTripKm,
		TotalMinutes:     bestTotal,
		WeeklyCost:       weekly,
		MonthlyCost:      weekly * weeksPerMonth,
		CandidateAddress: home.ResolvedAddress,
	}
	p.StressScore = StressScore(unit, morning, evening, bestTotal, roundTripKm)
	p.RecommendedMode = RecommendTransport(unit, morning.DistanceKm)
	p.Flexibility = RecommendFlexibility(unit, bestTotal, morning.DistanceKm)
	return p, nil
}

// StressScore grades commute burden on a 1-10 scale. Four sub-factors are
// each graded 1.0-4.0 and their mean is rescaled so a worst-case commute maps
// to 10 and a trivial one to 1.
func StressScore(unit business.UnitConfig, morning, evening geo.RouteEstimate, totalMinutes, totalKm float64) float64 {
	timeFactor := TimeStressFactor(unit, totalMinutes)

	qualityFactor := (qualityStress(morning.Quality) + qualityStress(evening.Quality)) / 2

	distanceFactor := 1.0
	switch {
	case totalKm > 60:
		distanceFactor = 3.0
	case totalKm > 40:
		distanceFactor = 2.0
	}

	variabilityFactor := 1.0
	ratio := meanTrafficRatio(morning, evening)
	switch {
	case ratio > 1.5:
		variabilityFactor = 3.0
	case ratio > 1.2:
		variabilityFactor = 2.0
	}

	mean := (timeFactor + qualityFactor + distanceFactor + variabilityFactor) / 4
	return clamp(1+(mean-1)*3, 1, 10)
}

// TimeStressFactor exposes sub-factor (a) of the stress score.
func TimeStressFactor(unit business.UnitConfig, totalMinutes float64) float64 {
	switch {
	case totalMinutes > unit.MaxCommuteToleranceMin:
		return 3.0
	case totalMinutes >= 0.8*unit.MaxCommuteToleranceMin:
		return 2.0
	default:
		return 1.0
	}
}

func qualityStress(q geo.QualityTier) float64 {
	switch q {
	case geo.QualityExcellent:
		return 1.0
	case geo.QualityGood:
		return 2.0
	case geo.QualityFair:
		return 3.0
	case geo.QualityPoor:
		return 4.0
	case geo.QualityApproximate:
		return 2.0
	default:
		return 2.0
	}
}

func meanTrafficRatio(legs ...geo.RouteEstimate) float64 {
	sum := 0.0
	n := 0
	for _, leg := range legs {
		if leg.DurationMin <= 0 || leg.Quality == geo.QualityApproximate {
			continue
		}
		sum += leg.TrafficDurationMin / leg.DurationMin
		n++
	}
	if n == 0 {
		// no traffic data at all
		return 1.5
	}
	return sum / float64(n)
}

// RecommendTransport picks a mode by one-way distance, restricted to the
// unit's allowed modes. When the distance-appropriate mode is not allowed the
// next longer-range mode is used.
func RecommendTransport(unit business.UnitConfig, oneWayKm float64) business.TransportMode {
	ladder := []struct {
		maxKm float64
		mode  business.TransportMode
	}{
		{2, business.ModeWalking},
		{8, business.ModeBicycling},
		{25, business.ModeTransit},
		{0, business.ModeDriving},
	}

	reached := false
	for _, step := range ladder {
		if !reached {
			if step.maxKm != 0 && oneWayKm > step.maxKm {
				continue
			}
			reached = true
		}
		if unit.ModeAllowed(step.mode) {
			return step.mode
		}
	}
	if len(unit.AllowedModes) > 0 {
		return unit.AllowedModes[0]
	}
	return business.ModeDriving
}

// RecommendFlexibility maps commute burden to a work-arrangement suggestion.
func RecommendFlexibility(unit business.UnitConfig, totalMinutes, oneWayKm float64) business.FlexibilityOption {
	switch {
	case totalMinutes > 1.2*unit.MaxCommuteToleranceMin:
		return business.FlexRemote
	case totalMinutes > 0.9*unit.MaxCommuteToleranceMin:
		return business.FlexHybrid
	case oneWayKm > 50:
		return business.FlexFlexibleHours
	default:
		return business.FlexOffice
	}
}

func nextWeekdayAt(from time.Time, hour int) time.Time {
	day := from
	if from.Hour() >= hour {
		day = day.AddDate(0, 0, 1)
	}
	for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
