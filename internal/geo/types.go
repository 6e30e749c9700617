package geo

import (
	"context"
	"errors"
	"time"

	"talent-match/internal/domain/business"
)

type Accuracy string

const (
	AccuracyRooftop    Accuracy = "rooftop"
	AccuracyStreet     Accuracy = "street"
	AccuracyLocality   Accuracy = "locality"
	AccuracyUnresolved Accuracy = "unresolved"
)

type Coordinate struct {
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	ResolvedAddress string   `json:"resolved_address"`
	Accuracy        Accuracy `json:"accuracy"`
}

func (c Coordinate) Resolved() bool {
	return c.Accuracy != "" && c.Accuracy != AccuracyUnresolved
}

type TrafficModel string

const (
	TrafficBestGuess   TrafficModel = "best_guess"
	TrafficOptimistic  TrafficModel = "optimistic"
	TrafficPessimistic TrafficModel = "pessimistic"
)

type QualityTier string

const (
	QualityExcellent   QualityTier = "excellent"
	QualityGood        QualityTier = "good"
	QualityFair        QualityTier = "fair"
	QualityPoor        QualityTier = "poor"
	QualityApproximate QualityTier = "approximate"
)

type RouteEstimate struct {
	Origin             Coordinate             `json:"origin"`
	Destination        Coordinate             `json:"destination"`
	DistanceKm         float64                `json:"distance_km"`
	DurationMin        float64                `json:"duration_min"`
	TrafficDurationMin float64                `json:"traffic_duration_min"`
	Mode               business.TransportMode `json:"mode"`
	Quality            QualityTier            `json:"quality"`
}

var (
	ErrUnresolved          = errors.New("address unresolved")
	ErrProviderTimeout     = errors.New("provider timeout")
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// GeocodeProvider resolves one free-text address.
type GeocodeProvider interface {
	Geocode(ctx context.Context, address string) (Coordinate, error)
}

// MatrixCell is one origin-destination pair of a provider response. OK=false
// means the provider could not route that pair; the engine falls back to a
// geodesic estimate for it.
type MatrixCell struct {
	DistanceKm         float64
	DurationMin        float64
	TrafficDurationMin float64
	OK                 bool
}

type MatrixProvider interface {
	Matrix(ctx context.Context, origins, destinations []Coordinate, mode business.TransportMode, departure time.Time, model TrafficModel) ([][]MatrixCell, error)
}

// Store is the read-through cache used by the geo components. Redis in
// production, an in-memory map in tests and the batch binary.
type Store interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}
