package geo

import (
	"context"
	"fmt"
	"math"
	"time"

	"talent-match/internal/domain/business"

	"go.uber.org/zap"
)

const matrixCacheTTL = 6 * time.Hour

// Average speeds assumed for geodesic fallback estimates, in km/h.
var fallbackSpeedKmh = map[business.TransportMode]float64{
	business.ModeDriving:   30,
	business.ModeWalking:   5,
	business.ModeBicycling: 15,
	business.ModeTransit:   25,
}

// Engine turns coordinate sets into route estimates. Provider failures degrade
// per pair to a geodesic estimate tagged QualityApproximate.
type Engine struct {
	provider MatrixProvider
	store    Store
	timeout  time.Duration
	model    TrafficModel
	logger   *zap.Logger
}

func NewEngine(provider MatrixProvider, store Store, timeout time.Duration, model TrafficModel, logger *zap.Logger) *Engine {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	if model == "" {
		model = TrafficBestGuess
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{provider: provider, store: store, timeout: timeout, model: model, logger: logger}
}

// Estimate computes an N x M matrix of route estimates. Traffic-adjusted
// durations are only meaningful for driving; other modes carry the free-flow
// duration in both fields.
func (e *Engine) Estimate(ctx context.Context, origins, destinations []Coordinate, mode business.TransportMode, departure time.Time) [][]RouteEstimate {
	out := make([][]RouteEstimate, len(origins))
	for i := range out {
		out[i] = make([]RouteEstimate, len(destinations))
	}
	if len(origins) == 0 || len(destinations) == 0 {
		return out
	}

	key := matrixCacheKey(origins, destinations, mode, departure)
	if e.store != nil {
		var cached [][]RouteEstimate
		hit, err := e.store.GetJSON(ctx, key, &cached)
		if err == nil && hit && len(cached) == len(origins) {
			return cached
		}
	}

	cells, err := e.requestMatrix(ctx, origins, destinations, mode, departure)
	if err != nil {
		e.logger.Warn("distance matrix provider failed, using geodesic estimates",
			zap.String("mode", string(mode)), zap.Error(err))
		cells = nil
	}

	for i, o := range origins {
		for j, d := range destinations {
			var cell MatrixCell
			if cells != nil && i < len(cells) && j < len(cells[i]) {
				cell = cells[i][j]
			}
			if cell.OK {
				out[i][j] = routeFromCell(o, d, mode, cell)
			} else {
				out[i][j] = GeodesicEstimate(o, d, mode)
			}
		}
	}

	if e.store != nil {
		if cerr := e.store.SetJSON(ctx, key, out, matrixCacheTTL); cerr != nil {
			e.logger.Debug("matrix cache write failed", zap.Error(cerr))
		}
	}
	return out
}

func (e *Engine) requestMatrix(ctx context.Context, origins, destinations []Coordinate, mode business.TransportMode, departure time.Time) ([][]MatrixCell, error) {
	if e.provider == nil {
		return nil, ErrProviderUnavailable
	}
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	model := e.model
	if mode != business.ModeDriving {
		model = ""
	}
	cells, err := e.provider.Matrix(callCtx, origins, destinations, mode, departure, model)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return nil, ErrProviderTimeout
		}
		return nil, err
	}
	return cells, nil
}

func routeFromCell(o, d Coordinate, mode business.TransportMode, cell MatrixCell) RouteEstimate {
	traffic := cell.TrafficDurationMin
	if mode != business.ModeDriving || traffic <= 0 {
		traffic = cell.DurationMin
	}
	return RouteEstimate{
		Origin:             o,
		Destination:        d,
		DistanceKm:         cell.DistanceKm,
		DurationMin:        cell.DurationMin,
		TrafficDurationMin: traffic,
		Mode:               mode,
		Quality:            QualityForRatio(trafficRatio(traffic, cell.DurationMin)),
	}
}

// GeodesicEstimate builds an approximate route from the great-circle distance
// and an assumed average speed for the mode.
func GeodesicEstimate(o, d Coordinate, mode business.TransportMode) RouteEstimate {
	speed, ok := fallbackSpeedKmh[mode]
	if !ok {
		speed = fallbackSpeedKmh[business.ModeDriving]
	}
	km := HaversineKm(o, d)
	minutes := km / speed * 60

	return RouteEstimate{
		Origin:             o,
		Destination:        d,
		DistanceKm:         km,
		DurationMin:        minutes,
		TrafficDurationMin: minutes,
		Mode:               mode,
		Quality:            QualityApproximate,
	}
}

// QualityForRatio classifies traffic degradation against free flow.
func QualityForRatio(ratio float64) QualityTier {
	switch {
	case ratio <= 1.1:
		return QualityExcellent
	case ratio <= 1.3:
		return QualityGood
	case ratio <= 1.6:
		return QualityFair
	default:
		return QualityPoor
	}
}

func trafficRatio(traffic, freeFlow float64) float64 {
	if freeFlow <= 0 {
		return 1
	}
	return traffic / freeFlow
}

const earthRadiusKm = 6371.0

// HaversineKm is the great-circle distance between two coordinates.
func HaversineKm(a, b Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func matrixCacheKey(origins, destinations []Coordinate, mode business.TransportMode, departure time.Time) string {
	sig := fmt.Sprintf("geo:matrix:%s:%s", mode, departure.UTC().Format("2006-01-02T15:04"))
	for _, o := range origins {
		sig += fmt.Sprintf(":%.5f,%.5f", o.Latitude, o.Longitude)
	}
	sig += "|"
	for _, d := range destinations {
		sig += fmt.Sprintf(":%.5f,%.5f", d.Latitude, d.Longitude)
	}
	return sig
}
