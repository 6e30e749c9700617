package geo

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

const geocodeCacheTTL = 24 * time.Hour

// Geocoder resolves addresses through a primary provider and a lower-accuracy
// fallback. A failure of both degrades to an unresolved coordinate; it never
// surfaces a raw provider error to the caller.
type Geocoder struct {
	primary  GeocodeProvider
	fallback GeocodeProvider
	store    Store
	timeout  time.Duration
	logger   *zap.Logger
}

func NewGeocoder(primary, fallback GeocodeProvider, store Store, timeout time.Duration, logger *zap.Logger) *Geocoder {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Geocoder{primary: primary, fallback: fallback, store: store, timeout: timeout, logger: logger}
}

// Resolve returns the coordinate for an address. Successful resolutions are
// cached per (business unit, normalized address) for 24h. On total failure the
// returned coordinate carries AccuracyUnresolved and err is ErrUnresolved.
func (g *Geocoder) Resolve(ctx context.Context, unitID, address string) (Coordinate, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return unresolvedCoordinate(address), ErrUnresolved
	}

	key := cacheKey(unitID, address)
	if g.store != nil {
		var cached Coordinate
		hit, err := g.store.GetJSON(ctx, key, &cached)
		if err == nil && hit && cached.Resolved() {
			return cached, nil
		}
	}

	coord, err := g.resolveWithProvider(ctx, g.primary, address)
	if err != nil {
		g.logger.Debug("primary geocode failed, trying fallback",
			zap.String("address", address), zap.Error(err))
		coord, err = g.resolveWithProvider(ctx, g.fallback, address)
	}
	if err != nil {
		g.logger.Warn("address unresolved by all providers", zap.String("address", address))
		return unresolvedCoordinate(address), ErrUnresolved
	}

	if g.store != nil {
		if cerr := g.store.SetJSON(ctx, key, coord, geocodeCacheTTL); cerr != nil {
			g.logger.Debug("geocode cache write failed", zap.Error(cerr))
		}
	}
	return coord, nil
}

func (g *Geocoder) resolveWithProvider(ctx context.Context, p GeocodeProvider, address string) (Coordinate, error) {
	if p == nil {
		return Coordinate{}, ErrProviderUnavailable
	}
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	coord, err := p.Geocode(callCtx, address)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return Coordinate{}, ErrProviderTimeout
		}
		return Coordinate{}, err
	}
	if !coord.Resolved() {
		return Coordinate{}, ErrUnresolved
	}
	return coord, nil
}

func cacheKey(unitID, address string) string {
	return "geo:geocode:" + strings.TrimSpace(unitID) + ":" + normalizeAddress(address)
}

func normalizeAddress(address string) string {
	return strings.Join(strings.Fields(strings.ToLower(address)), " ")
}

func unresolvedCoordinate(address string) Coordinate {
	return Coordinate{ResolvedAddress: address, Accuracy: AccuracyUnresolved}
}
