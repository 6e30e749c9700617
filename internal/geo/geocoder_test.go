package geo

import (
	"context"
	"errors"
	"testing"

	"talent-match/internal/infrastructure/cache"
)

type fakeGeocodeProvider struct {
	coord Coordinate
	err   error
	calls int
}

func (f *fakeGeocodeProvider) Geocode(_ context.Context, _ string) (Coordinate, error) {
	f.calls++
	if f.err != nil {
		return Coordinate{}, f.err
	}
	return f.coord, nil
}

func resolved(lat, lng float64) Coordinate {
	return Coordinate{Latitude: lat, Longitude: lng, Accuracy: AccuracyRooftop}
}

func TestResolve_PrimarySucceeds(t *testing.T) {
	primary := &fakeGeocodeProvider{coord: resolved(-6.2, 106.8)}
	fallback := &fakeGeocodeProvider{coord: resolved(0, 0)}
	g := NewGeocoder(primary, fallback, nil, 0, nil)

	got, err := g.Resolve(context.Background(), "general", "Jl. Sudirman 1, Jakarta")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Latitude != -6.2 {
		t.Fatalf("expected primary coordinate, got %+v", got)
	}
	if fallback.calls != 0 {
		t.Fatalf("fallback should not be consulted when primary succeeds")
	}
}

func TestResolve_FallbackChain(t *testing.T) {
	primary := &fakeGeocodeProvider{err: errors.New("quota exceeded")}
	fallback := &fakeGeocodeProvider{coord: resolved(-6.9, 107.6)}
	g := NewGeocoder(primary, fallback, nil, 0, nil)

	got, err := g.Resolve(context.Background(), "general", "Bandung")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Latitude != -6.9 {
		t.Fatalf("expected fallback coordinate, got %+v", got)
	}
	if primary.calls != 1 || fallback.calls != 1 {
		t.Fatalf("expected one call each, got %d/%d", primary.calls, fallback.calls)
	}
}

func TestResolve_TotalFailureDegrades(t *testing.T) {
	primary := &fakeGeocodeProvider{err: errors.New("down")}
	fallback := &fakeGeocodeProvider{err: errors.New("down")}
	g := NewGeocoder(primary, fallback, nil, 0, nil)

	got, err := g.Resolve(context.Background(), "general", "nowhere")
	if !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved, got %v", err)
	}
	if got.Resolved() {
		t.Fatalf("coordinate must carry unresolved accuracy, got %+v", got)
	}
}

func TestResolve_EmptyAddress(t *testing.T) {
	g := NewGeocoder(&fakeGeocodeProvider{}, nil, nil, 0, nil)
	if _, err := g.Resolve(context.Background(), "general", "   "); !errors.Is(err, ErrUnresolved) {
		t.Fatalf("expected ErrUnresolved for blank address, got %v", err)
	}
}

func TestResolve_CachesHits(t *testing.T) {
	primary := &fakeGeocodeProvider{coord: resolved(-6.2, 106.8)}
	store := cache.NewMemory()
	g := NewGeocoder(primary, nil, store, 0, nil)

	for i := 0; i < 3; i++ {
		if _, err := g.Resolve(context.Background(), "general", "  Jl. Sudirman 1,   JAKARTA "); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	}
	if primary.calls != 1 {
		t.Fatalf("normalized address should hit the cache after the first call, got %d calls", primary.calls)
	}
}

func TestNormalizeAddress(t *testing.T) {
	got := normalizeAddress("  Jl. Sudirman 1,   JAKARTA ")
	want := "jl. sudirman 1, jakarta"
	if got != want {
		t.Fatalf("normalizeAddress: got %q, want %q", got, want)
	}
}
