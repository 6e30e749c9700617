package commute

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"talent-match/internal/domain/business"
	"talent-match/internal/geo"
)

type mapGeocoder struct {
	coords map[string]geo.Coordinate
}

func (m mapGeocoder) Geocode(_ context.Context, address string) (geo.Coordinate, error) {
	c, ok := m.coords[address]
	if !ok {
		return geo.Coordinate{}, errors.New("not found")
	}
	return c, nil
}

type cellFunc func(o, d geo.Coordinate) geo.MatrixCell

func (f cellFunc) Matrix(_ context.Context, origins, destinations []geo.Coordinate, _ business.TransportMode, _ time.Time, _ geo.TrafficModel) ([][]geo.MatrixCell, error) {
	out := make([][]geo.MatrixCell, len(origins))
	for i, o := range origins {
		out[i] = make([]geo.MatrixCell, len(destinations))
		for j, d := range destinations {
			out[i][j] = f(o, d)
		}
	}
	return out, nil
}

func coord(lat, lng float64) geo.Coordinate {
	return geo.Coordinate{Latitude: lat, Longitude: lng, Accuracy: geo.AccuracyRooftop}
}

func newTestAnalyzer(coords map[string]geo.Coordinate, cells cellFunc) *Analyzer {
	geocoder := geo.NewGeocoder(mapGeocoder{coords: coords}, nil, nil, 0, nil)
	engine := geo.NewEngine(cells, nil, 0, geo.TrafficBestGuess, nil)
	return NewAnalyzer(geocoder, engine, nil)
}

func unitWithOffices(offices ...business.Office) business.UnitConfig {
	cfg, _ := business.DefaultConfig(business.UnitGeneral)
	cfg.CostPerKm = 7.0
	cfg.Offices = offices
	return cfg
}

func flatCell(distanceKm, durationMin float64) cellFunc {
	return func(_, _ geo.Coordinate) geo.MatrixCell {
		return geo.MatrixCell{DistanceKm: distanceKm, DurationMin: durationMin, TrafficDurationMin: durationMin, OK: true}
	}
}

func TestAnalyze_NoOffices(t *testing.T) {
	a := newTestAnalyzer(nil, flatCell(1, 1))
	cfg, _ := business.DefaultConfig(business.UnitGeneral)

	if _, err := a.Analyze(context.Background(), cfg, "somewhere"); !errors.Is(err, ErrNoOffices) {
		t.Fatalf("expected ErrNoOffices, got %v", err)
	}
}

func TestAnalyze_UnresolvedCandidate(t *testing.T) {
	a := newTestAnalyzer(map[string]geo.Coordinate{"HQ": coord(-6.2, 106.8)}, flatCell(1, 1))
	unit := unitWithOffices(business.Office{Name: "HQ", Address: "HQ"})

	_, err := a.Analyze(context.Background(), unit, "unknown address")
	if !errors.Is(err, geo.ErrUnresolved) {
		t.Fatalf("expected geo.ErrUnresolved, got %v", err)
	}
}

func TestAnalyze_CommuteCosts(t *testing.T) {
	coords := map[string]geo.Coordinate{
		"home": coord(-6.20, 106.80),
		"HQ":   coord(-6.30, 106.90),
	}
	a := newTestAnalyzer(coords, flatCell(15, 30))
	unit := unitWithOffices(business.Office{Name: "HQ", Address: "HQ"})

	p, err := a.Analyze(context.Background(), unit, "home")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if p.RoundTripKm != 30 {
		t.Fatalf("round trip: got %v km, want 30", p.RoundTripKm)
	}
	if p.TotalMinutes != 60 {
		t.Fatalf("total minutes: got %v, want 60", p.TotalMinutes)
	}
	if p.WeeklyCost != 30*7.0*5 {
		t.Fatalf("weekly cost: got %v, want 1050", p.WeeklyCost)
	}
	if math.Abs(p.MonthlyCost-1050*4.33) > 1e-9 {
		t.Fatalf("monthly cost: got %v, want 4546.5", p.MonthlyCost)
	}
	if p.StressScore < 1 || p.StressScore > 10 {
		t.Fatalf("stress score out of range: %v", p.StressScore)
	}
}

func TestAnalyze_PicksClosestOffice(t *testing.T) {
	near := coord(-6.21, 106.81)
	far := coord(-6.90, 107.60)
	coords := map[string]geo.Coordinate{
		"home": coord(-6.20, 106.80),
		"near": near,
		"far":  far,
	}

	byDest := cellFunc(func(o, d geo.Coordinate) geo.MatrixCell {
		target := d
		if d.Latitude == coords["home"].Latitude && d.Longitude == coords["home"].Longitude {
			target = o // return leg: grade by origin office
		}
		dur := 20.0
		if target.Latitude == far.Latitude {
			dur = 150.0
		}
		return geo.MatrixCell{DistanceKm: dur / 2, DurationMin: dur, TrafficDurationMin: dur, OK: true}
	})

	a := newTestAnalyzer(coords, byDest)
	unit := unitWithOffices(
		business.Office{Name: "Far Branch", Address: "far"},
		business.Office{Name: "Near Branch", Address: "near"},
	)

	p, err := a.Analyze(context.Background(), unit, "home")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Office.Name != "Near Branch" {
		t.Fatalf("expected the closest office, got %q", p.Office.Name)
	}
	if p.TotalMinutes != 40 {
		t.Fatalf("expected 40 round-trip minutes, got %v", p.TotalMinutes)
	}
}

func TestTimeStressFactor(t *testing.T) {
	cfg, _ := business.DefaultConfig(business.UnitStudent) // tolerance 75
	cases := []struct {
		minutes float64
		want    float64
	}{
		{30, 1.0},
		{60, 2.0},
		{105, 3.0},
	}
	for _, tc := range cases {
		if got := TimeStressFactor(cfg, tc.minutes); got != tc.want {
			t.Fatalf("TimeStressFactor(%v) = %v, want %v", tc.minutes, got, tc.want)
		}
	}
}

func TestStressScore_Bounds(t *testing.T) {
	cfg, _ := business.DefaultConfig(business.UnitGeneral)

	easyLeg := geo.RouteEstimate{DistanceKm: 3, DurationMin: 10, TrafficDurationMin: 10, Quality: geo.QualityExcellent}
	easy := StressScore(cfg, easyLeg, easyLeg, 20, 6)
	if easy != 1 {
		t.Fatalf("trivial commute should score 1, got %v", easy)
	}

	brutalLeg := geo.RouteEstimate{DistanceKm: 50, DurationMin: 60, TrafficDurationMin: 120, Quality: geo.QualityPoor}
	brutal := StressScore(cfg, brutalLeg, brutalLeg, 240, 100)
	// sub-factors (3, 4, 3, 3) -> mean 3.25 -> rescaled 7.75
	if math.Abs(brutal-7.75) > 1e-9 {
		t.Fatalf("worst-case commute: got %v, want 7.75", brutal)
	}
	if brutal <= easy || brutal > 10 {
		t.Fatalf("stress ordering violated: easy %v, brutal %v", easy, brutal)
	}
}

func TestRecommendTransport(t *testing.T) {
	all := unitWithOffices()
	cases := []struct {
		km   float64
		want business.TransportMode
	}{
		{1.5, business.ModeWalking},
		{5, business.ModeBicycling},
		{20, business.ModeTransit},
		{40, business.ModeDriving},
	}
	for _, tc := range cases {
		if got := RecommendTransport(all, tc.km); got != tc.want {
			t.Fatalf("RecommendTransport(%v) = %s, want %s", tc.km, got, tc.want)
		}
	}
}

func TestRecommendTransport_EscalatesDisallowedModes(t *testing.T) {
	unit := unitWithOffices()
	unit.AllowedModes = []business.TransportMode{business.ModeTransit, business.ModeDriving}

	if got := RecommendTransport(unit, 1.5); got != business.ModeTransit {
		t.Fatalf("walking distance with walking disallowed should escalate to transit, got %s", got)
	}
}

func TestRecommendFlexibility(t *testing.T) {
	unit := unitWithOffices() // tolerance 90
	cases := []struct {
		minutes float64
		km      float64
		want    business.FlexibilityOption
	}{
		{120, 30, business.FlexRemote},
		{85, 30, business.FlexHybrid},
		{60, 55, business.FlexFlexibleHours},
		{40, 15, business.FlexOffice},
	}
	for _, tc := range cases {
		if got := RecommendFlexibility(unit, tc.minutes, tc.km); got != tc.want {
			t.Fatalf("RecommendFlexibility(%v,%v) = %s, want %s", tc.minutes, tc.km, got, tc.want)
		}
	}
}
