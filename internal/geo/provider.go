package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"talent-match/internal/domain/business"
)

// httpGeocodeProvider is a JSON client for a forward-geocoding API of the
// common shape GET {base}/geocode?q=<address>&key=<key>.
type httpGeocodeProvider struct {
	baseURL  string
	apiKey   string
	accuracy Accuracy
	client   *http.Client
}

type geocodeAPIResult struct {
	Latitude         float64 `json:"lat"`
	Longitude        float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
	Precision        string  `json:"precision"`
}

type geocodeAPIResponse struct {
	Results []geocodeAPIResult `json:"results"`
	Status  string             `json:"status"`
}

// NewHTTPGeocodeProvider builds a provider against the given base URL.
// defaultAccuracy is used when the API reports no precision, which is how the
// lower-accuracy fallback provider is distinguished from the primary one.
func NewHTTPGeocodeProvider(baseURL, apiKey string, defaultAccuracy Accuracy) GeocodeProvider {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if defaultAccuracy == "" {
		defaultAccuracy = AccuracyLocality
	}
	return &httpGeocodeProvider{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		accuracy: defaultAccuracy,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *httpGeocodeProvider) Geocode(ctx context.Context, address string) (Coordinate, error) {
	if p == nil || p.client == nil {
		return Coordinate{}, ErrProviderUnavailable
	}

	q := url.Values{}
	q.Set("q", address)
	if p.apiKey != "" {
		q.Set("key", p.apiKey)
	}
	endpoint := p.baseURL + "/geocode?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Coordinate{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Coordinate{}, fmt.Errorf("%w: status=%d body=%s", ErrProviderUnavailable, resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	var out geocodeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Coordinate{}, err
	}
	if len(out.Results) == 0 {
		return Coordinate{}, ErrUnresolved
	}

	best := out.Results[0]
	acc := p.accuracy
	switch strings.ToLower(best.Precision) {
	case "rooftop":
		acc = AccuracyRooftop
	case "street", "range_interpolated":
		acc = AccuracyStreet
	case "locality", "approximate":
		acc = AccuracyLocality
	}

	resolved := strings.TrimSpace(best.FormattedAddress)
	if resolved == "" {
		resolved = address
	}
	return Coordinate{
		Latitude:        best.Latitude,
		Longitude:       best.Longitude,
		ResolvedAddress: resolved,
		Accuracy:        acc,
	}, nil
}

// httpMatrixProvider is a JSON client for a distance-matrix API of the common
// shape POST {base}/matrix.
type httpMatrixProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type matrixAPIPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type matrixAPIRequest struct {
	Origins      []matrixAPIPoint `json:"origins"`
	Destinations []matrixAPIPoint `json:"destinations"`
	Mode         string           `json:"mode"`
	DepartureAt  string           `json:"departure_at,omitempty"`
	TrafficModel string           `json:"traffic_model,omitempty"`
}

type matrixAPICell struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	TrafficSeconds  float64 `json:"duration_in_traffic_seconds"`
	Status          string  `json:"status"`
}

type matrixAPIResponse struct {
	Rows [][]matrixAPICell `json:"rows"`
}

func NewHTTPMatrixProvider(baseURL, apiKey string) MatrixProvider {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &httpMatrixProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (p *httpMatrixProvider) Matrix(ctx context.Context, origins, destinations []Coordinate, mode business.TransportMode, departure time.Time, model TrafficModel) ([][]MatrixCell, error) {
	if p == nil || p.client == nil {
		return nil, ErrProviderUnavailable
	}
	if len(origins) == 0 || len(destinations) == 0 {
		return nil, errors.New("empty coordinate set")
	}

	body := matrixAPIRequest{
		Origins:      toAPIPoints(origins),
		Destinations: toAPIPoints(destinations),
		Mode:         string(mode),
	}
	if !departure.IsZero() {
		body.DepartureAt = departure.UTC().Format(time.RFC3339)
	}
	if model != "" {
		body.TrafficModel = string(model)
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/matrix", strings.NewReader(string(b)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status=%d body=%s", ErrProviderUnavailable, resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	var out matrixAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	cells := make([][]MatrixCell, len(out.Rows))
	for i, row := range out.Rows {
		cells[i] = make([]MatrixCell, len(row))
		for j, c := range row {
			cells[i][j] = MatrixCell{
				DistanceKm:         c.DistanceMeters / 1000,
				DurationMin:        c.DurationSeconds / 60,
				TrafficDurationMin: c.TrafficSeconds / 60,
				OK:                 strings.EqualFold(c.Status, "ok") && c.DurationSeconds > 0,
			}
		}
	}
	return cells, nil
}

func toAPIPoints(coords []Coordinate) []matrixAPIPoint {
	pts := make([]matrixAPIPoint, 0, len(coords))
	for _, c := range coords {
		pts = append(pts, matrixAPIPoint{Lat: c.Latitude, Lng: c.Longitude})
	}
	return pts
}
