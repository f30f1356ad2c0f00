package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/commute-map/internal/config"
	"github.com/commute-map/internal/domain"
	"github.com/commute-map/internal/domain/repository"
	"github.com/commute-map/internal/pkg/utils"
	"go.uber.org/zap"
)

const (
	defaultBaseURL       = "https://maps.googleapis.com/maps/api"
	directionsEndpoint   = "/directions/json"
	geocodeEndpoint      = "/geocode/json"
	autocompleteEndpoint = "/place/autocomplete/json"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	region     string
	logger     *zap.Logger
}

// NewGoogleClient создает клиент Google Maps Platform для маршрутов и геокодирования
func NewGoogleClient(cfg *config.MapsConfig, logger *zap.Logger) repository.MapsProvider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		region:     cfg.Region,
		logger:     logger.Named("google"),
	}
}

// GetDirections запрашивает маршрут. Не-OK статус возвращается результатом, а не ошибкой.
func (c *client) GetDirections(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResult, error) {
	mode := req.Mode
	if mode == "" {
		mode = domain.TravelModeDriving
	}

	params := url.Values{}
	params.Set("origin", formatLatLng(req.Origin))
	params.Set("destination", formatLatLng(req.Destination))
	params.Set("mode", string(mode))
	params.Set("units", "metric")
	params.Set("key", c.apiKey)
	if c.region != "" {
		params.Set("region", c.region)
	}

	var resp directionsResponse
	if err := c.get(ctx, directionsEndpoint, params, &resp); err != nil {
		return nil, err
	}

	result := &domain.DirectionsResult{
		Status:       domain.DirectionsStatus(resp.Status),
		ErrorMessage: resp.ErrorMessage,
	}
	if result.Status != domain.DirectionsStatusOK {
		c.logger.Debug("Directions returned non-OK status",
			zap.String("status", resp.Status),
			zap.String("error_message", resp.ErrorMessage))
		return result, nil
	}

	result.Routes = make([]domain.Route, 0, len(resp.Routes))
	for _, r := range resp.Routes {
		route, err := convertRoute(r)
		if err != nil {
			return nil, err
		}
		result.Routes = append(result.Routes, route)
	}

	c.logger.Debug("Directions call successful", zap.Int("routes", len(result.Routes)))

	return result, nil
}

// Geocode возвращает первое подходящее место для адреса
func (c *client) Geocode(ctx context.Context, address string) (*domain.Place, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)
	if c.region != "" {
		params.Set("region", c.region)
	}

	var resp geocodeResponse
	if err := c.get(ctx, geocodeEndpoint, params, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "OK" || len(resp.Results) == 0 {
		return nil, fmt.Errorf("geocode status %s: %s", resp.Status, resp.ErrorMessage)
	}

	first := resp.Results[0]
	return &domain.Place{
		PlaceID:          first.PlaceID,
		FormattedAddress: first.FormattedAddress,
		Location:         domain.GeoPoint{Lat: first.Geometry.Location.Lat, Lng: first.Geometry.Location.Lng},
	}, nil
}

// Autocomplete возвращает подсказки мест по частичному вводу
func (c *client) Autocomplete(ctx context.Context, input string) ([]domain.PlaceSuggestion, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("key", c.apiKey)
	if c.region != "" {
		params.Set("components", "country:"+c.region)
	}

	var resp autocompleteResponse
	if err := c.get(ctx, autocompleteEndpoint, params, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []domain.PlaceSuggestion{}, nil
	default:
		return nil, fmt.Errorf("autocomplete status %s: %s", resp.Status, resp.ErrorMessage)
	}

	suggestions := make([]domain.PlaceSuggestion, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		suggestions = append(suggestions, domain.PlaceSuggestion{
			PlaceID:     p.PlaceID,
			Description: p.Description,
		})
	}

	return suggestions, nil
}

func (c *client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	c.logger.Debug("Calling Google Maps API", zap.String("endpoint", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Google Maps API returned error",
			zap.String("endpoint", endpoint),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("google maps API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func convertRoute(r googleRoute) (domain.Route, error) {
	route := domain.Route{
		Summary: r.Summary,
		Legs:    make([]domain.Leg, 0, len(r.Legs)),
		Bounds: &domain.BoundingBox{
			MinLat: r.Bounds.Southwest.Lat,
			MinLng: r.Bounds.Southwest.Lng,
			MaxLat: r.Bounds.Northeast.Lat,
			MaxLng: r.Bounds.Northeast.Lng,
		},
	}

	for _, l := range r.Legs {
		route.Legs = append(route.Legs, domain.Leg{
			Distance:      l.Distance,
			Duration:      l.Duration,
			StartAddress:  l.StartAddress,
			EndAddress:    l.EndAddress,
			StartLocation: domain.GeoPoint{Lat: l.StartLocation.Lat, Lng: l.StartLocation.Lng},
			EndLocation:   domain.GeoPoint{Lat: l.EndLocation.Lat, Lng: l.EndLocation.Lng},
		})
	}

	if r.OverviewPolyline.Points != "" {
		path, err := utils.DecodePolyline(r.OverviewPolyline.Points)
		if err != nil {
			return domain.Route{}, err
		}
		route.Polyline = path
	}

	return route, nil
}

func formatLatLng(p domain.GeoPoint) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}
