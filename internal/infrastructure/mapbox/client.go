package mapbox

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
	defaultBaseURL = "https://api.mapbox.com"
	drivingProfile = "mapbox/driving"
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	country     string
	logger      *zap.Logger
}

// NewMapboxClient создает клиент Mapbox для маршрутов и геокодирования
func NewMapboxClient(cfg *config.MapsConfig, logger *zap.Logger) repository.MapsProvider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:     baseURL,
		accessToken: cfg.APIKey,
		country:     strings.ToLower(cfg.Region),
		logger:      logger.Named("mapbox"),
	}
}

// GetDirections запрашивает маршрут driving и переводит коды Mapbox в статусы
func (c *client) GetDirections(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResult, error) {
	coordinates := fmt.Sprintf("%f,%f;%f,%f",
		req.Origin.Lng, req.Origin.Lat,
		req.Destination.Lng, req.Destination.Lat)

	params := url.Values{}
	params.Set("geometries", "polyline")
	params.Set("overview", "full")
	params.Set("access_token", c.accessToken)

	reqURL := fmt.Sprintf("%s/directions/v5/%s/%s?%s", c.baseURL, drivingProfile, coordinates, params.Encode())

	c.logger.Debug("Calling Mapbox Directions API",
		zap.String("origin", req.Origin.String()),
		zap.String("destination", req.Destination.String()))

	var resp directionsResponse
	if err := c.get(ctx, reqURL, &resp, http.StatusUnprocessableEntity); err != nil {
		return nil, err
	}

	result := &domain.DirectionsResult{
		Status:       mapCode(resp.Code),
		ErrorMessage: resp.Message,
	}
	if result.Status != domain.DirectionsStatusOK {
		c.logger.Debug("Mapbox Directions returned non-OK code",
			zap.String("code", resp.Code),
			zap.String("message", resp.Message))
		return result, nil
	}

	result.Routes = make([]domain.Route, 0, len(resp.Routes))
	for _, r := range resp.Routes {
		route, err := c.convertRoute(r, resp.Waypoints)
		if err != nil {
			return nil, err
		}
		result.Routes = append(result.Routes, route)
	}

	c.logger.Debug("Mapbox Directions API call successful", zap.Int("routes", len(result.Routes)))

	return result, nil
}

// Geocode возвращает наиболее релевантный объект для адреса
func (c *client) Geocode(ctx context.Context, address string) (*domain.Place, error) {
	features, err := c.geocode(ctx, address, false, 1)
	if err != nil {
		return nil, err
	}
	if len(features) == 0 {
		return nil, fmt.Errorf("no geocoding results for %q", address)
	}

	f := features[0]
	return &domain.Place{
		PlaceID:          f.ID,
		FormattedAddress: f.PlaceName,
		Location:         f.point(),
	}, nil
}

// Autocomplete возвращает места-кандидаты по частичному вводу
func (c *client) Autocomplete(ctx context.Context, input string) ([]domain.PlaceSuggestion, error) {
	features, err := c.geocode(ctx, input, true, 5)
	if err != nil {
		return nil, err
	}

	suggestions := make([]domain.PlaceSuggestion, 0, len(features))
	for _, f := range features {
		p := f.point()
		suggestions = append(suggestions, domain.PlaceSuggestion{
			PlaceID:     f.ID,
			Description: f.PlaceName,
			Location:    &p,
		})
	}
	return suggestions, nil
}

func (c *client) geocode(ctx context.Context, query string, autocomplete bool, limit int) ([]feature, error) {
	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("autocomplete", fmt.Sprintf("%t", autocomplete))
	params.Set("limit", fmt.Sprintf("%d", limit))
	if c.country != "" {
		params.Set("country", c.country)
	}

	reqURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		c.baseURL, url.PathEscape(query), params.Encode())

	var resp geocodingResponse
	if err := c.get(ctx, reqURL, &resp); err != nil {
		return nil, err
	}
	return resp.Features, nil
}

// get декодирует JSON в out. Коды из decodable несут тело ошибки Mapbox,
// которое разбирает вызывающий.
func (c *client) get(ctx context.Context, reqURL string, out interface{}, decodable ...int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && !contains(decodable, resp.StatusCode) {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("mapbox API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *client) convertRoute(r mapboxRoute, waypoints []waypoint) (domain.Route, error) {
	route := domain.Route{
		Summary: r.WeightName,
		Legs:    make([]domain.Leg, 0, len(r.Legs)),
	}

	for i, l := range r.Legs {
		leg := domain.Leg{
			Distance: &domain.TextValue{Text: formatDistance(l.Distance), Value: l.Distance},
			Duration: &domain.TextValue{Text: formatDuration(l.Duration), Value: l.Duration},
		}
		if i < len(waypoints) {
			leg.StartAddress = waypoints[i].Name
			leg.StartLocation = waypoints[i].point()
		}
		if i+1 < len(waypoints) {
			leg.EndAddress = waypoints[i+1].Name
			leg.EndLocation = waypoints[i+1].point()
		}
		if l.Summary != "" {
			route.Summary = l.Summary
		}
		route.Legs = append(route.Legs, leg)
	}

	if r.Geometry != "" {
		path, err := utils.DecodePolyline(r.Geometry)
		if err != nil {
			return domain.Route{}, err
		}
		route.Polyline = path
	}

	return route, nil
}

func mapCode(code string) domain.DirectionsStatus {
	switch code {
	case "Ok":
		return domain.DirectionsStatusOK
	case "NoRoute", "NoSegment":
		return domain.DirectionsStatusZeroResults
	case "InvalidInput":
		return domain.DirectionsStatusInvalidRequest
	case "ProfileNotFound":
		return domain.DirectionsStatusNotFound
	case "NotAuthorized", "Forbidden":
		return domain.DirectionsStatusRequestDenied
	case "TooManyRequests":
		return domain.DirectionsStatusOverQueryLimit
	default:
		return domain.DirectionsStatusUnknownError
	}
}

func formatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

func formatDuration(seconds float64) string {
	minutes := int(seconds/60 + 0.5)
	if minutes < 60 {
		if minutes == 1 {
			return "1 min"
		}
		return fmt.Sprintf("%d mins", minutes)
	}
	unit := "hours"
	if minutes/60 == 1 {
		unit = "hour"
	}
	return fmt.Sprintf("%d %s %d mins", minutes/60, unit, minutes%60)
}

func contains(codes []int, code int) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
