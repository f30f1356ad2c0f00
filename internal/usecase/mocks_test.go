package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/commute-map/internal/domain"
)

// MockMapsProvider is a mock of MapsProvider
type MockMapsProvider struct {
	mock.Mock
}

func (m *MockMapsProvider) GetDirections(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectionsResult), args.Error(1)
}

func (m *MockMapsProvider) Geocode(ctx context.Context, address string) (*domain.Place, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockMapsProvider) Autocomplete(ctx context.Context, input string) ([]domain.PlaceSuggestion, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaceSuggestion), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetDirections(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectionsResult), args.Error(1)
}

func (m *MockCacheRepository) SetDirections(ctx context.Context, req domain.DirectionsRequest, result *domain.DirectionsResult, ttl time.Duration) error {
	args := m.Called(ctx, req, result, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetGeocode(ctx context.Context, address string) (*domain.Place, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockCacheRepository) SetGeocode(ctx context.Context, address string, place *domain.Place, ttl time.Duration) error {
	args := m.Called(ctx, address, place, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSuggestions(ctx context.Context, input string) ([]domain.PlaceSuggestion, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaceSuggestion), args.Error(1)
}

func (m *MockCacheRepository) SetSuggestions(ctx context.Context, input string, suggestions []domain.PlaceSuggestion, ttl time.Duration) error {
	args := m.Called(ctx, input, suggestions, ttl)
	return args.Error(0)
}

func okResult(distance, duration float64) *domain.DirectionsResult {
	return &domain.DirectionsResult{
		Status: domain.DirectionsStatusOK,
		Routes: []domain.Route{{
			Legs: []domain.Leg{{
				Distance: &domain.TextValue{Text: "route", Value: distance},
				Duration: &domain.TextValue{Text: "route", Value: duration},
			}},
			Polyline: []domain.GeoPoint{{Lat: 43.1, Lng: -80.1}, {Lat: 43, Lng: -80}},
		}},
	}
}
