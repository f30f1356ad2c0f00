package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/commute-map/internal/domain"
	"github.com/commute-map/internal/domain/repository"
	"go.uber.org/zap"
)

type cacheRepository struct {
	Store
	logger *zap.Logger
}

// NewCacheRepository adds typed provider-response accessors on top of a raw Store
func NewCacheRepository(store Store, logger *zap.Logger) repository.CacheRepository {
	return &cacheRepository{
		Store:  store,
		logger: logger,
	}
}

func (r *cacheRepository) GetDirections(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResult, error) {
	var result domain.DirectionsResult
	found, err := r.getJSON(ctx, req.CacheKey(), &result)
	if err != nil || !found {
		return nil, err
	}
	return &result, nil
}

func (r *cacheRepository) SetDirections(ctx context.Context, req domain.DirectionsRequest, result *domain.DirectionsResult, ttl time.Duration) error {
	return r.setJSON(ctx, req.CacheKey(), result, ttl)
}

func (r *cacheRepository) GetGeocode(ctx context.Context, address string) (*domain.Place, error) {
	var place domain.Place
	found, err := r.getJSON(ctx, domain.GeocodeCacheKey(address), &place)
	if err != nil || !found {
		return nil, err
	}
	return &place, nil
}

func (r *cacheRepository) SetGeocode(ctx context.Context, address string, place *domain.Place, ttl time.Duration) error {
	return r.setJSON(ctx, domain.GeocodeCacheKey(address), place, ttl)
}

func (r *cacheRepository) GetSuggestions(ctx context.Context, input string) ([]domain.PlaceSuggestion, error) {
	var suggestions []domain.PlaceSuggestion
	found, err := r.getJSON(ctx, domain.SuggestionsCacheKey(input), &suggestions)
	if err != nil || !found {
		return nil, err
	}
	if suggestions == nil {
		suggestions = []domain.PlaceSuggestion{}
	}
	return suggestions, nil
}

func (r *cacheRepository) SetSuggestions(ctx context.Context, input string, suggestions []domain.PlaceSuggestion, ttl time.Duration) error {
	return r.setJSON(ctx, domain.SuggestionsCacheKey(input), suggestions, ttl)
}

func (r *cacheRepository) getJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := r.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if data == nil {
		return false, nil // Cache miss
	}

	if err := json.Unmarshal(data, out); err != nil {
		r.logger.Error("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (r *cacheRepository) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal cache value", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal %s: %w", key, err)
	}

	return r.Set(ctx, key, data, ttl)
}
