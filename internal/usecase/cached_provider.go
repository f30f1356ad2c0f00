package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/commute-map/internal/domain"
	"github.com/commute-map/internal/domain/repository"
)

// CacheTTLs - время жизни каждого вида кешируемых ответов провайдера
type CacheTTLs struct {
	Directions   time.Duration
	Geocode      time.Duration
	Autocomplete time.Duration
}

// CachedProvider - read-through кеш перед провайдером карт.
// Ошибки кеша логируются и не доходят до вызывающего.
type CachedProvider struct {
	provider  repository.MapsProvider
	cacheRepo repository.CacheRepository
	ttls      CacheTTLs
	logger    *zap.Logger
}

// NewCachedProvider - оборачивает provider кешем cacheRepo
func NewCachedProvider(
	provider repository.MapsProvider,
	cacheRepo repository.CacheRepository,
	ttls CacheTTLs,
	logger *zap.Logger,
) *CachedProvider {
	return &CachedProvider{
		provider:  provider,
		cacheRepo: cacheRepo,
		ttls:      ttls,
		logger:    logger,
	}
}

// GetDirections - кешируются только OK результаты
func (p *CachedProvider) GetDirections(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResult, error) {
	cached, err := p.cacheRepo.GetDirections(ctx, req)
	if err != nil {
		p.logger.Warn("Directions cache read failed", zap.Error(err))
	} else if cached != nil {
		p.logger.Debug("Directions cache hit", zap.String("key", req.CacheKey()))
		return cached, nil
	}

	result, err := p.provider.GetDirections(ctx, req)
	if err != nil {
		return nil, err
	}

	if result.OK() {
		if err := p.cacheRepo.SetDirections(ctx, req, result, p.ttls.Directions); err != nil {
			p.logger.Warn("Directions cache write failed", zap.Error(err))
		}
	}

	return result, nil
}

func (p *CachedProvider) Geocode(ctx context.Context, address string) (*domain.Place, error) {
	cached, err := p.cacheRepo.GetGeocode(ctx, address)
	if err != nil {
		p.logger.Warn("Geocode cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	place, err := p.provider.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	if err := p.cacheRepo.SetGeocode(ctx, address, place, p.ttls.Geocode); err != nil {
		p.logger.Warn("Geocode cache write failed", zap.Error(err))
	}

	return place, nil
}

func (p *CachedProvider) Autocomplete(ctx context.Context, input string) ([]domain.PlaceSuggestion, error) {
	cached, err := p.cacheRepo.GetSuggestions(ctx, input)
	if err != nil {
		p.logger.Warn("Autocomplete cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	suggestions, err := p.provider.Autocomplete(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := p.cacheRepo.SetSuggestions(ctx, input, suggestions, p.ttls.Autocomplete); err != nil {
		p.logger.Warn("Autocomplete cache write failed", zap.Error(err))
	}

	return suggestions, nil
}
