package repository

import (
	"context"
	"time"

	"github.com/commute-map/internal/domain"
)

// CacheRepository определяет методы кеша ответов провайдера.
// Промах возвращается как (nil, nil), а не как ошибка.
type CacheRepository interface {
	// Get получает значение из кеша по ключу
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete удаляет значение из кеша
	Delete(ctx context.Context, key string) error

	// Exists проверяет существование ключа
	Exists(ctx context.Context, key string) (bool, error)

	// GetDirections получает маршрут для пары origin/destination из кеша
	GetDirections(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResult, error)

	// SetDirections сохраняет маршрут в кеше
	SetDirections(ctx context.Context, req domain.DirectionsRequest, result *domain.DirectionsResult, ttl time.Duration) error

	// GetGeocode получает результат геокодирования адреса из кеша
	GetGeocode(ctx context.Context, address string) (*domain.Place, error)

	// SetGeocode сохраняет результат геокодирования в кеше
	SetGeocode(ctx context.Context, address string, place *domain.Place, ttl time.Duration) error

	// GetSuggestions получает подсказки автодополнения из кеша
	GetSuggestions(ctx context.Context, input string) ([]domain.PlaceSuggestion, error)

	// SetSuggestions сохраняет подсказки автодополнения в кеше
	SetSuggestions(ctx context.Context, input string, suggestions []domain.PlaceSuggestion, ttl time.Duration) error
}
