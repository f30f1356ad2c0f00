package repository

import (
	"context"

	"github.com/commute-map/internal/domain"
)

// DirectionsRepository - провайдер маршрутов.
// Отказ провайдера (ZERO_RESULTS, REQUEST_DENIED, ...) возвращается как результат
// с не-OK статусом; err только для ошибок транспорта и декодирования.
type DirectionsRepository interface {
	GetDirections(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResult, error)
}

// GeocodeRepository - провайдер поиска адресов
type GeocodeRepository interface {
	// Geocode преобразует адрес в одно место
	Geocode(ctx context.Context, address string) (*domain.Place, error)

	// Autocomplete возвращает подсказки адресов по частичному вводу
	Autocomplete(ctx context.Context, input string) ([]domain.PlaceSuggestion, error)
}

// MapsProvider - провайдер маршрутов и геокодирования
type MapsProvider interface {
	DirectionsRepository
	GeocodeRepository
}
