package domain

import "strings"

// CacheKey - ключ запроса маршрута в кеше провайдера
func (r DirectionsRequest) CacheKey() string {
	mode := r.Mode
	if mode == "" {
		mode = TravelModeDriving
	}
	return "directions:" + string(mode) + ":" + r.Origin.RoundedKey() + ":" + r.Destination.RoundedKey()
}

// GeocodeCacheKey - ключ геокодирования; регистр и пробелы не учитываются
func GeocodeCacheKey(address string) string {
	return "geocode:" + normalizeQuery(address)
}

// SuggestionsCacheKey - ключ автодополнения
func SuggestionsCacheKey(input string) string {
	return "autocomplete:" + normalizeQuery(input)
}

func normalizeQuery(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
