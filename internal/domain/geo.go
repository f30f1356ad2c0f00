package domain

import (
	"fmt"
	"strconv"
)

// GeoPoint - координата WGS84 в градусах. Неизменяемое значение.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Key идентифицирует точку по значению: у равных координат один ключ.
func (p GeoPoint) Key() string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

// RoundedKey - огрубленный ключ для кеша провайдера (~1 м при 5 знаках).
func (p GeoPoint) RoundedKey() string {
	return fmt.Sprintf("%.5f,%.5f", p.Lat, p.Lng)
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%f, %f)", p.Lat, p.Lng)
}

// BoundingBox - охватывающий прямоугольник набора точек
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// Place - геокодированный адрес
type Place struct {
	PlaceID          string   `json:"place_id,omitempty"`
	FormattedAddress string   `json:"formatted_address"`
	Location         GeoPoint `json:"location"`
}

// PlaceSuggestion - один вариант автодополнения
type PlaceSuggestion struct {
	PlaceID     string    `json:"place_id,omitempty"`
	Description string    `json:"description"`
	Location    *GeoPoint `json:"location,omitempty"`
}
