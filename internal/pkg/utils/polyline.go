package utils

import (
	"fmt"

	"github.com/commute-map/internal/domain"
	"github.com/twpayne/go-polyline"
)

// DecodePolyline decodes an encoded polyline (precision 5) into points
func DecodePolyline(encoded string) ([]domain.GeoPoint, error) {
	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode polyline: %w", err)
	}

	points := make([]domain.GeoPoint, len(coords))
	for i, c := range coords {
		points[i] = domain.GeoPoint{Lat: c[0], Lng: c[1]}
	}
	return points, nil
}
