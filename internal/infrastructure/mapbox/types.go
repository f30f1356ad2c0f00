package mapbox

import "github.com/commute-map/internal/domain"

type directionsResponse struct {
	Code      string        `json:"code"`
	Message   string        `json:"message"`
	Routes    []mapboxRoute `json:"routes"`
	Waypoints []waypoint    `json:"waypoints"`
}

type mapboxRoute struct {
	Distance   float64     `json:"distance"`
	Duration   float64     `json:"duration"`
	Geometry   string      `json:"geometry"`
	WeightName string      `json:"weight_name"`
	Legs       []mapboxLeg `json:"legs"`
}

type mapboxLeg struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
	Summary  string  `json:"summary"`
}

// location в формате [lng, lat]
type waypoint struct {
	Name     string    `json:"name"`
	Location []float64 `json:"location"`
}

func (w waypoint) point() domain.GeoPoint {
	if len(w.Location) < 2 {
		return domain.GeoPoint{}
	}
	return domain.GeoPoint{Lat: w.Location[1], Lng: w.Location[0]}
}

type geocodingResponse struct {
	Features []feature `json:"features"`
}

// center в формате [lng, lat]
type feature struct {
	ID        string    `json:"id"`
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"`
}

func (f feature) point() domain.GeoPoint {
	if len(f.Center) < 2 {
		return domain.GeoPoint{}
	}
	return domain.GeoPoint{Lat: f.Center[1], Lng: f.Center[0]}
}
