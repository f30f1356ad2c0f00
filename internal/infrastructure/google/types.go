package google

import "github.com/commute-map/internal/domain"

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type directionsResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Routes       []googleRoute `json:"routes"`
}

type googleRoute struct {
	Summary          string      `json:"summary"`
	Legs             []googleLeg `json:"legs"`
	OverviewPolyline struct {
		Points string `json:"points"`
	} `json:"overview_polyline"`
	Bounds struct {
		Northeast latLng `json:"northeast"`
		Southwest latLng `json:"southwest"`
	} `json:"bounds"`
}

type googleLeg struct {
	Distance      *domain.TextValue `json:"distance"`
	Duration      *domain.TextValue `json:"duration"`
	StartAddress  string            `json:"start_address"`
	EndAddress    string            `json:"end_address"`
	StartLocation latLng            `json:"start_location"`
	EndLocation   latLng            `json:"end_location"`
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		PlaceID          string `json:"place_id"`
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location latLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type autocompleteResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Predictions  []struct {
		PlaceID     string `json:"place_id"`
		Description string `json:"description"`
	} `json:"predictions"`
}
