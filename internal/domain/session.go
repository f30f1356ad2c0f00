package domain

import "time"

// MapSession - состояние оркестратора для одной сессии браузера.
// Office, Route и Houses меняет только MapUseCase.
type MapSession struct {
	ID        string
	Office    *GeoPoint
	Route     *DirectionsResult
	Houses    []GeoPoint
	HousesKey string

	// PanTo - одноразовая команда для карты; читатель ее забирает.
	PanTo *GeoPoint

	// OfficeVersion растет при каждом выборе офиса, RouteSeq при каждом запросе маршрута.
	OfficeVersion uint64
	RouteSeq      uint64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MapState - состояние сессии
type MapState string

const (
	MapStateNoOffice       MapState = "no_office"
	MapStateOfficeSelected MapState = "office_selected"
	MapStateRouteReady     MapState = "route_ready"
)

// State выводит состояние из содержимого сессии.
func (s *MapSession) State() MapState {
	switch {
	case s == nil || s.Office == nil:
		return MapStateNoOffice
	case s.Route != nil:
		return MapStateRouteReady
	default:
		return MapStateOfficeSelected
	}
}

// RouteTicket идентифицирует выданный запрос маршрута
type RouteTicket struct {
	Token         uint64   `json:"token"`
	OfficeVersion uint64   `json:"-"`
	Origin        GeoPoint `json:"origin"`
	Destination   GeoPoint `json:"destination"`
}
