package dto

import "github.com/commute-map/internal/domain"

// SelectOfficeRequest - офис по координатам или по адресу
type SelectOfficeRequest struct {
	Lat     *float64 `json:"lat,omitempty" validate:"required_without=Address,omitempty,min=-90,max=90"`
	Lng     *float64 `json:"lng,omitempty" validate:"required_without=Address,omitempty,min=-180,max=180"`
	Address string   `json:"address,omitempty" validate:"required_without_all=Lat Lng,omitempty,max=256"`
}

// HasPoint - переданы ли координаты
func (r SelectOfficeRequest) HasPoint() bool {
	return r.Lat != nil && r.Lng != nil
}

// Point возвращает координаты; сначала проверить HasPoint
func (r SelectOfficeRequest) Point() domain.GeoPoint {
	return domain.GeoPoint{Lat: *r.Lat, Lng: *r.Lng}
}

// RouteRequest - начало поездки, обычно маркер дома, по которому кликнули
type RouteRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" validate:"required,min=-180,max=180"`
}

// Origin возвращает начало маршрута
func (r RouteRequest) Origin() domain.GeoPoint {
	return domain.GeoPoint{Lat: *r.Lat, Lng: *r.Lng}
}

// CommuteEstimateRequest - вход презентера расстояния без состояния. Отсутствующее
// значение значит, что провайдер его не вернул. Расстояние ограничено длиной экватора, время годом.
type CommuteEstimateRequest struct {
	DistanceMeters  *float64 `json:"distance_meters,omitempty" validate:"omitempty,min=0,max=40075000"`
	DurationSeconds *float64 `json:"duration_seconds,omitempty" validate:"omitempty,min=0,max=31536000"`
	DistanceText    string   `json:"distance_text,omitempty" validate:"max=64"`
	DurationText    string   `json:"duration_text,omitempty" validate:"max=64"`
	Locale          string   `json:"locale,omitempty" validate:"max=64"`
}

// Leg преобразует запрос в участок маршрута
func (r CommuteEstimateRequest) Leg() *domain.Leg {
	leg := &domain.Leg{}
	if r.DistanceMeters != nil {
		leg.Distance = &domain.TextValue{Text: r.DistanceText, Value: *r.DistanceMeters}
	}
	if r.DurationSeconds != nil {
		leg.Duration = &domain.TextValue{Text: r.DurationText, Value: *r.DurationSeconds}
	}
	return leg
}
