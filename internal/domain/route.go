package domain

// TravelMode - способ передвижения. Сейчас запрашивается только driving.
type TravelMode string

const (
	TravelModeDriving TravelMode = "driving"
)

// DirectionsStatus повторяет коды статуса сервиса маршрутов.
type DirectionsStatus string

const (
	DirectionsStatusOK             DirectionsStatus = "OK"
	DirectionsStatusNotFound       DirectionsStatus = "NOT_FOUND"
	DirectionsStatusZeroResults    DirectionsStatus = "ZERO_RESULTS"
	DirectionsStatusOverQueryLimit DirectionsStatus = "OVER_QUERY_LIMIT"
	DirectionsStatusRequestDenied  DirectionsStatus = "REQUEST_DENIED"
	DirectionsStatusInvalidRequest DirectionsStatus = "INVALID_REQUEST"
	DirectionsStatusUnknownError   DirectionsStatus = "UNKNOWN_ERROR"
)

// TextValue - значение и его текст для отображения (например 20000 / "20.0 km").
type TextValue struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// Leg - участок маршрута. Расстояние в метрах, время в секундах;
// любое из них может отсутствовать, если провайдер его не вернул.
type Leg struct {
	Distance      *TextValue `json:"distance,omitempty"`
	Duration      *TextValue `json:"duration,omitempty"`
	StartAddress  string     `json:"start_address,omitempty"`
	EndAddress    string     `json:"end_address,omitempty"`
	StartLocation GeoPoint   `json:"start_location"`
	EndLocation   GeoPoint   `json:"end_location"`
}

// Route - один вариант маршрута
type Route struct {
	Summary  string       `json:"summary,omitempty"`
	Legs     []Leg        `json:"legs"`
	Polyline []GeoPoint   `json:"polyline,omitempty"`
	Bounds   *BoundingBox `json:"bounds,omitempty"`
}

// DirectionsRequest - пара origin/destination для провайдера маршрутов
type DirectionsRequest struct {
	Origin      GeoPoint   `json:"origin"`
	Destination GeoPoint   `json:"destination"`
	Mode        TravelMode `json:"mode"`
}

// DirectionsResult - ответ провайдера маршрутов
type DirectionsResult struct {
	Status       DirectionsStatus `json:"status"`
	ErrorMessage string           `json:"error_message,omitempty"`
	Routes       []Route          `json:"routes"`
}

// OK - статус успешный и есть хотя бы один маршрут.
func (r *DirectionsResult) OK() bool {
	return r != nil && r.Status == DirectionsStatusOK && len(r.Routes) > 0
}

// FirstLeg возвращает первый участок первого маршрута или nil.
func (r *DirectionsResult) FirstLeg() *Leg {
	if r == nil || len(r.Routes) == 0 || len(r.Routes[0].Legs) == 0 {
		return nil
	}
	return &r.Routes[0].Legs[0]
}
