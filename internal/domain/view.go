package domain

// MapView - все, что нужно странице для отрисовки карты
type MapView struct {
	State    MapState        `json:"state"`
	Zoom     int             `json:"zoom"`
	Office   *GeoPoint       `json:"office,omitempty"`
	PanTo    *GeoPoint       `json:"pan_to,omitempty"`
	Houses   []House         `json:"houses"`
	Clusters []Cluster       `json:"clusters"`
	Rings    []Ring          `json:"rings"`
	Route    *RouteOverlay   `json:"route,omitempty"`
	Leg      *Leg            `json:"leg,omitempty"`
	Commute  *CommuteSummary `json:"commute,omitempty"`
}
