package domain

// RingTier - пояс расстояния вокруг офиса
type RingTier string

const (
	RingTierNear    RingTier = "near"
	RingTierMid     RingTier = "mid"
	RingTierFar     RingTier = "far"
	RingTierOutside RingTier = "outside"
)

// CircleStyle - параметры кольца радиуса
type CircleStyle struct {
	StrokeColor   string  `json:"strokeColor"`
	StrokeOpacity float64 `json:"strokeOpacity"`
	StrokeWeight  int     `json:"strokeWeight"`
	FillColor     string  `json:"fillColor"`
	FillOpacity   float64 `json:"fillOpacity"`
	ZIndex        int     `json:"zIndex"`
	Clickable     bool    `json:"clickable"`
	Draggable     bool    `json:"draggable"`
	Editable      bool    `json:"editable"`
	Visible       bool    `json:"visible"`
}

// Ring - круг с центром в офисе
type Ring struct {
	Tier         RingTier    `json:"tier"`
	Center       GeoPoint    `json:"center"`
	RadiusMeters float64     `json:"radius_meters"`
	Style        CircleStyle `json:"style"`
}

// PolylineStyle - параметры отрисовки маршрута
type PolylineStyle struct {
	StrokeColor  string `json:"strokeColor"`
	StrokeWeight int    `json:"strokeWeight"`
	ZIndex       int    `json:"zIndex"`
}

// RouteOverlay - полилиния маршрута, готовая к отрисовке
type RouteOverlay struct {
	Path            []GeoPoint    `json:"path"`
	Style           PolylineStyle `json:"style"`
	SuppressMarkers bool          `json:"suppressMarkers"`
}

// House - маркер синтетического дома
type House struct {
	ID       int      `json:"id"`
	Position GeoPoint `json:"position"`
	Tier     RingTier `json:"tier"`
}

// Cluster - группа маркеров домов в одной ячейке geohash
type Cluster struct {
	Hash     string   `json:"hash"`
	Center   GeoPoint `json:"center"`
	Count    int      `json:"count"`
	HouseIDs []int    `json:"house_ids"`
}
