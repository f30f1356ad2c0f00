package dto

import "github.com/commute-map/internal/domain"

// MapOptions - параметры для SDK карты
type MapOptions struct {
	MapID            string `json:"mapId"`
	DisableDefaultUI bool   `json:"disableDefaultUI"`
	ClickableIcons   bool   `json:"clickableIcons"`
}

// MapConfigResponse - стартовые данные карты в браузере
type MapConfigResponse struct {
	Provider string          `json:"provider"`
	APIKey   string          `json:"api_key,omitempty"`
	Ready    bool            `json:"ready"`
	Center   domain.GeoPoint `json:"center"`
	Zoom     int             `json:"zoom"`
	Options  MapOptions      `json:"options"`
}

// SelectOfficeResponse - текущий офис
type SelectOfficeResponse struct {
	Office domain.GeoPoint `json:"office"`
	Place  *domain.Place   `json:"place,omitempty"`
	State  domain.MapState `json:"state"`
}

// AutocompleteResponse - подсказки адресов
type AutocompleteResponse struct {
	Suggestions []domain.PlaceSuggestion `json:"suggestions"`
}

// CommuteEstimateResponse - Summary равен nil, если нет расстояния или времени
type CommuteEstimateResponse struct {
	Shown   bool                   `json:"shown"`
	Summary *domain.CommuteSummary `json:"summary,omitempty"`
}

// HealthResponse - состояние сервиса
type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Cache    string `json:"cache"`
	Sessions int    `json:"sessions"`
}
