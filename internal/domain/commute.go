package domain

// CommuteEstimate - годовая стоимость поездок по одному участку
type CommuteEstimate struct {
	Days int `json:"days"`
	Cost int `json:"cost"`
}

// CommuteSummary - то, что показывает панель расстояния для участка
type CommuteSummary struct {
	DistanceText  string `json:"distance_text"`
	DurationText  string `json:"duration_text"`
	Days          int    `json:"days"`
	Cost          int    `json:"cost"`
	CostFormatted string `json:"cost_formatted"`
}
