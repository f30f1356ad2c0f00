package usecase

import (
	"github.com/commute-map/internal/domain"
	"github.com/commute-map/internal/pkg/utils"
)

// Ring radii in metres
const (
	NearRadiusMeters = 15000
	MidRadiusMeters  = 30000
	FarRadiusMeters  = 45000
)

var baseCircleStyle = domain.CircleStyle{
	StrokeOpacity: 0.5,
	StrokeWeight:  2,
	Clickable:     false,
	Draggable:     false,
	Editable:      false,
	Visible:       true,
}

// RingStyle returns the circle options for a tier
func RingStyle(tier domain.RingTier) domain.CircleStyle {
	style := baseCircleStyle
	switch tier {
	case domain.RingTierNear:
		style.ZIndex = 3
		style.FillOpacity = 0.05
		style.StrokeColor = "#8BC34A"
		style.FillColor = "#8BC34A"
	case domain.RingTierMid:
		style.ZIndex = 2
		style.FillOpacity = 0.05
		style.StrokeColor = "#FBC02D"
		style.FillColor = "#FBC02D"
	case domain.RingTierFar:
		style.ZIndex = 1
		style.FillOpacity = 0.05
		style.StrokeColor = "#FF5252"
		style.FillColor = "#FF5252"
	}
	return style
}

// RouteStyle - style of the rendered directions polyline
var RouteStyle = domain.PolylineStyle{
	StrokeColor:  "#1976D2",
	StrokeWeight: 5,
	ZIndex:       50,
}

// BuildRings returns the three rings around office, innermost first
func BuildRings(office domain.GeoPoint) []domain.Ring {
	return []domain.Ring{
		{Tier: domain.RingTierNear, Center: office, RadiusMeters: NearRadiusMeters, Style: RingStyle(domain.RingTierNear)},
		{Tier: domain.RingTierMid, Center: office, RadiusMeters: MidRadiusMeters, Style: RingStyle(domain.RingTierMid)},
		{Tier: domain.RingTierFar, Center: office, RadiusMeters: FarRadiusMeters, Style: RingStyle(domain.RingTierFar)},
	}
}

// ClassifyTier reports which ring p falls into
func ClassifyTier(office, p domain.GeoPoint) domain.RingTier {
	meters := utils.HaversineDistance(office.Lat, office.Lng, p.Lat, p.Lng) * 1000
	switch {
	case meters <= NearRadiusMeters:
		return domain.RingTierNear
	case meters <= MidRadiusMeters:
		return domain.RingTierMid
	case meters <= FarRadiusMeters:
		return domain.RingTierFar
	default:
		return domain.RingTierOutside
	}
}

// BuildRouteOverlay renders the first route of an OK result, or nil
func BuildRouteOverlay(result *domain.DirectionsResult) *domain.RouteOverlay {
	if !result.OK() {
		return nil
	}
	return &domain.RouteOverlay{
		Path:            result.Routes[0].Polyline,
		Style:           RouteStyle,
		SuppressMarkers: true,
	}
}
