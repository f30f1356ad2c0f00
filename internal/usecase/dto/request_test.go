package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/commute-map/internal/pkg/validator"
)

func ptr(v float64) *float64 { return &v }

func TestSelectOfficeRequest_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   SelectOfficeRequest
		valid bool
	}{
		{"coordinates", SelectOfficeRequest{Lat: ptr(43), Lng: ptr(-80)}, true},
		{"zero coordinates", SelectOfficeRequest{Lat: ptr(0), Lng: ptr(0)}, true},
		{"address", SelectOfficeRequest{Address: "100 King St W"}, true},
		{"nothing", SelectOfficeRequest{}, false},
		{"latitude out of range", SelectOfficeRequest{Lat: ptr(91), Lng: ptr(0)}, false},
		{"longitude out of range", SelectOfficeRequest{Lat: ptr(0), Lng: ptr(-181)}, false},
		{"lat without lng", SelectOfficeRequest{Lat: ptr(10)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRouteRequest_Validation(t *testing.T) {
	assert.NoError(t, validator.Validate(RouteRequest{Lat: ptr(43.2), Lng: ptr(-80.3)}))
	assert.Error(t, validator.Validate(RouteRequest{Lat: ptr(43.2)}))
	assert.Error(t, validator.Validate(RouteRequest{Lat: ptr(-95), Lng: ptr(0)}))
}

func TestCommuteEstimateRequest_Leg(t *testing.T) {
	leg := CommuteEstimateRequest{DistanceMeters: ptr(20000), DistanceText: "20 km"}.Leg()

	assert.Equal(t, 20000.0, leg.Distance.Value)
	assert.Equal(t, "20 km", leg.Distance.Text)
	assert.Nil(t, leg.Duration)

	assert.Error(t, validator.Validate(CommuteEstimateRequest{DistanceMeters: ptr(-1)}))
	assert.Error(t, validator.Validate(CommuteEstimateRequest{DistanceMeters: ptr(1e300)}))
	assert.Error(t, validator.Validate(CommuteEstimateRequest{DurationSeconds: ptr(1e300)}))
	assert.NoError(t, validator.Validate(CommuteEstimateRequest{DistanceMeters: ptr(40075000), DurationSeconds: ptr(31536000)}))
}
