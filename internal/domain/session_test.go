package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSession_State(t *testing.T) {
	var nilSession *MapSession
	assert.Equal(t, MapStateNoOffice, nilSession.State())

	s := &MapSession{}
	assert.Equal(t, MapStateNoOffice, s.State())

	s.Office = &GeoPoint{Lat: 43, Lng: -80}
	assert.Equal(t, MapStateOfficeSelected, s.State())

	s.Route = &DirectionsResult{Status: DirectionsStatusOK}
	assert.Equal(t, MapStateRouteReady, s.State())
}

func TestDirectionsResult_FirstLeg(t *testing.T) {
	var nilResult *DirectionsResult
	assert.Nil(t, nilResult.FirstLeg())
	assert.False(t, nilResult.OK())

	empty := &DirectionsResult{Status: DirectionsStatusOK}
	assert.Nil(t, empty.FirstLeg())
	assert.False(t, empty.OK())

	r := &DirectionsResult{
		Status: DirectionsStatusOK,
		Routes: []Route{
			{Legs: []Leg{{Distance: &TextValue{Text: "20 km", Value: 20000}}, {}}},
			{Legs: []Leg{{}}},
		},
	}
	assert.True(t, r.OK())
	assert.Equal(t, 20000.0, r.FirstLeg().Distance.Value)
}

func TestGeoPoint_Key(t *testing.T) {
	a := GeoPoint{Lat: 43.6532, Lng: -79.3832}
	b := GeoPoint{Lat: 43.6532, Lng: -79.3832}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), GeoPoint{Lat: 43.6533, Lng: -79.3832}.Key())
	assert.Equal(t, "43.65320,-79.38320", a.RoundedKey())
}

func TestCacheKeys(t *testing.T) {
	req := DirectionsRequest{
		Origin:      GeoPoint{Lat: 43.123456789, Lng: -80.1},
		Destination: GeoPoint{Lat: 43, Lng: -80},
	}
	assert.Equal(t, "directions:driving:43.12346,-80.10000:43.00000,-80.00000", req.CacheKey())

	assert.Equal(t, GeocodeCacheKey("100  King St W "), GeocodeCacheKey("100 king st w"))
	assert.Equal(t, "autocomplete:king st", SuggestionsCacheKey(" King   St"))
}
