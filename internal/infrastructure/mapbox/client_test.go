package mapbox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/commute-map/internal/config"
	"github.com/commute-map/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.MapsConfig{
		Provider:       config.ProviderMapbox,
		APIKey:         "test_token",
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
	}
	return NewMapboxClient(cfg, zap.NewNop()).(*client)
}

func TestClient_GetDirections(t *testing.T) {
	req := domain.DirectionsRequest{
		Origin:      domain.GeoPoint{Lat: 41.3851, Lng: 2.1734},
		Destination: domain.GeoPoint{Lat: 41.4000, Lng: 2.1900},
		Mode:        domain.TravelModeDriving,
	}

	t.Run("successful request", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, strings.HasPrefix(r.URL.Path, "/directions/v5/mapbox/driving/"))
			assert.Contains(t, r.URL.Path, "2.173400,41.385100;2.190000,41.400000")
			assert.Equal(t, "polyline", r.URL.Query().Get("geometries"))
			assert.Equal(t, "test_token", r.URL.Query().Get("access_token"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"code": "Ok",
				"routes": [{
					"distance": 20000,
					"duration": 1800,
					"geometry": "_p~iF~ps|U_ulLnnqC_mqNvxq` + "`" + `@",
					"weight_name": "auto",
					"legs": [{"distance": 20000, "duration": 1800, "summary": "Avinguda Diagonal"}]
				}],
				"waypoints": [
					{"name": "Carrer A", "location": [2.1734, 41.3851]},
					{"name": "Carrer B", "location": [2.19, 41.4]}
				]
			}`))
		})

		result, err := c.GetDirections(context.Background(), req)
		require.NoError(t, err)
		require.True(t, result.OK())

		route := result.Routes[0]
		assert.Equal(t, "Avinguda Diagonal", route.Summary)
		assert.Len(t, route.Polyline, 3)

		leg := result.FirstLeg()
		assert.Equal(t, 20000.0, leg.Distance.Value)
		assert.Equal(t, "20.0 km", leg.Distance.Text)
		assert.Equal(t, "30 mins", leg.Duration.Text)
		assert.Equal(t, "Carrer B", leg.EndAddress)
		assert.Equal(t, domain.GeoPoint{Lat: 41.3851, Lng: 2.1734}, leg.StartLocation)
	})

	t.Run("no route maps to zero results", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code": "NoRoute", "message": "No route found", "routes": []}`))
		})

		result, err := c.GetDirections(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, domain.DirectionsStatusZeroResults, result.Status)
		assert.Equal(t, "No route found", result.ErrorMessage)
	})

	t.Run("invalid input body is decoded", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"code":"InvalidInput","message":"Invalid coordinates"}`))
		})

		result, err := c.GetDirections(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, domain.DirectionsStatusInvalidRequest, result.Status)
	})

	t.Run("api error response", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Not Authorized - Invalid Token"}`))
		})

		result, err := c.GetDirections(context.Background(), req)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "mapbox API error")
	})
}

func TestClient_Geocode(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocoding/v5/mapbox.places/Placa Catalunya.json", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("autocomplete"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"features": [{"id": "poi.1", "place_name": "Plaça Catalunya, Barcelona", "center": [2.17, 41.387]}]}`))
	})

	place, err := c.Geocode(context.Background(), "Placa Catalunya")
	require.NoError(t, err)
	assert.Equal(t, "poi.1", place.PlaceID)
	assert.Equal(t, domain.GeoPoint{Lat: 41.387, Lng: 2.17}, place.Location)
}

func TestClient_Geocode_NoFeatures(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features": []}`))
	})

	place, err := c.Geocode(context.Background(), "nowhere")
	assert.Error(t, err)
	assert.Nil(t, place)
}

func TestClient_Autocomplete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("autocomplete"))
		w.Write([]byte(`{"features": [
			{"id": "a", "place_name": "King St W, Toronto", "center": [-79.38, 43.64]},
			{"id": "b", "place_name": "King St E, Toronto", "center": [-79.37, 43.65]}
		]}`))
	})

	suggestions, err := c.Autocomplete(context.Background(), "King St")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)
	assert.Equal(t, "King St W, Toronto", suggestions[0].Description)
	require.NotNil(t, suggestions[1].Location)
	assert.Equal(t, 43.65, suggestions[1].Location.Lat)
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, domain.DirectionsStatusOK, mapCode("Ok"))
	assert.Equal(t, domain.DirectionsStatusZeroResults, mapCode("NoRoute"))
	assert.Equal(t, domain.DirectionsStatusZeroResults, mapCode("NoSegment"))
	assert.Equal(t, domain.DirectionsStatusRequestDenied, mapCode("NotAuthorized"))
	assert.Equal(t, domain.DirectionsStatusUnknownError, mapCode("Weird"))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1 min", formatDuration(61))
	assert.Equal(t, "30 mins", formatDuration(1800))
	assert.Equal(t, "2 hours 0 mins", formatDuration(7200))
	assert.Equal(t, "1 hour 5 mins", formatDuration(3900))
	assert.Equal(t, "850 m", formatDistance(850))
}
