package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/commute-map/internal/config"
	"github.com/commute-map/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const samplePolyline = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.MapsConfig{
		APIKey:         "test_key",
		BaseURL:        server.URL,
		RequestTimeout: 5 * time.Second,
	}
	return NewGoogleClient(cfg, zap.NewNop()).(*client)
}

func TestClient_GetDirections(t *testing.T) {
	req := domain.DirectionsRequest{
		Origin:      domain.GeoPoint{Lat: 43.1, Lng: -80.2},
		Destination: domain.GeoPoint{Lat: 43.0, Lng: -80.0},
	}

	t.Run("successful request", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, directionsEndpoint, r.URL.Path)
			assert.Equal(t, "driving", r.URL.Query().Get("mode"))
			assert.Equal(t, "test_key", r.URL.Query().Get("key"))
			assert.Equal(t, "43.100000,-80.200000", r.URL.Query().Get("origin"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"status": "OK",
				"routes": [{
					"summary": "ON-401 W",
					"overview_polyline": {"points": "` + samplePolyline + `"},
					"bounds": {"northeast": {"lat": 43.2, "lng": -79.9}, "southwest": {"lat": 42.9, "lng": -80.3}},
					"legs": [{
						"distance": {"text": "20.0 km", "value": 20000},
						"duration": {"text": "30 mins", "value": 1800},
						"start_address": "Home",
						"end_address": "Office",
						"start_location": {"lat": 43.1, "lng": -80.2},
						"end_location": {"lat": 43.0, "lng": -80.0}
					}]
				}]
			}`))
		})

		result, err := c.GetDirections(context.Background(), req)
		require.NoError(t, err)
		require.True(t, result.OK())

		leg := result.FirstLeg()
		require.NotNil(t, leg)
		assert.Equal(t, 20000.0, leg.Distance.Value)
		assert.Equal(t, "30 mins", leg.Duration.Text)
		assert.Equal(t, "Office", leg.EndAddress)
		assert.Len(t, result.Routes[0].Polyline, 3)
		assert.Equal(t, 42.9, result.Routes[0].Bounds.MinLat)
	})

	t.Run("zero results is not an error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ZERO_RESULTS", "routes": []}`))
		})

		result, err := c.GetDirections(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, domain.DirectionsStatusZeroResults, result.Status)
		assert.False(t, result.OK())
		assert.Empty(t, result.Routes)
	})

	t.Run("missing distance stays nil", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "OK", "routes": [{"legs": [{"duration": {"text": "1 min", "value": 60}}]}]}`))
		})

		result, err := c.GetDirections(context.Background(), req)
		require.NoError(t, err)
		assert.Nil(t, result.FirstLeg().Distance)
		assert.NotNil(t, result.FirstLeg().Duration)
	})

	t.Run("http error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		})

		result, err := c.GetDirections(context.Background(), req)
		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("invalid json", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		})

		result, err := c.GetDirections(context.Background(), req)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestClient_Geocode(t *testing.T) {
	t.Run("first result wins", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, geocodeEndpoint, r.URL.Path)
			assert.Equal(t, "100 King St W, Toronto", r.URL.Query().Get("address"))
			w.Write([]byte(`{"status": "OK", "results": [
				{"place_id": "abc", "formatted_address": "100 King St W, Toronto, ON", "geometry": {"location": {"lat": 43.6484, "lng": -79.3817}}},
				{"place_id": "def", "formatted_address": "Other", "geometry": {"location": {"lat": 1, "lng": 2}}}
			]}`))
		})

		place, err := c.Geocode(context.Background(), "100 King St W, Toronto")
		require.NoError(t, err)
		assert.Equal(t, "abc", place.PlaceID)
		assert.Equal(t, domain.GeoPoint{Lat: 43.6484, Lng: -79.3817}, place.Location)
	})

	t.Run("zero results", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
		})

		place, err := c.Geocode(context.Background(), "nowhere")
		assert.Error(t, err)
		assert.Nil(t, place)
		assert.Contains(t, err.Error(), "ZERO_RESULTS")
	})
}

func TestClient_Autocomplete(t *testing.T) {
	t.Run("predictions", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, autocompleteEndpoint, r.URL.Path)
			assert.Equal(t, "100 King", r.URL.Query().Get("input"))
			w.Write([]byte(`{"status": "OK", "predictions": [{"place_id": "p1", "description": "100 King St W"}]}`))
		})

		suggestions, err := c.Autocomplete(context.Background(), "100 King")
		require.NoError(t, err)
		require.Len(t, suggestions, 1)
		assert.Equal(t, "100 King St W", suggestions[0].Description)
	})

	t.Run("zero results is empty", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ZERO_RESULTS", "predictions": []}`))
		})

		suggestions, err := c.Autocomplete(context.Background(), "zzzz")
		require.NoError(t, err)
		assert.Empty(t, suggestions)
	})

	t.Run("request denied", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "bad key"}`))
		})

		_, err := c.Autocomplete(context.Background(), "x")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bad key")
	})
}
