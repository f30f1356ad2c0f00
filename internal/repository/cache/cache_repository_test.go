package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/commute-map/internal/domain"
	"github.com/commute-map/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupRedisCache(t *testing.T) (repository.CacheRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	r := NewRedisFromClient(client, zap.NewNop())
	return NewCacheRepository(NewRedisStore(r), zap.NewNop()), mr
}

func TestCacheRepository_RawOperations(t *testing.T) {
	ctx := context.Background()
	repo, mr := setupRedisCache(t)

	val, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, val, "miss is not an error")

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))

	val, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	exists, err := repo.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	mr.FastForward(2 * time.Minute)

	exists, err = repo.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists, "entry expired")

	require.NoError(t, repo.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, repo.Delete(ctx, "k"))
	val, err = repo.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestCacheRepository_Directions(t *testing.T) {
	ctx := context.Background()
	repo, mr := setupRedisCache(t)

	req := domain.DirectionsRequest{
		Origin:      domain.GeoPoint{Lat: 43.1, Lng: -80.2},
		Destination: domain.GeoPoint{Lat: 43.0, Lng: -80.0},
	}

	cached, err := repo.GetDirections(ctx, req)
	require.NoError(t, err)
	assert.Nil(t, cached)

	result := &domain.DirectionsResult{
		Status: domain.DirectionsStatusOK,
		Routes: []domain.Route{{
			Legs: []domain.Leg{{
				Distance: &domain.TextValue{Text: "20.0 km", Value: 20000},
				Duration: &domain.TextValue{Text: "30 mins", Value: 1800},
			}},
			Polyline: []domain.GeoPoint{{Lat: 43.1, Lng: -80.2}, {Lat: 43.0, Lng: -80.0}},
		}},
	}
	require.NoError(t, repo.SetDirections(ctx, req, result, time.Hour))
	assert.True(t, mr.Exists(req.CacheKey()))

	cached, err = repo.GetDirections(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, result, cached)
}

func TestCacheRepository_GeocodeAndSuggestions(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupRedisCache(t)

	place := &domain.Place{FormattedAddress: "100 King St W", Location: domain.GeoPoint{Lat: 43.64, Lng: -79.38}}
	require.NoError(t, repo.SetGeocode(ctx, "100 King St W", place, time.Hour))

	cached, err := repo.GetGeocode(ctx, "100 king st w")
	require.NoError(t, err)
	assert.Equal(t, place, cached)

	suggestions, err := repo.GetSuggestions(ctx, "king")
	require.NoError(t, err)
	assert.Nil(t, suggestions)

	require.NoError(t, repo.SetSuggestions(ctx, "king", []domain.PlaceSuggestion{}, time.Minute))
	suggestions, err = repo.GetSuggestions(ctx, "king")
	require.NoError(t, err)
	assert.NotNil(t, suggestions, "cached empty list is a hit")
	assert.Empty(t, suggestions)
}

func TestCacheRepository_CorruptedValue(t *testing.T) {
	ctx := context.Background()
	repo, mr := setupRedisCache(t)

	require.NoError(t, mr.Set(domain.GeocodeCacheKey("x"), "{broken"))

	place, err := repo.GetGeocode(ctx, "x")
	assert.Error(t, err)
	assert.Nil(t, place)
}

func TestRedisStore_ConnectionError(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := NewRedisStore(NewRedisFromClient(client, nil))
	mr.Close()

	_, err := store.Get(ctx, "k")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cache get error")
}
