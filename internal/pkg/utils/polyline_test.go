package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePolyline(t *testing.T) {
	points, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.InDelta(t, 38.5, points[0].Lat, 1e-6)
	assert.InDelta(t, -120.2, points[0].Lng, 1e-6)
	assert.InDelta(t, 40.7, points[1].Lat, 1e-6)
	assert.InDelta(t, -120.95, points[1].Lng, 1e-6)
	assert.InDelta(t, 43.252, points[2].Lat, 1e-6)
	assert.InDelta(t, -126.453, points[2].Lng, 1e-6)

	empty, err := DecodePolyline("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
