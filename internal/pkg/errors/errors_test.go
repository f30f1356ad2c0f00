package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	t.Run("error string", func(t *testing.T) {
		assert.Equal(t, "GEOCODE_FAILED: Address could not be resolved", ErrGeocodeFailed.Error())
		assert.Equal(t, http.StatusUnprocessableEntity, ErrGeocodeFailed.StatusCode)
	})

	t.Run("with details does not mutate sentinel", func(t *testing.T) {
		detailed := ErrInvalidRequest.WithDetails(map[string]interface{}{"field": "lat"})

		assert.Equal(t, "lat", detailed.Details["field"])
		assert.Nil(t, ErrInvalidRequest.Details)
	})

	t.Run("wrapped errors unwrap", func(t *testing.T) {
		wrapped := fmt.Errorf("select office: %w", ErrGeocodeFailed)

		appErr, ok := As(wrapped)
		assert.True(t, ok)
		assert.Equal(t, "GEOCODE_FAILED", appErr.Code)
		assert.ErrorIs(t, wrapped, ErrGeocodeFailed)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := As(fmt.Errorf("boom"))
		assert.False(t, ok)
	})
}
