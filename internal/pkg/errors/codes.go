package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidZoom = New(
		"INVALID_ZOOM",
		"Invalid zoom level: must be between 0 and 22",
		http.StatusBadRequest,
	)

	ErrGeocodeFailed = New(
		"GEOCODE_FAILED",
		"Address could not be resolved",
		http.StatusUnprocessableEntity,
	)

	ErrProviderError = New(
		"PROVIDER_ERROR",
		"Maps provider request failed",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
