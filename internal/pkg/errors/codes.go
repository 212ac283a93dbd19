package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDistrictNotFound = New(
		"DISTRICT_NOT_FOUND",
		"District not found",
		http.StatusNotFound,
	)

	ErrStatisticsUnavailable = New(
		"STATISTICS_UNAVAILABLE",
		"Statistics are not available yet",
		http.StatusServiceUnavailable,
	)

	ErrRefreshFailed = New(
		"REFRESH_FAILED",
		"Failed to refresh statistics",
		http.StatusBadGateway,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
