package errors

import "net/http"

var (
	ErrSiteNotFound = New(
		"SITE_NOT_FOUND",
		"Tourism site not found",
		http.StatusNotFound,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request payload",
		http.StatusBadRequest,
	)

	ErrInvalidDistrict = New(
		"INVALID_DISTRICT",
		"Unknown district name",
		http.StatusBadRequest,
	)

	ErrInvalidSiteType = New(
		"INVALID_SITE_TYPE",
		"Unknown tourism site type",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
