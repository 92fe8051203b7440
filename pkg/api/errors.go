package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/docmatrix-ai/docmatrix/pkg/credentials"
	"github.com/docmatrix-ai/docmatrix/pkg/qa"
	"github.com/docmatrix-ai/docmatrix/pkg/services"
	"github.com/docmatrix-ai/docmatrix/pkg/tools"
)

// mapServiceError maps service-layer errors to HTTP error responses.
// Quota denials carry the full check payload so the caller can render
// usage against the limit.
func mapServiceError(err error) *echo.HTTPError {
	var quotaErr *qa.QuotaError
	if errors.As(err, &quotaErr) {
		return echo.NewHTTPError(http.StatusPaymentRequired, &QuotaDeniedResponse{
			Error: quotaErr.Error(),
			Quota: quotaErr.Check,
		})
	}

	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}
	if errors.Is(err, services.ErrInvalidState) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if errors.Is(err, credentials.ErrAccessDenied) {
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// mapToolError maps tool-registry errors to HTTP error responses.
// Anything the registry does not classify falls through to the service
// mapping, which also catches quota denials raised by tool handlers.
func mapToolError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, tools.ErrUnknownTool):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, tools.ErrContextDenied), errors.Is(err, tools.ErrToolNotAllowed):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, tools.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return mapServiceError(err)
}
