package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "aura/internal/errors"
	"aura/internal/logger"
)

// fail turns a service error into an echo.HTTPError carrying the
// {"msg","code"} body. Errors outside the domain taxonomy are logged and
// answered with an opaque 500.
func fail(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= 500 {
		logger.FromContext(c.Request().Context()).Error().Err(err).
			Str("path", c.Path()).
			Msg("request failed")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// MessageResponse is the body of plain confirmations.
type MessageResponse struct {
	Msg string `json:"msg"`
}
