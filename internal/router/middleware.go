package router

import (
	"errors"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"aura/internal/auth"
	apperrors "aura/internal/errors"
	"aura/internal/handler"
	"aura/internal/logger"
)

// requestScopedLogger stores a logger tagged with the request id in the
// request context. It must run after the RequestID middleware.
func requestScopedLogger(base *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			req := c.Request()
			ctx := base.With("request_id", rid).WithContext(req.Context())
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}

// accessLog writes one zerolog entry per request.
func accessLog() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l := logger.FromContext(c.Request().Context())
			evt := l.Info()
			if v.Status >= http.StatusInternalServerError {
				evt = l.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

// bearerAuth validates the Authorization bearer token and stores its
// claims under handler.ClaimsContextKey. Every failure, including a
// missing header, is a 401.
func bearerAuth(jwtService *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: handler.ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (any, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			msg := "Token inválido o expirado"
			var extractErr *echojwt.TokenExtractionError
			if errors.As(err, &extractErr) {
				msg = "Falta el token de acceso"
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Msg:  msg,
				Code: "UNAUTHORIZED",
			})
		},
	})
}

// errorHandler keeps every error body in the {"msg","code"} shape, including
// the ones echo raises itself (unknown route, wrong method, basic auth).
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			logger.FromContext(c.Request().Context()).Error().Err(err).Msg("unhandled error")
			he = echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
				Msg:  "internal server error",
				Code: "INTERNAL_ERROR",
			})
		}
		if msg, ok := he.Message.(string); ok {
			he = echo.NewHTTPError(he.Code, apperrors.ErrorResponse{Msg: msg, Code: statusCode(he.Code)})
		}
		e.DefaultHTTPErrorHandler(he, c)
	}
}

func statusCode(status int) string {
	if status == http.StatusBadRequest {
		return "VALIDATION_ERROR"
	}
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
