package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"aura/internal/admin"
	"aura/internal/auth"
	"aura/internal/config"
	"aura/internal/handler"
	"aura/internal/logger"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Auth *handler.AuthHandler
	User *handler.UserHandler
	Site *handler.SiteHandler
}

// Register wires routes and middleware. adm may be nil, in which case the
// admin surface is not mounted.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *logger.Logger,
	jwtService *auth.JWTService,
	h Handlers,
	adm *admin.Admin,
) {
	e.HTTPErrorHandler = errorHandler(e)

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestScopedLogger(log))
	e.Use(accessLog())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", h.Site.Sitemap)
	e.GET("/healthz", h.Site.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireAuth := bearerAuth(jwtService)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)

	// Secured routes
	api.POST("/logout", h.Auth.Logout, requireAuth)
	api.GET("/me", h.User.Me, requireAuth)

	if adm != nil {
		adm.Mount(e.Group("/admin"))
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
