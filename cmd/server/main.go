package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"aura/docs"
	"aura/internal/admin"
	"aura/internal/auth"
	"aura/internal/cache"
	"aura/internal/config"
	"aura/internal/db"
	"aura/internal/handler"
	"aura/internal/logger"
	"aura/internal/model"
	"aura/internal/repository"
	"aura/internal/router"
	"aura/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title Aura API
// @version 1.0
// @description Accounts and personalization backend for the Aura wellness app.
// @host localhost:3000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("server", "info", "").Fatal().Err(err).Msg("load config")
	}
	log := logger.New("server", cfg.Log.Level, cfg.Log.File)

	gormDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if cfg.ResetDB {
		log.Warn().Msg("RESET_DB=true detected, dropping all tables")
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, serving without cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	unlockableRepo := repository.NewUnlockableRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpires)
	authService := service.NewAuthService(userRepo, jwtService, cfg.BcryptCost)
	userService := service.NewUserService(userRepo, cacheClient, cfg.CacheTTL)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	var adm *admin.Admin
	if cfg.Admin.Enabled() {
		adm = admin.New(
			admin.Credentials{User: cfg.Admin.User, Password: cfg.Admin.Password},
			admin.Stores{
				Users:       userRepo,
				Profiles:    repository.New[model.UserProfile](gormDB),
				Videos:      repository.New[model.PlaylistVideo](gormDB),
				Themes:      repository.New[model.FavoriteTheme](gormDB),
				Unlockables: unlockableRepo,
			},
			userService.Invalidate,
		)
	} else {
		log.Info().Msg("ADMIN_USER/ADMIN_PASSWORD not set, admin surface disabled")
	}

	// Register routes
	router.Register(e, cfg, log, jwtService, router.Handlers{
		Auth: handler.NewAuthHandler(authService),
		User: handler.NewUserHandler(userService),
		Site: handler.NewSiteHandler(e.Routes, pingDB(gormDB)),
	}, adm)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.ServerPort
	go func() {
		log.Info().Str("addr", addr).Msg("starting http server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server start")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := cacheClient.Close(); err != nil {
		log.Error().Err(err).Msg("close redis")
	}
	if err := db.Close(gormDB); err != nil {
		log.Error().Err(err).Msg("close database")
	}

	log.Info().Msg("server stopped")
}

func pingDB(gormDB *gorm.DB) handler.Pinger {
	return func(ctx context.Context) error {
		sqlDB, err := gormDB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
