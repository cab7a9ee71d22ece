package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "aura/internal/errors"
	"aura/internal/logger"
)

// RouteInfo is one entry of the sitemap.
type RouteInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// SitemapResponse lists every registered route.
type SitemapResponse struct {
	Routes []RouteInfo `json:"routes"`
}

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

// SiteHandler serves the root sitemap and the health probe.
type SiteHandler struct {
	routes func() []*echo.Route
	db     Pinger
}

// NewSiteHandler creates a site handler. routes is usually e.Routes.
func NewSiteHandler(routes func() []*echo.Route, db Pinger) *SiteHandler {
	return &SiteHandler{routes: routes, db: db}
}

// Sitemap godoc
// @Summary List routes
// @Tags site
// @Produce json
// @Success 200 {object} SitemapResponse
// @Router / [get]
func (h *SiteHandler) Sitemap(c echo.Context) error {
	seen := make(map[RouteInfo]struct{})
	routes := make([]RouteInfo, 0)
	for _, r := range h.routes() {
		if r.Method == echo.RouteNotFound {
			continue
		}
		info := RouteInfo{Method: r.Method, Path: r.Path}
		if _, dup := seen[info]; dup {
			continue
		}
		seen[info] = struct{}{}
		routes = append(routes, info)
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})
	return c.JSON(http.StatusOK, SitemapResponse{Routes: routes})
}

// Health godoc
// @Summary Liveness and database reachability
// @Tags site
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 503 {object} errors.ErrorResponse
// @Router /healthz [get]
func (h *SiteHandler) Health(c echo.Context) error {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.db(ctx); err != nil {
			logger.FromContext(c.Request().Context()).Warn().Err(err).Msg("database ping failed")
			return echo.NewHTTPError(http.StatusServiceUnavailable, apperrors.ErrorResponse{
				Msg:  "database unavailable",
				Code: "UNAVAILABLE",
			})
		}
	}
	return c.String(http.StatusOK, "ok")
}
