package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"aura/internal/service"
)

// UserHandler serves the caller's own data.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Me godoc
// @Summary Current user
// @Description Returns the caller with profile, playlist, favorite themes and unlocked items.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return fail(c, err)
	}
	user, err := h.svc.Me(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
