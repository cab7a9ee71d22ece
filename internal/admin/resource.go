package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "aura/internal/errors"
	"aura/internal/logger"
	"aura/internal/repository"
)

// Registrar is a named set of admin routes.
type Registrar interface {
	Name() string
	Register(g *echo.Group)
}

// Option configures a Resource.
type Option[T any] func(*Resource[T])

// ReadOnly drops the create and update routes. Delete stays available.
func ReadOnly[T any]() Option[T] {
	return func(r *Resource[T]) { r.readOnly = true }
}

// WithOwner tells the resource which user a row belongs to, so writes can
// invalidate that user's cached view.
func WithOwner[T any](owner func(*T) uint, invalidate func(ctx context.Context, userID uint)) Option[T] {
	return func(r *Resource[T]) {
		r.owner = owner
		r.invalidate = invalidate
	}
}

// Resource exposes list, get, create, update and delete for one model
// over its repository.
type Resource[T any] struct {
	name       string
	repo       repository.Repository[T]
	readOnly   bool
	owner      func(*T) uint
	invalidate func(ctx context.Context, userID uint)
}

// NewResource builds a resource named name backed by repo.
func NewResource[T any](name string, repo repository.Repository[T], opts ...Option[T]) *Resource[T] {
	r := &Resource[T]{name: name, repo: repo}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the path segment the resource is mounted on.
func (r *Resource[T]) Name() string { return r.name }

// Register mounts the resource routes on g.
func (r *Resource[T]) Register(g *echo.Group) {
	base := "/" + r.name
	g.GET(base, r.list)
	g.GET(base+"/:id", r.get)
	g.DELETE(base+"/:id", r.delete)
	if !r.readOnly {
		g.POST(base, r.create)
		g.PUT(base+"/:id", r.update)
	}
}

func (r *Resource[T]) list(c echo.Context) error {
	var page repository.Page
	err := echo.QueryParamsBinder(c).
		Int("limit", &page.Limit).
		Int("offset", &page.Offset).
		BindError()
	if err != nil {
		return fail(c, apperrors.NewValidationError("limit y offset deben ser enteros"))
	}

	items, err := r.repo.List(c.Request().Context(), page)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (r *Resource[T]) get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	item, err := r.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (r *Resource[T]) create(c echo.Context) error {
	item := new(T)
	if err := c.Bind(item); err != nil {
		return fail(c, errInvalidBody)
	}
	ctx := c.Request().Context()
	if err := r.repo.Create(ctx, item); err != nil {
		return fail(c, err)
	}
	r.touch(ctx, item)
	return c.JSON(http.StatusCreated, item)
}

func (r *Resource[T]) update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	ctx := c.Request().Context()

	// the previous owner's view goes stale too when a row changes hands
	if before, err := r.repo.FindByID(ctx, id); err == nil {
		r.touch(ctx, before)
	}

	item := new(T)
	if err := c.Bind(item); err != nil {
		return fail(c, errInvalidBody)
	}
	if err := r.repo.Update(ctx, id, item); err != nil {
		return fail(c, err)
	}
	r.touch(ctx, item)
	return c.JSON(http.StatusOK, item)
}

func (r *Resource[T]) delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	ctx := c.Request().Context()

	existing, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	if err := r.repo.Delete(ctx, id); err != nil {
		return fail(c, err)
	}
	r.touch(ctx, existing)

	logger.FromContext(ctx).Info().
		Str("resource", r.name).
		Uint64("id", uint64(id)).
		Msg("admin delete")
	return c.NoContent(http.StatusNoContent)
}

func (r *Resource[T]) touch(ctx context.Context, item *T) {
	if r.owner == nil || r.invalidate == nil || item == nil {
		return
	}
	if userID := r.owner(item); userID != 0 {
		r.invalidate(ctx, userID)
	}
}

func parseID(c echo.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("id inválido")
	}
	return uint(id), nil
}
