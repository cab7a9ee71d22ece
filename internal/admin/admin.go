// Package admin is a JSON browser over the stored models, guarded by HTTP
// basic auth and mounted under /admin.
package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"aura/internal/catalog"
	apperrors "aura/internal/errors"
	"aura/internal/logger"
	"aura/internal/model"
	"aura/internal/repository"
)

var (
	errInvalidBody    = apperrors.NewValidationError("Cuerpo de la petición inválido")
	errRecordNotFound = apperrors.NewNotFoundError("Registro no encontrado")
	errRecordConflict = apperrors.NewConflictError("El registro ya existe")
	errBadReference   = apperrors.NewValidationError("El registro referenciado no existe")
)

// Credentials guard the admin surface.
type Credentials struct {
	User     string
	Password string
}

// Stores is everything the admin surface reads and writes.
type Stores struct {
	Users       repository.UserRepository
	Profiles    repository.Repository[model.UserProfile]
	Videos      repository.Repository[model.PlaylistVideo]
	Themes      repository.Repository[model.FavoriteTheme]
	Unlockables repository.UnlockableRepository
}

// Admin holds the resources mounted under /admin.
type Admin struct {
	creds      Credentials
	stores     Stores
	invalidate func(ctx context.Context, userID uint)
	resources  []Registrar
}

// New builds the admin surface. invalidate drops a user's cached view and
// may be nil.
func New(creds Credentials, stores Stores, invalidate func(ctx context.Context, userID uint)) *Admin {
	if invalidate == nil {
		invalidate = func(context.Context, uint) {}
	}

	a := &Admin{creds: creds, stores: stores, invalidate: invalidate}
	a.resources = []Registrar{
		// users are created through registration so the password is hashed
		NewResource[model.User]("users", stores.Users,
			ReadOnly[model.User](),
			WithOwner(func(u *model.User) uint { return u.ID }, invalidate)),
		NewResource[model.UserProfile]("profiles", stores.Profiles,
			WithOwner(func(p *model.UserProfile) uint { return p.UserID }, invalidate)),
		NewResource[model.PlaylistVideo]("videos", stores.Videos,
			WithOwner(func(v *model.PlaylistVideo) uint { return v.UserID }, invalidate)),
		NewResource[model.FavoriteTheme]("themes", stores.Themes,
			WithOwner(func(t *model.FavoriteTheme) uint { return t.UserID }, invalidate)),
		NewResource[model.Unlockable]("unlockables", stores.Unlockables),
	}
	return a
}

// Mount registers every admin route on g behind basic auth.
func (a *Admin) Mount(g *echo.Group) {
	g.Use(middleware.BasicAuth(a.authorize))

	g.GET("", a.index)
	for _, r := range a.resources {
		r.Register(g)
	}

	g.GET("/users/:id/unlocks", a.listUnlocks)
	g.POST("/users/:id/unlocks/:item_id", a.unlock)
	g.DELETE("/users/:id/unlocks/:item_id", a.lock)
	g.POST("/seed", a.seed)
}

func (a *Admin) authorize(user, password string, _ echo.Context) (bool, error) {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(a.creds.User)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.creds.Password)) == 1
	return userOK && passOK, nil
}

// IndexResponse lists the resource names.
type IndexResponse struct {
	Resources []string `json:"resources"`
}

func (a *Admin) index(c echo.Context) error {
	names := make([]string, 0, len(a.resources))
	for _, r := range a.resources {
		names = append(names, r.Name())
	}
	return c.JSON(http.StatusOK, IndexResponse{Resources: names})
}

func (a *Admin) listUnlocks(c echo.Context) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	items, err := a.stores.Users.ListUnlocked(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (a *Admin) unlock(c echo.Context) error {
	return a.link(c, a.stores.Users.Unlock)
}

func (a *Admin) lock(c echo.Context) error {
	return a.link(c, a.stores.Users.Lock)
}

func (a *Admin) link(c echo.Context, op func(ctx context.Context, userID, itemID uint) error) error {
	userID, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}
	itemID, err := parseID(c, "item_id")
	if err != nil {
		return fail(c, err)
	}

	ctx := c.Request().Context()
	if err := op(ctx, userID, itemID); err != nil {
		return fail(c, err)
	}
	a.invalidate(ctx, userID)
	return c.NoContent(http.StatusNoContent)
}

// seed upserts the catalog posted in the body, or the built-in one when
// the body is empty.
func (a *Admin) seed(c echo.Context) error {
	items := catalog.Default()
	if c.Request().ContentLength != 0 {
		decoded, err := catalog.Decode(c.Request().Body)
		if err != nil {
			return fail(c, apperrors.NewValidationError(err.Error()))
		}
		items = decoded
	}

	res, err := catalog.Seed(c.Request().Context(), a.stores.Unlockables, items)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// fail maps repository sentinels onto the error taxonomy and answers with
// the {"msg","code"} body.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		err = errRecordNotFound
	case errors.Is(err, repository.ErrDuplicate):
		err = errRecordConflict
	case errors.Is(err, repository.ErrInvalidReference):
		err = errBadReference
	}

	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= 500 {
		logger.FromContext(c.Request().Context()).Error().Err(err).
			Str("path", c.Path()).
			Msg("admin request failed")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
