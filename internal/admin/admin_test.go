package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"aura/internal/catalog"
	"aura/internal/db/dbtest"
	"aura/internal/model"
	"aura/internal/repository"
)

type invalidations struct {
	mu  sync.Mutex
	ids []uint
}

func (i *invalidations) record(_ context.Context, userID uint) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ids = append(i.ids, userID)
}

type fixture struct {
	e       *echo.Echo
	db      *gorm.DB
	users   repository.UserRepository
	touched *invalidations
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gormDB := dbtest.Open(t)
	users := repository.NewUserRepository(gormDB)
	touched := &invalidations{}

	adm := New(Credentials{User: "admin", Password: "pw"}, Stores{
		Users:       users,
		Profiles:    repository.New[model.UserProfile](gormDB),
		Videos:      repository.New[model.PlaylistVideo](gormDB),
		Themes:      repository.New[model.FavoriteTheme](gormDB),
		Unlockables: repository.NewUnlockableRepository(gormDB),
	}, touched.record)

	e := echo.New()
	adm.Mount(e.Group("/admin"))
	return &fixture{e: e, db: gormDB, users: users, touched: touched}
}

func (f *fixture) do(t *testing.T, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authed {
		req.SetBasicAuth("admin", "pw")
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) seedUser(t *testing.T, email string) uint {
	t.Helper()
	id, err := f.users.CreateWithProfile(context.Background(),
		&model.User{Name: "Ana", Email: email, PasswordHash: "x"}, model.NewUserProfile())
	require.NoError(t, err)
	return id
}

func TestAdmin_RequiresBasicAuth(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodGet, "/admin", "", false).Code)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.SetBasicAuth("admin", "wrong")
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/admin", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var idx IndexResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &idx))
	assert.Equal(t, []string{"users", "profiles", "videos", "themes", "unlockables"}, idx.Resources)
}

func TestAdmin_UnlockablesCRUD(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/admin/unlockables", `{"name":"Bosque","item_type":"theme","points_cost":50}`, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created model.Unlockable
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	rec = f.do(t, http.MethodPost, "/admin/unlockables", `{"name":"Bosque","points_cost":1}`, true)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, http.MethodPut, "/admin/unlockables/1", `{"name":"Bosque","item_type":"theme","points_cost":75}`, true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated model.Unlockable
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 75, updated.PointsCost)
	assert.Equal(t, created.ID, updated.ID)

	rec = f.do(t, http.MethodPut, "/admin/unlockables/42", `{"name":"x","points_cost":1}`, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/admin/unlockables?limit=10&offset=0", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []model.Unlockable
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/admin/unlockables?limit=abc", "", true).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodGet, "/admin/unlockables/abc", "", true).Code)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/admin/unlockables/1", "", true).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/admin/unlockables/1", "", true).Code)
}

func TestAdmin_UsersAreReadAndDeleteOnly(t *testing.T) {
	f := newFixture(t)
	id := f.seedUser(t, "ana@x.com")

	rec := f.do(t, http.MethodPost, "/admin/users", `{"name":"Bob","email":"bob@x.com"}`, true)
	assert.Contains(t, []int{http.StatusMethodNotAllowed, http.StatusNotFound}, rec.Code)
	var users int64
	require.NoError(t, f.db.Model(&model.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)

	rec = f.do(t, http.MethodGet, "/admin/users/1", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	require.NoError(t, f.db.Create(&model.PlaylistVideo{UserID: id, YoutubeVideoID: "abc", Title: "t"}).Error)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/admin/users/1", "", true).Code)

	var videos, profiles int64
	require.NoError(t, f.db.Model(&model.PlaylistVideo{}).Count(&videos).Error)
	require.NoError(t, f.db.Model(&model.UserProfile{}).Count(&profiles).Error)
	assert.Zero(t, videos)
	assert.Zero(t, profiles)
	assert.Contains(t, f.touched.ids, id)
}

func TestAdmin_OwnedWritesInvalidateOwner(t *testing.T) {
	f := newFixture(t)
	id := f.seedUser(t, "ana@x.com")

	rec := f.do(t, http.MethodPost, "/admin/themes", `{"user_id":1,"theme_name":"Mar","primary_color":"#0000FF","accent_color":"#00FFFF"}`, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, []uint{id}, f.touched.ids)
}

func TestAdmin_UnknownOwnerIsBadRequest(t *testing.T) {
	f := newFixture(t)
	id := f.seedUser(t, "ana@x.com")

	rec := f.do(t, http.MethodPost, "/admin/videos", `{"user_id":999,"youtube_video_id":"abc","title":"t"}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")

	rec = f.do(t, http.MethodPut, "/admin/profiles/1", `{"active_theme_name":"Bosque","points":5}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodPut, "/admin/profiles/1", `{"user_id":999,"active_theme_name":"Bosque"}`, true)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	var profile model.UserProfile
	require.NoError(t, f.db.First(&profile, 1).Error)
	assert.Equal(t, id, profile.UserID)
	assert.Equal(t, model.DefaultThemeName, profile.ActiveThemeName)

	rec = f.do(t, http.MethodPost, "/admin/profiles", `{"user_id":1}`, true)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAdmin_UnlockLinks(t *testing.T) {
	f := newFixture(t)
	id := f.seedUser(t, "ana@x.com")
	require.NoError(t, f.db.Create(&model.Unlockable{Name: "Bosque", PointsCost: 10}).Error)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodPost, "/admin/users/1/unlocks/1", "", true).Code)
	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodPost, "/admin/users/1/unlocks/1", "", true).Code)

	rec := f.do(t, http.MethodGet, "/admin/users/1/unlocks", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []model.Unlockable
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Bosque", items[0].Name)

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPost, "/admin/users/1/unlocks/99", "", true).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPost, "/admin/users/99/unlocks/1", "", true).Code)

	assert.Equal(t, http.StatusNoContent, f.do(t, http.MethodDelete, "/admin/users/1/unlocks/1", "", true).Code)
	rec = f.do(t, http.MethodGet, "/admin/users/1/unlocks", "", true)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.Contains(t, f.touched.ids, id)
}

func TestAdmin_Seed(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/admin/seed", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	var res catalog.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, len(catalog.Default()), res.Created)

	rec = f.do(t, http.MethodPost, "/admin/seed", `[{"name":"Paz","points_cost":5}]`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, catalog.Result{Updated: 1}, res)

	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodPost, "/admin/seed", `[{"points_cost":5}]`, true).Code)
}
