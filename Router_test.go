// Copyright 2024-2025 NetCracker Technology Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swfavorites/swfavorites-service/client"
	"github.com/swfavorites/swfavorites-service/controller"
	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/security"
	"github.com/swfavorites/swfavorites-service/service"
	"github.com/swfavorites/swfavorites-service/view"
)

type testEnv struct {
	handler     http.Handler
	repos       *repositories
	userService service.UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Setenv("PRODUCTION_MODE", "false")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("DEFAULT_USER_ID", "1")
	t.Setenv("LOCAL_DB_PATH", filepath.Join(t.TempDir(), uuid.New().String()+".db"))

	systemInfoService, err := service.NewSystemInfoService()
	require.NoError(t, err)
	repos, storage, err := initStorage(systemInfoService)
	require.NoError(t, err)
	t.Cleanup(func() { storage.Close() })

	cronInstance := cron.New()
	viewBuilder := service.NewFavoritesViewBuilder(repos.favoritesRepo, repos.characterRepo, repos.planetRepo)
	userService := service.NewUserService(repos.userRepo, repos.favoritesRepo, viewBuilder)
	favoritesService := service.NewFavoritesService(repos.favoritesRepo, repos.userRepo, repos.characterRepo, repos.planetRepo, viewBuilder)
	excelService := service.NewExcelService(repos.favoritesRepo, repos.userRepo, repos.characterRepo, repos.planetRepo)
	swapiImportService := service.NewSwapiImportService(client.NewSwapiClient("http://localhost:0"), repos.characterRepo, repos.planetRepo, cronInstance)
	require.NoError(t, security.SetupGoGuardian(userService, systemInfoService))

	readyChan := make(chan bool, 1)
	readyChan <- true
	router := makeRouter(controllers{
		health:      controller.NewHealthController(readyChan),
		systemInfo:  controller.NewSystemInfoController(systemInfoService),
		character:   controller.NewCharacterController(service.NewCharacterService(repos.characterRepo, repos.favoritesRepo)),
		planet:      controller.NewPlanetController(service.NewPlanetService(repos.planetRepo, repos.favoritesRepo)),
		user:        controller.NewUserController(userService),
		favorites:   controller.NewFavoritesController(favoritesService, excelService),
		swapiImport: controller.NewSwapiImportController(swapiImportService),
	})
	return &testEnv{
		handler:     makeHandler(router, "*"),
		repos:       repos,
		userService: userService,
	}
}

func (e *testEnv) do(t *testing.T, method string, path string, body string, prepare ...func(r *http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, p := range prepare {
		p(req)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) createUser(t *testing.T, username string, isAdmin bool) *view.AuthenticatedUser {
	user, err := e.userService.CreateUser(view.UserReq{
		Username: username,
		Email:    username + "@example.com",
		Password: "password",
		IsAdmin:  isAdmin,
	})
	require.NoError(t, err)
	return user
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result), rec.Body.String())
	return result
}

func TestFavoritePlanetScenario(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "luke", false)
	require.Equal(t, 1, user.Id)
	require.NoError(t, env.repos.planetRepo.CreatePlanet(&entity.PlanetEntity{Name: "Tatooine"}))

	rec := env.do(t, http.MethodPost, "/favorite/planet/1", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Planet Tatooine added to favorites.", decode[view.Message](t, rec).Msg)

	rec = env.do(t, http.MethodGet, "/users/favorites", "")
	require.Equal(t, http.StatusOK, rec.Code)
	favorites := decode[[]view.Favorite](t, rec)
	require.Len(t, favorites, 1)
	require.NotNil(t, favorites[0].Planet)
	assert.Equal(t, "Tatooine", favorites[0].Planet.Name)
	assert.Nil(t, favorites[0].Character)

	rec = env.do(t, http.MethodDelete, "/favorite/planet/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Planet removed from favorites.", decode[view.Message](t, rec).Msg)

	rec = env.do(t, http.MethodDelete, "/favorite/planet/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg": "Favorite not found."}`, rec.Body.String())
}

func TestFavoriteCharacterScenario(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "obiwan", false)
	require.NoError(t, env.repos.characterRepo.CreateCharacter(&entity.CharacterEntity{Name: "Obi-Wan Kenobi"}))

	rec := env.do(t, http.MethodPost, "/favorite/people/1", "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Character Obi-Wan Kenobi added to favorites.", decode[view.Message](t, rec).Msg)

	rec = env.do(t, http.MethodGet, "/people/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[view.Character](t, rec).FavoritesCount)

	rec = env.do(t, http.MethodDelete, "/favorite/people/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Character removed from favorites.", decode[view.Message](t, rec).Msg)
}

func TestOversizedIdsAreNotFound(t *testing.T) {
	env := newTestEnv(t)
	admin := env.createUser(t, "yoda", true)
	const huge = "99999999999999999999"

	rec := env.do(t, http.MethodGet, "/people/"+huge, "")
	require.Equal(t, http.StatusNotFound, rec.Code, rec.Body.String())
	assert.Equal(t, "21", decode[map[string]interface{}](t, rec)["code"])

	rec = env.do(t, http.MethodGet, "/planets/"+huge, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "22", decode[map[string]interface{}](t, rec)["code"])

	rec = env.do(t, http.MethodPost, "/favorite/planet/"+huge, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "22", decode[map[string]interface{}](t, rec)["code"])

	rec = env.do(t, http.MethodDelete, "/favorite/people/"+huge, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg": "Favorite not found."}`, rec.Body.String())

	rec = env.do(t, http.MethodDelete, "/admin/favorites/"+huge, "", func(r *http.Request) {
		r.SetBasicAuth(admin.Username, "password")
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "23", decode[map[string]interface{}](t, rec)["code"])
}

func TestFavoriteDuplicatesAreKept(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "leia", false)
	require.NoError(t, env.repos.planetRepo.CreatePlanet(&entity.PlanetEntity{Name: "Alderaan"}))

	for i := 0; i < 2; i++ {
		rec := env.do(t, http.MethodPost, "/favorite/planet/1", "")
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := env.do(t, http.MethodGet, "/planets/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[view.Planet](t, rec).FavoritesCount)

	rec = env.do(t, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	users := decode[[]view.User](t, rec)
	require.Len(t, users, 1)
	assert.Len(t, users[0].Favorites, 2)
}

func TestFavoriteCharacterNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "han", false)

	rec := env.do(t, http.MethodPost, "/favorite/people/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "21", decode[map[string]interface{}](t, rec)["code"])

	rec = env.do(t, http.MethodDelete, "/favorite/people/7", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"msg": "Favorite not found."}`, rec.Body.String())
}

func TestFavoritesWithoutUser(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/users/favorites", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "20", decode[map[string]interface{}](t, rec)["code"])
}

func TestReadEndpoints(t *testing.T) {
	env := newTestEnv(t)
	gender := "male"
	require.NoError(t, env.repos.characterRepo.CreateCharacter(&entity.CharacterEntity{Name: "Luke Skywalker", Gender: &gender}))

	rec := env.do(t, http.MethodGet, "/people", "")
	require.Equal(t, http.StatusOK, rec.Code)
	people := decode[[]map[string]interface{}](t, rec)
	require.Len(t, people, 1)

	rec = env.do(t, http.MethodGet, "/people/1/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, people[0], decode[map[string]interface{}](t, rec))
	assert.Nil(t, people[0]["birth_year"])
	assert.Equal(t, float64(0), people[0]["favorites_count"])

	rec = env.do(t, http.MethodGet, "/people/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/planets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestUnknownRoutes(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/people/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[map[string]interface{}](t, rec)
	assert.Equal(t, "10", body["code"])
	assert.Equal(t, "The requested URL /people/abc was not found on the server", body["message"])

	rec = env.do(t, http.MethodPut, "/people", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSitemap(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	sitemap := decode[view.Sitemap](t, rec)
	assert.Contains(t, sitemap.Routes, view.Route{Method: http.MethodGet, Path: "/people/{id}"})
	assert.Contains(t, sitemap.Routes, view.Route{Method: http.MethodDelete, Path: "/favorite/planet/{id}"})
	assert.Contains(t, sitemap.Routes, view.Route{Method: http.MethodGet, Path: "/users/favorites"})
}

func TestAdminAccess(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "luke", false)
	env.createUser(t, "vader", true)

	rec := env.do(t, http.MethodGet, "/admin/users", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/admin/users", "", func(r *http.Request) {
		r.SetBasicAuth("vader", "wrong")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/admin/users", "", func(r *http.Request) {
		r.SetBasicAuth("vader@example.com", "password")
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]view.User](t, rec), 2)

	rec = env.do(t, http.MethodPost, "/admin/planets", `{"name": "Hoth", "climate": "frozen"}`, func(r *http.Request) {
		r.SetBasicAuth("vader", "password")
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	planet := decode[view.Planet](t, rec)
	assert.Equal(t, "Hoth", planet.Name)

	rec = env.do(t, http.MethodPost, "/admin/favorites", `{"user_id": 1, "character_id": 1, "planet_id": 1}`, func(r *http.Request) {
		r.SetBasicAuth("vader", "password")
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocalTokenAuth(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "luke", false)
	env.createUser(t, "vader", true)

	rec := env.do(t, http.MethodPost, "/auth/local", "", func(r *http.Request) {
		r.SetBasicAuth("vader", "password")
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tokens := decode[view.UserTokens](t, rec)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.True(t, tokens.User.IsAdmin)

	rec = env.do(t, http.MethodGet, "/admin/favorites", "", func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = env.do(t, http.MethodPost, "/auth/local", "", func(r *http.Request) {
		r.SetBasicAuth("vader", "nope")
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDemotedAdminLosesAccess(t *testing.T) {
	env := newTestEnv(t)
	vader := env.createUser(t, "vader", true)

	rec := env.do(t, http.MethodPost, "/auth/local", "", func(r *http.Request) {
		r.SetBasicAuth("vader", "password")
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tokens := decode[view.UserTokens](t, rec)
	withToken := func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	}
	withPassword := func(r *http.Request) {
		r.SetBasicAuth("vader", "password")
	}

	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/admin/users", "", withToken).Code)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/admin/users", "", withPassword).Code)

	_, err := env.userService.UpdateUser(vader.Id, view.UserReq{
		Username: "vader",
		Email:    "vader@example.com",
		Password: "password",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodGet, "/admin/users", "", withToken).Code)
	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodGet, "/admin/users", "", withPassword).Code)

	require.NoError(t, env.userService.DeleteUser(vader.Id))
	assert.Equal(t, http.StatusForbidden, env.do(t, http.MethodGet, "/admin/users", "", withToken).Code)
}

func TestOperationsEndpoints(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/system/info", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, view.StorageLocal, decode[view.SystemInfo](t, rec).Storage)

	rec = env.do(t, http.MethodGet, "/planets", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

type brokenResponseWriter struct {
	*httptest.ResponseRecorder
}

func (b brokenResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestFavoritesExportLogsWriteFailure(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "vader", true)
	hook := logtest.NewGlobal()
	t.Cleanup(hook.Reset)

	req := httptest.NewRequest(http.MethodGet, "/admin/favorites/export", nil)
	req.SetBasicAuth("vader", "password")
	rec := brokenResponseWriter{httptest.NewRecorder()}
	env.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var messages []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == log.ErrorLevel {
			messages = append(messages, entry.Message)
		}
	}
	assert.Contains(t, strings.Join(messages, "\n"), "Failed to write favorites workbook")
}
