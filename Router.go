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
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swfavorites/swfavorites-service/controller"
	mw "github.com/swfavorites/swfavorites-service/middleware"
	"github.com/swfavorites/swfavorites-service/security"
)

type controllers struct {
	health      controller.HealthController
	systemInfo  controller.SystemInfoController
	character   controller.CharacterController
	planet      controller.PlanetController
	user        controller.UserController
	favorites   controller.FavoritesController
	swapiImport controller.SwapiImportController
}

func makeRouter(c controllers) *mux.Router {
	r := mux.NewRouter()
	r.Use(mw.PrometheusMiddleware)
	r.NotFoundHandler = controller.NotFoundHandler()
	r.MethodNotAllowedHandler = controller.MethodNotAllowedHandler()

	sitemapController := controller.NewSitemapController(r)
	r.HandleFunc("/", security.NoSecure(sitemapController.GetSitemap)).Methods(http.MethodGet)

	r.HandleFunc("/people", security.NoSecure(c.character.GetCharacters)).Methods(http.MethodGet)
	r.HandleFunc("/people/{id:[0-9]+}", security.NoSecure(c.character.GetCharacter)).Methods(http.MethodGet)
	r.HandleFunc("/planets", security.NoSecure(c.planet.GetPlanets)).Methods(http.MethodGet)
	r.HandleFunc("/planets/{id:[0-9]+}", security.NoSecure(c.planet.GetPlanet)).Methods(http.MethodGet)
	r.HandleFunc("/users", security.NoSecure(c.user.GetUsers)).Methods(http.MethodGet)

	r.HandleFunc("/users/favorites", security.Secure(c.favorites.GetUserFavorites)).Methods(http.MethodGet)
	r.HandleFunc("/favorite/planet/{id:[0-9]+}", security.Secure(c.favorites.AddFavoritePlanet)).Methods(http.MethodPost)
	r.HandleFunc("/favorite/planet/{id:[0-9]+}", security.Secure(c.favorites.RemoveFavoritePlanet)).Methods(http.MethodDelete)
	r.HandleFunc("/favorite/people/{id:[0-9]+}", security.Secure(c.favorites.AddFavoriteCharacter)).Methods(http.MethodPost)
	r.HandleFunc("/favorite/people/{id:[0-9]+}", security.Secure(c.favorites.RemoveFavoriteCharacter)).Methods(http.MethodDelete)

	//admin
	r.HandleFunc("/admin/users", security.SecureAdmin(c.user.GetUsers)).Methods(http.MethodGet)
	r.HandleFunc("/admin/users", security.SecureAdmin(c.user.CreateUser)).Methods(http.MethodPost)
	r.HandleFunc("/admin/users/{id:[0-9]+}", security.SecureAdmin(c.user.UpdateUser)).Methods(http.MethodPut)
	r.HandleFunc("/admin/users/{id:[0-9]+}", security.SecureAdmin(c.user.DeleteUser)).Methods(http.MethodDelete)
	r.HandleFunc("/admin/people", security.SecureAdmin(c.character.GetCharacters)).Methods(http.MethodGet)
	r.HandleFunc("/admin/people", security.SecureAdmin(c.character.CreateCharacter)).Methods(http.MethodPost)
	r.HandleFunc("/admin/people/{id:[0-9]+}", security.SecureAdmin(c.character.UpdateCharacter)).Methods(http.MethodPut)
	r.HandleFunc("/admin/people/{id:[0-9]+}", security.SecureAdmin(c.character.DeleteCharacter)).Methods(http.MethodDelete)
	r.HandleFunc("/admin/planets", security.SecureAdmin(c.planet.GetPlanets)).Methods(http.MethodGet)
	r.HandleFunc("/admin/planets", security.SecureAdmin(c.planet.CreatePlanet)).Methods(http.MethodPost)
	r.HandleFunc("/admin/planets/{id:[0-9]+}", security.SecureAdmin(c.planet.UpdatePlanet)).Methods(http.MethodPut)
	r.HandleFunc("/admin/planets/{id:[0-9]+}", security.SecureAdmin(c.planet.DeletePlanet)).Methods(http.MethodDelete)
	r.HandleFunc("/admin/favorites", security.SecureAdmin(c.favorites.GetFavoriteRecords)).Methods(http.MethodGet)
	r.HandleFunc("/admin/favorites", security.SecureAdmin(c.favorites.CreateFavoriteRecord)).Methods(http.MethodPost)
	r.HandleFunc("/admin/favorites/export", security.SecureAdmin(c.favorites.ExportFavorites)).Methods(http.MethodGet)
	r.HandleFunc("/admin/favorites/{id:[0-9]+}", security.SecureAdmin(c.favorites.DeleteFavoriteRecord)).Methods(http.MethodDelete)
	r.HandleFunc("/admin/import/swapi", security.SecureAdmin(c.swapiImport.ImportFromSwapi)).Methods(http.MethodPost)

	r.HandleFunc("/auth/local", security.NoSecure(security.CreateLocalUserToken)).Methods(http.MethodPost)

	r.HandleFunc("/live", c.health.HandleLiveRequest).Methods(http.MethodGet)
	r.HandleFunc("/ready", c.health.HandleReadyRequest).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/system/info", security.NoSecure(c.systemInfo.GetSystemInfo)).Methods(http.MethodGet)

	return r
}

// makeHandler wraps the router with the middlewares that have to run before route matching.
func makeHandler(r *mux.Router, originAllowed string) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{originAllowed}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", mw.RequestIdHeader}),
		handlers.ExposedHeaders([]string{mw.RequestIdHeader, "Content-Disposition"}),
	)
	return cors(mw.RequestIdMiddleware(mw.StripTrailingSlash(r)))
}
