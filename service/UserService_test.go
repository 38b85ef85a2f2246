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

package service

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swfavorites/swfavorites-service/context"
	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/exception"
	"github.com/swfavorites/swfavorites-service/view"
)

func TestUserService_DuplicateUsers(t *testing.T) {
	repos := newTestRepositories(t)
	svc := repos.userService()

	_, err := svc.CreateUser(view.UserReq{Username: "luke", Email: "luke@tatooine.org", Password: "x-wing"})
	require.NoError(t, err)

	_, err = svc.CreateUser(view.UserReq{Username: "luke", Email: "other@tatooine.org", Password: "x-wing"})
	customErr := requireCustomError(t, err, http.StatusBadRequest, exception.UsernameAlreadyTaken)
	assert.Equal(t, "Username luke is already taken", customErr.Resolved().Message)

	_, err = svc.CreateUser(view.UserReq{Username: "skywalker", Email: "LUKE@tatooine.org", Password: "x-wing"})
	requireCustomError(t, err, http.StatusBadRequest, exception.EmailAlreadyTaken)

	leia, err := svc.CreateUser(view.UserReq{Username: "leia", Email: "leia@alderaan.org", Password: "rebel"})
	require.NoError(t, err)
	_, err = svc.UpdateUser(leia.Id, view.UserReq{Username: "luke", Email: "leia@alderaan.org", Password: "rebel"})
	requireCustomError(t, err, http.StatusBadRequest, exception.UsernameAlreadyTaken)

	updated, err := svc.UpdateUser(leia.Id, view.UserReq{Username: "leia.organa", Email: "leia@alderaan.org", Password: "rebel"})
	require.NoError(t, err)
	assert.Equal(t, "leia.organa", updated.Username)

	_, err = svc.UpdateUser(100, view.UserReq{Username: "han", Email: "han@falcon.org", Password: "solo"})
	requireCustomError(t, err, http.StatusNotFound, exception.UserNotFound)
}

func TestUserService_Authenticate(t *testing.T) {
	repos := newTestRepositories(t)
	svc := repos.userService()

	created, err := svc.CreateUser(view.UserReq{Username: "vader", Email: "vader@empire.gov", Password: "dark side", IsAdmin: true})
	require.NoError(t, err)
	assert.True(t, created.IsAdmin)

	byName, err := svc.AuthenticateUser("vader", "dark side")
	require.NoError(t, err)
	assert.Equal(t, created.Id, byName.Id)

	byEmail, err := svc.AuthenticateUser("vader@empire.gov", "dark side")
	require.NoError(t, err)
	assert.True(t, byEmail.IsAdmin)

	_, err = svc.AuthenticateUser("vader", "light side")
	assert.Error(t, err)
	_, err = svc.AuthenticateUser("vader", "")
	assert.Error(t, err)
	_, err = svc.AuthenticateUser("palpatine", "dark side")
	assert.Error(t, err)

	require.NoError(t, svc.UpdateUserPassword(created.Id, "anakin"))
	_, err = svc.AuthenticateUser("vader", "dark side")
	assert.Error(t, err)
	_, err = svc.AuthenticateUser("vader", "anakin")
	assert.NoError(t, err)
}

func TestUserService_PasswordTooLong(t *testing.T) {
	repos := newTestRepositories(t)
	svc := repos.userService()

	_, err := svc.CreateUser(view.UserReq{Username: "yoda", Email: "yoda@dagobah.org", Password: strings.Repeat("a", 73)})
	requireCustomError(t, err, http.StatusBadRequest, exception.PasswordTooLong)
}

func TestUserService_GetUsersWithFavorites(t *testing.T) {
	repos := newTestRepositories(t)
	svc := repos.userService()
	first := createTestUser(t, repos)
	second := createTestUser(t, repos)
	planet := &entity.PlanetEntity{Name: "Hoth"}
	require.NoError(t, repos.planetRepo.CreatePlanet(planet))
	_, err := repos.favoritesService().AddFavorite(context.CreateFromId(second.Id), view.PlanetTarget(planet.Id))
	require.NoError(t, err)

	users, err := svc.GetUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.Id, users[0].Id)
	assert.NotNil(t, users[0].Favorites)
	assert.Empty(t, users[0].Favorites)
	require.Len(t, users[1].Favorites, 1)
	assert.Equal(t, "Hoth", users[1].Favorites[0].Planet.Name)

	require.NoError(t, svc.DeleteUser(second.Id))
	favorites, err := repos.favoritesRepo.GetFavorites()
	require.NoError(t, err)
	assert.Empty(t, favorites)
	requireCustomError(t, svc.DeleteUser(second.Id), http.StatusNotFound, exception.UserNotFound)
}
