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
	"errors"
	"net/http"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swfavorites/swfavorites-service/context"
	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/exception"
	"github.com/swfavorites/swfavorites-service/repository"
	"github.com/swfavorites/swfavorites-service/view"
)

type failingFavoritesRepository struct {
	repository.FavoritesRepository
	err error
}

func (f failingFavoritesRepository) RemoveFavorite(userId int, target view.FavoriteTarget) (bool, error) {
	return false, f.err
}

func createTestUser(t *testing.T, repos *testRepositories) *view.AuthenticatedUser {
	user, err := repos.userService().CreateUser(view.UserReq{
		Username: randomdata.SillyName() + uuid.New().String()[:8],
		Email:    uuid.New().String()[:8] + randomdata.Email(),
		Password: randomdata.Alphanumeric(12),
	})
	require.NoError(t, err)
	return user
}

func requireCustomError(t *testing.T, err error, status int, code string) *exception.CustomError {
	t.Helper()
	var customErr *exception.CustomError
	require.True(t, errors.As(err, &customErr), "expected CustomError, got %T: %v", err, err)
	assert.Equal(t, status, customErr.Status)
	assert.Equal(t, code, customErr.Code)
	return customErr
}

func TestFavoritesService_AddAndRemove(t *testing.T) {
	repos := newTestRepositories(t)
	user := createTestUser(t, repos)
	planet := &entity.PlanetEntity{Name: "Tatooine"}
	require.NoError(t, repos.planetRepo.CreatePlanet(planet))
	character := &entity.CharacterEntity{Name: "Obi-Wan Kenobi"}
	require.NoError(t, repos.characterRepo.CreateCharacter(character))
	svc := repos.favoritesService()
	ctx := context.CreateFromId(user.Id)

	msg, err := svc.AddFavorite(ctx, view.PlanetTarget(planet.Id))
	require.NoError(t, err)
	assert.Equal(t, "Planet Tatooine added to favorites.", msg.Msg)

	msg, err = svc.AddFavorite(ctx, view.CharacterTarget(character.Id))
	require.NoError(t, err)
	assert.Equal(t, "Character Obi-Wan Kenobi added to favorites.", msg.Msg)

	favorites, err := svc.GetUserFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	require.NotNil(t, favorites[0].Planet)
	assert.Equal(t, 1, favorites[0].Planet.FavoritesCount)
	require.NotNil(t, favorites[1].Character)
	assert.Equal(t, "Obi-Wan Kenobi", favorites[1].Character.Name)

	msg, removed, err := svc.RemoveFavorite(ctx, view.CharacterTarget(character.Id))
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "Character removed from favorites.", msg.Msg)

	msg, removed, err = svc.RemoveFavorite(ctx, view.CharacterTarget(character.Id))
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, FavoriteNotFoundMsg, msg.Msg)
}

func TestFavoritesService_Preconditions(t *testing.T) {
	repos := newTestRepositories(t)
	svc := repos.favoritesService()

	_, err := svc.AddFavorite(context.CreateFromId(0), view.PlanetTarget(1))
	requireCustomError(t, err, http.StatusUnauthorized, exception.PrincipalNotResolved)

	_, err = svc.AddFavorite(context.CreateFromId(5), view.PlanetTarget(1))
	customErr := requireCustomError(t, err, http.StatusNotFound, exception.UserNotFound)
	assert.Equal(t, "User with id 5 not found", customErr.Resolved().Message)

	_, _, err = svc.RemoveFavorite(context.CreateFromId(5), view.PlanetTarget(1))
	requireCustomError(t, err, http.StatusNotFound, exception.UserNotFound)

	user := createTestUser(t, repos)
	_, err = svc.AddFavorite(context.CreateFromId(user.Id), view.PlanetTarget(1))
	requireCustomError(t, err, http.StatusNotFound, exception.PlanetNotFound)
	_, err = svc.AddFavorite(context.CreateFromId(user.Id), view.CharacterTarget(1))
	requireCustomError(t, err, http.StatusNotFound, exception.CharacterNotFound)
}

func TestFavoritesService_RemoveRepositoryError(t *testing.T) {
	repos := newTestRepositories(t)
	user := createTestUser(t, repos)
	repoErr := errors.New("storage is gone")
	svc := NewFavoritesService(failingFavoritesRepository{err: repoErr}, repos.userRepo, repos.characterRepo, repos.planetRepo, repos.viewBuilder())

	_, _, err := svc.RemoveFavorite(context.CreateFromId(user.Id), view.PlanetTarget(1))
	assert.ErrorIs(t, err, repoErr)
}

func TestFavoritesService_CreateFavoriteRecord(t *testing.T) {
	repos := newTestRepositories(t)
	user := createTestUser(t, repos)
	planet := &entity.PlanetEntity{Name: "Dagobah"}
	require.NoError(t, repos.planetRepo.CreatePlanet(planet))
	svc := repos.favoritesService()
	planetId := planet.Id

	_, err := svc.CreateFavoriteRecord(view.FavoriteReq{UserId: user.Id})
	requireCustomError(t, err, http.StatusBadRequest, exception.FavoriteTargetAmbiguous)

	_, err = svc.CreateFavoriteRecord(view.FavoriteReq{UserId: user.Id, CharacterId: &planetId, PlanetId: &planetId})
	requireCustomError(t, err, http.StatusBadRequest, exception.FavoriteTargetAmbiguous)

	record, err := svc.CreateFavoriteRecord(view.FavoriteReq{UserId: user.Id, PlanetId: &planetId})
	require.NoError(t, err)
	assert.Equal(t, view.FavoriteKindPlanet, record.Kind)
	assert.Equal(t, planetId, record.TargetId)

	records, err := svc.GetFavoriteRecords(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []view.FavoriteRecord{*record}, records)

	second, err := svc.CreateFavoriteRecord(view.FavoriteReq{UserId: user.Id, PlanetId: &planetId})
	require.NoError(t, err)
	records, err = svc.GetFavoriteRecords(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []view.FavoriteRecord{*second}, records)
	records, err = svc.GetFavoriteRecords(1, 5)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, svc.DeleteFavoriteRecord(record.Id))
	err = svc.DeleteFavoriteRecord(record.Id)
	requireCustomError(t, err, http.StatusNotFound, exception.FavoriteNotFound)
}
