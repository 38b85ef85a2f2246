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
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swfavorites/swfavorites-service/db"
	mService "github.com/swfavorites/swfavorites-service/migration/service"
	"github.com/swfavorites/swfavorites-service/repository"
)

type testRepositories struct {
	userRepo      repository.UserRepository
	characterRepo repository.CharacterRepository
	planetRepo    repository.PlanetRepository
	favoritesRepo repository.FavoritesRepository
}

func newTestRepositories(t *testing.T) *testRepositories {
	bp, err := db.NewBoltProvider(filepath.Join(t.TempDir(), uuid.New().String()+".db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, bp.Close()) })
	_, _, err = mService.NewBoltMigrationService(bp).Migrate()
	require.NoError(t, err)
	return &testRepositories{
		userRepo:      repository.NewUserRepositoryBolt(bp),
		characterRepo: repository.NewCharacterRepositoryBolt(bp),
		planetRepo:    repository.NewPlanetRepositoryBolt(bp),
		favoritesRepo: repository.NewFavoritesRepositoryBolt(bp),
	}
}

func (r *testRepositories) viewBuilder() FavoritesViewBuilder {
	return NewFavoritesViewBuilder(r.favoritesRepo, r.characterRepo, r.planetRepo)
}

func (r *testRepositories) favoritesService() FavoritesService {
	return NewFavoritesService(r.favoritesRepo, r.userRepo, r.characterRepo, r.planetRepo, r.viewBuilder())
}

func (r *testRepositories) userService() UserService {
	return NewUserService(r.userRepo, r.favoritesRepo, r.viewBuilder())
}
