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
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swfavorites/swfavorites-service/context"
	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/metrics"
	"github.com/swfavorites/swfavorites-service/view"
)

func TestMetricsService_RefreshFavoritesCount(t *testing.T) {
	repos := newTestRepositories(t)
	user := createTestUser(t, repos)
	planet := &entity.PlanetEntity{Name: "Naboo"}
	require.NoError(t, repos.planetRepo.CreatePlanet(planet))
	favoritesService := repos.favoritesService()
	for i := 0; i < 3; i++ {
		_, err := favoritesService.AddFavorite(context.CreateFromId(user.Id), view.PlanetTarget(planet.Id))
		require.NoError(t, err)
	}

	metricsService := NewMetricsService(repos.favoritesRepo, cron.New())
	require.NoError(t, metricsService.RefreshFavoritesCount())
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.FavoritesCount.WithLabelValues(string(view.FavoriteKindPlanet))))
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.FavoritesCount.WithLabelValues(string(view.FavoriteKindCharacter))))

	assert.NoError(t, metricsService.CreateJob("*/5 * * * *"))
	assert.Error(t, metricsService.CreateJob("every now and then"))
}
