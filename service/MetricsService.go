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
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/swfavorites/swfavorites-service/metrics"
	"github.com/swfavorites/swfavorites-service/repository"
	"github.com/swfavorites/swfavorites-service/view"
)

type MetricsService interface {
	CreateJob(schedule string) error
	RefreshFavoritesCount() error
}

func NewMetricsService(favoritesRepo repository.FavoritesRepository, c *cron.Cron) MetricsService {
	return &metricsServiceImpl{
		favoritesRepo: favoritesRepo,
		cron:          c,
	}
}

type metricsServiceImpl struct {
	favoritesRepo repository.FavoritesRepository
	cron          *cron.Cron
}

func (c *metricsServiceImpl) CreateJob(schedule string) error {
	_, err := c.cron.AddJob(schedule, &MetricsGetterJob{metricsService: c})
	if err != nil {
		log.Warnf("[Metrics service] Job wasn't added for schedule - %s. With error - %s", schedule, err)
		return err
	}
	log.Infof("[Metrics service] Job was created with schedule - %s", schedule)
	return nil
}

func (c *metricsServiceImpl) RefreshFavoritesCount() error {
	start := time.Now()
	for _, kind := range []view.FavoriteKind{view.FavoriteKindCharacter, view.FavoriteKindPlanet} {
		counts, err := c.favoritesRepo.GetFavoritesCount(kind)
		if err != nil {
			return err
		}
		total := 0
		for _, count := range counts {
			total += count
		}
		metrics.FavoritesCount.WithLabelValues(string(kind)).Set(float64(total))
	}
	log.Debugf("[Metrics service] favorites gauges refreshed in %v", time.Since(start))
	return nil
}

type MetricsGetterJob struct {
	metricsService MetricsService
}

func (j MetricsGetterJob) Run() {
	if err := j.metricsService.RefreshFavoritesCount(); err != nil {
		log.Errorf("[MetricsGetterJob-Run]  err - %s", err.Error())
	}
}
