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
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/swfavorites/swfavorites-service/client"
	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/exception"
	"github.com/swfavorites/swfavorites-service/metrics"
	"github.com/swfavorites/swfavorites-service/repository"
	"github.com/swfavorites/swfavorites-service/utils"
	"github.com/swfavorites/swfavorites-service/view"
	"golang.org/x/sync/errgroup"
)

type SwapiImportService interface {
	// ImportFromSwapi loads people and planets, skipping names that are already stored.
	ImportFromSwapi(ctx context.Context) (*view.SwapiImportResult, error)
	CreateJob(schedule string) error
}

func NewSwapiImportService(swapiClient client.SwapiClient, characterRepo repository.CharacterRepository, planetRepo repository.PlanetRepository, c *cron.Cron) SwapiImportService {
	return &swapiImportServiceImpl{
		swapiClient:   swapiClient,
		characterRepo: characterRepo,
		planetRepo:    planetRepo,
		cron:          c,
	}
}

type swapiImportServiceImpl struct {
	swapiClient   client.SwapiClient
	characterRepo repository.CharacterRepository
	planetRepo    repository.PlanetRepository
	cron          *cron.Cron
	mutex         sync.Mutex
}

func (s *swapiImportServiceImpl) ImportFromSwapi(ctx context.Context) (*view.SwapiImportResult, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	start := time.Now()

	var people []view.SwapiPerson
	var planets []view.SwapiPlanet
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		people, err = s.swapiClient.GetPeople(egCtx)
		if err != nil {
			return swapiUnavailable("people", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		planets, err = s.swapiClient.GetPlanets(egCtx)
		if err != nil {
			return swapiUnavailable("planets", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &view.SwapiImportResult{}
	for _, person := range people {
		existing, err := s.characterRepo.GetCharacterByName(person.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			result.Skipped++
			continue
		}
		if err = s.characterRepo.CreateCharacter(makeCharacterFromSwapi(person)); err != nil {
			return nil, err
		}
		result.CharactersImported++
	}
	for _, planet := range planets {
		existing, err := s.planetRepo.GetPlanetByName(planet.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			result.Skipped++
			continue
		}
		if err = s.planetRepo.CreatePlanet(makePlanetFromSwapi(planet)); err != nil {
			return nil, err
		}
		result.PlanetsImported++
	}
	metrics.SwapiImportedRecords.WithLabelValues(string(view.FavoriteKindCharacter)).Add(float64(result.CharactersImported))
	metrics.SwapiImportedRecords.WithLabelValues(string(view.FavoriteKindPlanet)).Add(float64(result.PlanetsImported))
	utils.PerfLog(time.Since(start).Milliseconds(), 30000, "ImportFromSwapi")
	log.Infof("SWAPI import finished: %d characters, %d planets imported, %d skipped",
		result.CharactersImported, result.PlanetsImported, result.Skipped)
	return result, nil
}

func (s *swapiImportServiceImpl) CreateJob(schedule string) error {
	_, err := s.cron.AddJob(schedule, &SwapiImportJob{importService: s})
	if err != nil {
		log.Warnf("[SWAPI import] Job wasn't added for schedule - %s. With error - %s", schedule, err)
		return err
	}
	log.Infof("[SWAPI import] Job was created with schedule - %s", schedule)
	return nil
}

type SwapiImportJob struct {
	importService SwapiImportService
}

func (j SwapiImportJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), client.DefaultContextTimeout*5)
	defer cancel()
	if _, err := j.importService.ImportFromSwapi(ctx); err != nil {
		log.Errorf("[SwapiImportJob-Run] err - %s", err.Error())
	}
}

var swapiMissingValues = []string{"", "unknown", "n/a", "none"}

// swapiValue maps the placeholders SWAPI uses for missing data to null.
func swapiValue(value string) *string {
	value = strings.TrimSpace(value)
	if utils.SliceContains(swapiMissingValues, value) {
		return nil
	}
	return &value
}

func makeCharacterFromSwapi(person view.SwapiPerson) *entity.CharacterEntity {
	return &entity.CharacterEntity{
		Name:      person.Name,
		Gender:    swapiValue(person.Gender),
		BirthYear: swapiValue(person.BirthYear),
	}
}

func makePlanetFromSwapi(planet view.SwapiPlanet) *entity.PlanetEntity {
	return &entity.PlanetEntity{
		Name:       planet.Name,
		Climate:    swapiValue(planet.Climate),
		Terrain:    swapiValue(planet.Terrain),
		Population: swapiValue(planet.Population),
	}
}

func swapiUnavailable(resource string, err error) *exception.CustomError {
	return &exception.CustomError{
		Status:  http.StatusBadGateway,
		Code:    exception.SwapiUnavailable,
		Message: exception.SwapiUnavailableMsg,
		Params:  map[string]interface{}{"resource": resource, "error": err.Error()},
		Debug:   err.Error(),
	}
}
