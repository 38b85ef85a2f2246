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

	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/exception"
	"github.com/swfavorites/swfavorites-service/repository"
	"github.com/swfavorites/swfavorites-service/view"
)

type PlanetService interface {
	GetPlanets() ([]view.Planet, error)
	GetPlanet(id int) (*view.Planet, error)
	CreatePlanet(req view.PlanetReq) (*view.Planet, error)
	UpdatePlanet(id int, req view.PlanetReq) (*view.Planet, error)
	DeletePlanet(id int) error
}

func NewPlanetService(repo repository.PlanetRepository, favoritesRepo repository.FavoritesRepository) PlanetService {
	return &planetServiceImpl{
		repo:          repo,
		favoritesRepo: favoritesRepo,
	}
}

type planetServiceImpl struct {
	repo          repository.PlanetRepository
	favoritesRepo repository.FavoritesRepository
}

func (p planetServiceImpl) GetPlanets() ([]view.Planet, error) {
	ents, err := p.repo.GetPlanets()
	if err != nil {
		return nil, err
	}
	counts, err := p.favoritesRepo.GetFavoritesCount(view.FavoriteKindPlanet)
	if err != nil {
		return nil, err
	}
	result := make([]view.Planet, 0, len(ents))
	for i := range ents {
		result = append(result, *entity.MakePlanetView(&ents[i], counts[ents[i].Id]))
	}
	return result, nil
}

func (p planetServiceImpl) GetPlanet(id int) (*view.Planet, error) {
	ent, err := p.repo.GetPlanetById(id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, planetNotFound(id)
	}
	count, err := p.favoritesRepo.CountFavorites(view.PlanetTarget(id))
	if err != nil {
		return nil, err
	}
	return entity.MakePlanetView(ent, count), nil
}

func (p planetServiceImpl) CreatePlanet(req view.PlanetReq) (*view.Planet, error) {
	ent := entity.MakePlanetEntity(&req)
	if err := p.repo.CreatePlanet(ent); err != nil {
		return nil, err
	}
	return entity.MakePlanetView(ent, 0), nil
}

func (p planetServiceImpl) UpdatePlanet(id int, req view.PlanetReq) (*view.Planet, error) {
	ent := entity.MakePlanetEntity(&req)
	ent.Id = id
	updated, err := p.repo.UpdatePlanet(ent)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, planetNotFound(id)
	}
	return p.GetPlanet(id)
}

func (p planetServiceImpl) DeletePlanet(id int) error {
	deleted, err := p.repo.DeletePlanet(id)
	if err != nil {
		return err
	}
	if !deleted {
		return planetNotFound(id)
	}
	return nil
}

func planetNotFound(id int) *exception.CustomError {
	return &exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.PlanetNotFound,
		Message: exception.PlanetNotFoundMsg,
		Params:  map[string]interface{}{"planetId": id},
	}
}
