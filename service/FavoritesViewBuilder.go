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
	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/repository"
	"github.com/swfavorites/swfavorites-service/utils"
	"github.com/swfavorites/swfavorites-service/view"
)

// FavoritesViewBuilder resolves favorite records into views with the nested character or planet.
type FavoritesViewBuilder interface {
	BuildFavoriteViews(ents []entity.FavoriteEntity) ([]view.Favorite, error)
}

func NewFavoritesViewBuilder(favoritesRepo repository.FavoritesRepository, characterRepo repository.CharacterRepository, planetRepo repository.PlanetRepository) FavoritesViewBuilder {
	return &favoritesViewBuilderImpl{
		favoritesRepo: favoritesRepo,
		characterRepo: characterRepo,
		planetRepo:    planetRepo,
	}
}

type favoritesViewBuilderImpl struct {
	favoritesRepo repository.FavoritesRepository
	characterRepo repository.CharacterRepository
	planetRepo    repository.PlanetRepository
}

func (f favoritesViewBuilderImpl) BuildFavoriteViews(ents []entity.FavoriteEntity) ([]view.Favorite, error) {
	result := make([]view.Favorite, 0, len(ents))
	if len(ents) == 0 {
		return result, nil
	}
	targets := make([]view.FavoriteTarget, 0, len(ents))
	characterIds := make([]int, 0)
	planetIds := make([]int, 0)
	for _, ent := range ents {
		target, err := ent.Target()
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
		switch target.Kind {
		case view.FavoriteKindCharacter:
			characterIds = append(characterIds, target.Id)
		case view.FavoriteKindPlanet:
			planetIds = append(planetIds, target.Id)
		}
	}
	characters, err := f.getCharacters(utils.UniqueSet(characterIds))
	if err != nil {
		return nil, err
	}
	planets, err := f.getPlanets(utils.UniqueSet(planetIds))
	if err != nil {
		return nil, err
	}
	for i, ent := range ents {
		fav := view.Favorite{Id: ent.Id, UserId: ent.UserId}
		switch targets[i].Kind {
		case view.FavoriteKindCharacter:
			fav.Character = characters[targets[i].Id]
		case view.FavoriteKindPlanet:
			fav.Planet = planets[targets[i].Id]
		}
		result = append(result, fav)
	}
	return result, nil
}

func (f favoritesViewBuilderImpl) getCharacters(ids []int) (map[int]*view.Character, error) {
	result := make(map[int]*view.Character)
	if len(ids) == 0 {
		return result, nil
	}
	ents, err := f.characterRepo.GetCharactersByIds(ids)
	if err != nil {
		return nil, err
	}
	counts, err := f.favoritesRepo.GetFavoritesCount(view.FavoriteKindCharacter)
	if err != nil {
		return nil, err
	}
	for i := range ents {
		result[ents[i].Id] = entity.MakeCharacterView(&ents[i], counts[ents[i].Id])
	}
	return result, nil
}

func (f favoritesViewBuilderImpl) getPlanets(ids []int) (map[int]*view.Planet, error) {
	result := make(map[int]*view.Planet)
	if len(ids) == 0 {
		return result, nil
	}
	ents, err := f.planetRepo.GetPlanetsByIds(ids)
	if err != nil {
		return nil, err
	}
	counts, err := f.favoritesRepo.GetFavoritesCount(view.FavoriteKindPlanet)
	if err != nil {
		return nil, err
	}
	for i := range ents {
		result[ents[i].Id] = entity.MakePlanetView(&ents[i], counts[ents[i].Id])
	}
	return result, nil
}
