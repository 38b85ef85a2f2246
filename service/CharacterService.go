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

type CharacterService interface {
	GetCharacters() ([]view.Character, error)
	GetCharacter(id int) (*view.Character, error)
	CreateCharacter(req view.CharacterReq) (*view.Character, error)
	UpdateCharacter(id int, req view.CharacterReq) (*view.Character, error)
	DeleteCharacter(id int) error
}

func NewCharacterService(repo repository.CharacterRepository, favoritesRepo repository.FavoritesRepository) CharacterService {
	return &characterServiceImpl{
		repo:          repo,
		favoritesRepo: favoritesRepo,
	}
}

type characterServiceImpl struct {
	repo          repository.CharacterRepository
	favoritesRepo repository.FavoritesRepository
}

func (c characterServiceImpl) GetCharacters() ([]view.Character, error) {
	ents, err := c.repo.GetCharacters()
	if err != nil {
		return nil, err
	}
	counts, err := c.favoritesRepo.GetFavoritesCount(view.FavoriteKindCharacter)
	if err != nil {
		return nil, err
	}
	result := make([]view.Character, 0, len(ents))
	for i := range ents {
		result = append(result, *entity.MakeCharacterView(&ents[i], counts[ents[i].Id]))
	}
	return result, nil
}

func (c characterServiceImpl) GetCharacter(id int) (*view.Character, error) {
	ent, err := c.repo.GetCharacterById(id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, characterNotFound(id)
	}
	count, err := c.favoritesRepo.CountFavorites(view.CharacterTarget(id))
	if err != nil {
		return nil, err
	}
	return entity.MakeCharacterView(ent, count), nil
}

func (c characterServiceImpl) CreateCharacter(req view.CharacterReq) (*view.Character, error) {
	ent := entity.MakeCharacterEntity(&req)
	if err := c.repo.CreateCharacter(ent); err != nil {
		return nil, err
	}
	return entity.MakeCharacterView(ent, 0), nil
}

func (c characterServiceImpl) UpdateCharacter(id int, req view.CharacterReq) (*view.Character, error) {
	ent := entity.MakeCharacterEntity(&req)
	ent.Id = id
	updated, err := c.repo.UpdateCharacter(ent)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, characterNotFound(id)
	}
	return c.GetCharacter(id)
}

func (c characterServiceImpl) DeleteCharacter(id int) error {
	deleted, err := c.repo.DeleteCharacter(id)
	if err != nil {
		return err
	}
	if !deleted {
		return characterNotFound(id)
	}
	return nil
}

func characterNotFound(id int) *exception.CustomError {
	return &exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.CharacterNotFound,
		Message: exception.CharacterNotFoundMsg,
		Params:  map[string]interface{}{"characterId": id},
	}
}
