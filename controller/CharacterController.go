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

package controller

import (
	"net/http"

	"github.com/swfavorites/swfavorites-service/service"
	"github.com/swfavorites/swfavorites-service/view"
)

type CharacterController interface {
	GetCharacters(w http.ResponseWriter, r *http.Request)
	GetCharacter(w http.ResponseWriter, r *http.Request)
	CreateCharacter(w http.ResponseWriter, r *http.Request)
	UpdateCharacter(w http.ResponseWriter, r *http.Request)
	DeleteCharacter(w http.ResponseWriter, r *http.Request)
}

func NewCharacterController(characterService service.CharacterService) CharacterController {
	return &characterControllerImpl{characterService: characterService}
}

type characterControllerImpl struct {
	characterService service.CharacterService
}

func (c characterControllerImpl) GetCharacters(w http.ResponseWriter, r *http.Request) {
	characters, err := c.characterService.GetCharacters()
	if err != nil {
		RespondWithError(w, "Failed to get characters", err)
		return
	}
	RespondWithJson(w, http.StatusOK, characters)
}

func (c characterControllerImpl) GetCharacter(w http.ResponseWriter, r *http.Request) {
	id, customErr := getIntParam(r, "id", characterNotFound)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	character, err := c.characterService.GetCharacter(id)
	if err != nil {
		RespondWithError(w, "Failed to get character", err)
		return
	}
	RespondWithJson(w, http.StatusOK, character)
}

func (c characterControllerImpl) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	var req view.CharacterReq
	if err := readValidatedBody(r, &req); err != nil {
		RespondWithError(w, "Failed to read character", err)
		return
	}
	character, err := c.characterService.CreateCharacter(req)
	if err != nil {
		RespondWithError(w, "Failed to create character", err)
		return
	}
	RespondWithJson(w, http.StatusCreated, character)
}

func (c characterControllerImpl) UpdateCharacter(w http.ResponseWriter, r *http.Request) {
	id, customErr := getIntParam(r, "id", characterNotFound)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	var req view.CharacterReq
	if err := readValidatedBody(r, &req); err != nil {
		RespondWithError(w, "Failed to read character", err)
		return
	}
	character, err := c.characterService.UpdateCharacter(id, req)
	if err != nil {
		RespondWithError(w, "Failed to update character", err)
		return
	}
	RespondWithJson(w, http.StatusOK, character)
}

func (c characterControllerImpl) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	id, customErr := getIntParam(r, "id", characterNotFound)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	if err := c.characterService.DeleteCharacter(id); err != nil {
		RespondWithError(w, "Failed to delete character", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
