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

type PlanetController interface {
	GetPlanets(w http.ResponseWriter, r *http.Request)
	GetPlanet(w http.ResponseWriter, r *http.Request)
	CreatePlanet(w http.ResponseWriter, r *http.Request)
	UpdatePlanet(w http.ResponseWriter, r *http.Request)
	DeletePlanet(w http.ResponseWriter, r *http.Request)
}

func NewPlanetController(planetService service.PlanetService) PlanetController {
	return &planetControllerImpl{planetService: planetService}
}

type planetControllerImpl struct {
	planetService service.PlanetService
}

func (p planetControllerImpl) GetPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := p.planetService.GetPlanets()
	if err != nil {
		RespondWithError(w, "Failed to get planets", err)
		return
	}
	RespondWithJson(w, http.StatusOK, planets)
}

func (p planetControllerImpl) GetPlanet(w http.ResponseWriter, r *http.Request) {
	id, customErr := getIntParam(r, "id", planetNotFound)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	planet, err := p.planetService.GetPlanet(id)
	if err != nil {
		RespondWithError(w, "Failed to get planet", err)
		return
	}
	RespondWithJson(w, http.StatusOK, planet)
}

func (p planetControllerImpl) CreatePlanet(w http.ResponseWriter, r *http.Request) {
	var req view.PlanetReq
	if err := readValidatedBody(r, &req); err != nil {
		RespondWithError(w, "Failed to read planet", err)
		return
	}
	planet, err := p.planetService.CreatePlanet(req)
	if err != nil {
		RespondWithError(w, "Failed to create planet", err)
		return
	}
	RespondWithJson(w, http.StatusCreated, planet)
}

func (p planetControllerImpl) UpdatePlanet(w http.ResponseWriter, r *http.Request) {
	id, customErr := getIntParam(r, "id", planetNotFound)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	var req view.PlanetReq
	if err := readValidatedBody(r, &req); err != nil {
		RespondWithError(w, "Failed to read planet", err)
		return
	}
	planet, err := p.planetService.UpdatePlanet(id, req)
	if err != nil {
		RespondWithError(w, "Failed to update planet", err)
		return
	}
	RespondWithJson(w, http.StatusOK, planet)
}

func (p planetControllerImpl) DeletePlanet(w http.ResponseWriter, r *http.Request) {
	id, customErr := getIntParam(r, "id", planetNotFound)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	if err := p.planetService.DeletePlanet(id); err != nil {
		RespondWithError(w, "Failed to delete planet", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
