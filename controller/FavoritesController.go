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
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/swfavorites/swfavorites-service/context"
	"github.com/swfavorites/swfavorites-service/exception"
	"github.com/swfavorites/swfavorites-service/service"
	"github.com/swfavorites/swfavorites-service/view"
)

type FavoritesController interface {
	GetUserFavorites(w http.ResponseWriter, r *http.Request)
	AddFavoritePlanet(w http.ResponseWriter, r *http.Request)
	AddFavoriteCharacter(w http.ResponseWriter, r *http.Request)
	RemoveFavoritePlanet(w http.ResponseWriter, r *http.Request)
	RemoveFavoriteCharacter(w http.ResponseWriter, r *http.Request)

	GetFavoriteRecords(w http.ResponseWriter, r *http.Request)
	CreateFavoriteRecord(w http.ResponseWriter, r *http.Request)
	DeleteFavoriteRecord(w http.ResponseWriter, r *http.Request)
	ExportFavorites(w http.ResponseWriter, r *http.Request)
}

func NewFavoritesController(favoritesService service.FavoritesService, excelService service.ExcelService) FavoritesController {
	return &favoritesControllerImpl{
		favoritesService: favoritesService,
		excelService:     excelService,
	}
}

type favoritesControllerImpl struct {
	favoritesService service.FavoritesService
	excelService     service.ExcelService
}

func (f favoritesControllerImpl) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := f.favoritesService.GetUserFavorites(context.Create(r))
	if err != nil {
		RespondWithError(w, "Failed to get user favorites", err)
		return
	}
	RespondWithJson(w, http.StatusOK, favorites)
}

func (f favoritesControllerImpl) AddFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	f.addFavorite(w, r, view.PlanetTarget)
}

func (f favoritesControllerImpl) AddFavoriteCharacter(w http.ResponseWriter, r *http.Request) {
	f.addFavorite(w, r, view.CharacterTarget)
}

func (f favoritesControllerImpl) RemoveFavoritePlanet(w http.ResponseWriter, r *http.Request) {
	f.removeFavorite(w, r, view.PlanetTarget)
}

func (f favoritesControllerImpl) RemoveFavoriteCharacter(w http.ResponseWriter, r *http.Request) {
	f.removeFavorite(w, r, view.CharacterTarget)
}

func (f favoritesControllerImpl) addFavorite(w http.ResponseWriter, r *http.Request, makeTarget func(int) view.FavoriteTarget) {
	id, customErr := getIntParam(r, "id", targetNotFound(makeTarget(0).Kind))
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	msg, err := f.favoritesService.AddFavorite(context.Create(r), makeTarget(id))
	if err != nil {
		RespondWithError(w, "Failed to add favorite", err)
		return
	}
	RespondWithJson(w, http.StatusCreated, msg)
}

func (f favoritesControllerImpl) removeFavorite(w http.ResponseWriter, r *http.Request, makeTarget func(int) view.FavoriteTarget) {
	id, customErr := getIntParam(r, "id", targetNotFound(makeTarget(0).Kind))
	if customErr != nil {
		if customErr.Status == http.StatusNotFound {
			RespondWithJson(w, http.StatusNotFound, view.Message{Msg: service.FavoriteNotFoundMsg})
			return
		}
		RespondWithCustomError(w, customErr)
		return
	}
	msg, removed, err := f.favoritesService.RemoveFavorite(context.Create(r), makeTarget(id))
	if err != nil {
		RespondWithError(w, "Failed to remove favorite", err)
		return
	}
	if !removed {
		RespondWithJson(w, http.StatusNotFound, msg)
		return
	}
	RespondWithJson(w, http.StatusOK, msg)
}

func (f favoritesControllerImpl) GetFavoriteRecords(w http.ResponseWriter, r *http.Request) {
	limit, customErr := getLimitQueryParam(r)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	page, customErr := getPageQueryParam(r)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	records, err := f.favoritesService.GetFavoriteRecords(limit, page)
	if err != nil {
		RespondWithError(w, "Failed to get favorites", err)
		return
	}
	RespondWithJson(w, http.StatusOK, records)
}

func (f favoritesControllerImpl) CreateFavoriteRecord(w http.ResponseWriter, r *http.Request) {
	var req view.FavoriteReq
	if err := readValidatedBody(r, &req); err != nil {
		RespondWithError(w, "Failed to read favorite", err)
		return
	}
	record, err := f.favoritesService.CreateFavoriteRecord(req)
	if err != nil {
		RespondWithError(w, "Failed to create favorite", err)
		return
	}
	RespondWithJson(w, http.StatusCreated, record)
}

func (f favoritesControllerImpl) DeleteFavoriteRecord(w http.ResponseWriter, r *http.Request) {
	id, customErr := getIntParam(r, "id", favoriteNotFound)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	if err := f.favoritesService.DeleteFavoriteRecord(id); err != nil {
		RespondWithError(w, "Failed to delete favorite", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (f favoritesControllerImpl) ExportFavorites(w http.ResponseWriter, r *http.Request) {
	workbook, filename, err := f.excelService.ExportFavorites()
	if err != nil {
		RespondWithError(w, "Failed to export favorites", err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%v"`, filename))
	w.Header().Set("Content-Transfer-Encoding", "binary")
	w.Header().Set("Expires", "0")
	if err = workbook.Write(w); err != nil {
		log.Errorf("Failed to write favorites workbook %s: %s", filename, err.Error())
	}
	if err = workbook.Close(); err != nil {
		log.Errorf("Failed to close favorites workbook %s: %s", filename, err.Error())
	}
}

func targetNotFound(kind view.FavoriteKind) func(value string) *exception.CustomError {
	if kind == view.FavoriteKindPlanet {
		return planetNotFound
	}
	return characterNotFound
}
