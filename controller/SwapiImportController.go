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
)

type SwapiImportController interface {
	ImportFromSwapi(w http.ResponseWriter, r *http.Request)
}

func NewSwapiImportController(importService service.SwapiImportService) SwapiImportController {
	return &swapiImportControllerImpl{importService: importService}
}

type swapiImportControllerImpl struct {
	importService service.SwapiImportService
}

func (s swapiImportControllerImpl) ImportFromSwapi(w http.ResponseWriter, r *http.Request) {
	result, err := s.importService.ImportFromSwapi(r.Context())
	if err != nil {
		RespondWithError(w, "Failed to import from SWAPI", err)
		return
	}
	RespondWithJson(w, http.StatusOK, result)
}
