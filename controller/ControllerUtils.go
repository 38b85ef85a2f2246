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
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/swfavorites/swfavorites-service/exception"
	"github.com/swfavorites/swfavorites-service/utils"
)

// getIntParam reads an int path variable. Digit-only values too large for int can not be stored ids,
// they are reported with notFound when it is set.
func getIntParam(r *http.Request, p string, notFound func(value string) *exception.CustomError) (int, *exception.CustomError) {
	params := mux.Vars(r)
	value, err := strconv.Atoi(params[p])
	if err != nil {
		if notFound != nil && errors.Is(err, strconv.ErrRange) {
			return 0, notFound(params[p])
		}
		return 0, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.IncorrectParamType,
			Message: exception.IncorrectParamTypeMsg,
			Params:  map[string]interface{}{"param": p, "type": "int"},
			Debug:   err.Error(),
		}
	}
	return value, nil
}

func notFoundError(code string, msg string, param string) func(value string) *exception.CustomError {
	return func(value string) *exception.CustomError {
		return &exception.CustomError{
			Status:  http.StatusNotFound,
			Code:    code,
			Message: msg,
			Params:  map[string]interface{}{param: value},
		}
	}
}

var (
	characterNotFound = notFoundError(exception.CharacterNotFound, exception.CharacterNotFoundMsg, "characterId")
	planetNotFound    = notFoundError(exception.PlanetNotFound, exception.PlanetNotFoundMsg, "planetId")
	userNotFound      = notFoundError(exception.UserNotFound, exception.UserNotFoundMsg, "userId")
	favoriteNotFound  = notFoundError(exception.FavoriteNotFound, exception.FavoriteNotFoundMsg, "favoriteId")
)

const maxLimit = 1000

// getLimitQueryParam returns 0 when the limit is not set.
func getLimitQueryParam(r *http.Request) (int, *exception.CustomError) {
	if r.URL.Query().Get("limit") == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		return 0, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.IncorrectParamType,
			Message: exception.IncorrectParamTypeMsg,
			Params:  map[string]interface{}{"param": "limit", "type": "int"},
			Debug:   err.Error(),
		}
	}
	if limit < 1 || limit > maxLimit {
		return 0, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.InvalidParameterValue,
			Message: exception.InvalidLimitMsg,
			Params:  map[string]interface{}{"value": limit, "maxLimit": maxLimit},
		}
	}
	return limit, nil
}

func getPageQueryParam(r *http.Request) (int, *exception.CustomError) {
	if r.URL.Query().Get("page") == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 0 {
		return 0, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.IncorrectParamType,
			Message: exception.IncorrectParamTypeMsg,
			Params:  map[string]interface{}{"param": "page", "type": "non-negative int"},
		}
	}
	return page, nil
}

// readValidatedBody decodes a json body into obj and checks its validate tags.
func readValidatedBody(r *http.Request, obj interface{}) error {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		}
	}
	if err = json.Unmarshal(body, obj); err != nil {
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.BadRequestBody,
			Message: exception.BadRequestBodyMsg,
			Debug:   err.Error(),
		}
	}
	return utils.ValidateObject(obj)
}

func RespondWithError(w http.ResponseWriter, msg string, err error) {
	var customError *exception.CustomError
	if errors.As(err, &customError) {
		RespondWithCustomError(w, customError)
		return
	}
	log.Errorf("%s: %s", msg, err.Error())
	RespondWithCustomError(w, &exception.CustomError{
		Status:  http.StatusInternalServerError,
		Message: msg,
		Debug:   err.Error()})
}

func RespondWithCustomError(w http.ResponseWriter, err *exception.CustomError) {
	log.Debugf("Request failed. Code = %d. Message = %s. Params: %v. Debug: %s", err.Status, err.Message, err.Params, err.Debug)
	RespondWithJson(w, err.Status, err.Resolved())
}

func RespondWithJson(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
