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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swfavorites/swfavorites-service/exception"
	"github.com/swfavorites/swfavorites-service/view"
)

func TestGetIntParam(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/people/12", nil), map[string]string{"id": "12"})
	id, err := getIntParam(r, "id", characterNotFound)
	require.Nil(t, err)
	assert.Equal(t, 12, id)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/people/x", nil), map[string]string{"id": "x"})
	_, err = getIntParam(r, "id", characterNotFound)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, exception.IncorrectParamType, err.Code)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/people/99999999999999999999", nil), map[string]string{"id": "99999999999999999999"})
	_, err = getIntParam(r, "id", characterNotFound)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, exception.CharacterNotFound, err.Code)
	assert.Equal(t, "Character with id 99999999999999999999 not found", err.Resolved().Message)

	_, err = getIntParam(r, "id", nil)
	require.NotNil(t, err)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}

func TestReadValidatedBody(t *testing.T) {
	var req view.PlanetReq
	err := readValidatedBody(httptest.NewRequest(http.MethodPost, "/admin/planets", strings.NewReader(`{"name": "Endor"}`)), &req)
	require.NoError(t, err)
	assert.Equal(t, "Endor", req.Name)

	err = readValidatedBody(httptest.NewRequest(http.MethodPost, "/admin/planets", strings.NewReader(`{"name": `)), &req)
	var customErr *exception.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, exception.BadRequestBody, customErr.Code)

	req = view.PlanetReq{}
	err = readValidatedBody(httptest.NewRequest(http.MethodPost, "/admin/planets", strings.NewReader(`{"climate": "forest"}`)), &req)
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, exception.RequiredParamsMissing, customErr.Code)
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, "Failed to get planet", pkgerrors.Wrap(&exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.PlanetNotFound,
		Message: exception.PlanetNotFoundMsg,
		Params:  map[string]interface{}{"planetId": 3},
	}, "lookup"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body exception.CustomError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Planet with id 3 not found", body.Message)

	rec = httptest.NewRecorder()
	RespondWithError(rec, "Failed to get planet", errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to get planet", body.Message)
	assert.Equal(t, "connection reset", body.Debug)
}
