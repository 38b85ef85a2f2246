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

type UserController interface {
	GetUsers(w http.ResponseWriter, r *http.Request)
	CreateUser(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

func NewUserController(userService service.UserService) UserController {
	return &userControllerImpl{userService: userService}
}

type userControllerImpl struct {
	userService service.UserService
}

func (u userControllerImpl) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := u.userService.GetUsers()
	if err != nil {
		RespondWithError(w, "Failed to get users", err)
		return
	}
	RespondWithJson(w, http.StatusOK, users)
}

func (u userControllerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req view.UserReq
	if err := readValidatedBody(r, &req); err != nil {
		RespondWithError(w, "Failed to read user", err)
		return
	}
	user, err := u.userService.CreateUser(req)
	if err != nil {
		RespondWithError(w, "Failed to create user", err)
		return
	}
	RespondWithJson(w, http.StatusCreated, user)
}

func (u userControllerImpl) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, customErr := getIntParam(r, "id", userNotFound)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	var req view.UserReq
	if err := readValidatedBody(r, &req); err != nil {
		RespondWithError(w, "Failed to read user", err)
		return
	}
	user, err := u.userService.UpdateUser(id, req)
	if err != nil {
		RespondWithError(w, "Failed to update user", err)
		return
	}
	RespondWithJson(w, http.StatusOK, user)
}

func (u userControllerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, customErr := getIntParam(r, "id", userNotFound)
	if customErr != nil {
		RespondWithCustomError(w, customErr)
		return
	}
	if err := u.userService.DeleteUser(id); err != nil {
		RespondWithError(w, "Failed to delete user", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
