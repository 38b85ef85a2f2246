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

package entity

import (
	"strings"

	"github.com/swfavorites/swfavorites-service/view"
)

type UserEntity struct {
	tableName struct{} `pg:"user_data, alias:user_data"`

	Id       int    `pg:"id, pk, type:serial"`
	Username string `pg:"username, type:varchar, notnull"`
	Email    string `pg:"email, type:varchar, notnull"`
	Password []byte `pg:"password, type:bytea"`
	IsAdmin  bool   `pg:"is_admin, type:boolean, use_zero"`
}

func MakeUserView(ent *UserEntity, favorites []view.Favorite) *view.User {
	if favorites == nil {
		favorites = make([]view.Favorite, 0)
	}
	return &view.User{
		Id:        ent.Id,
		Username:  ent.Username,
		Email:     ent.Email,
		Favorites: favorites,
	}
}

func MakeAuthenticatedUserView(ent *UserEntity) *view.AuthenticatedUser {
	return &view.AuthenticatedUser{
		Id:       ent.Id,
		Username: ent.Username,
		Email:    ent.Email,
		IsAdmin:  ent.IsAdmin,
	}
}

func MakeUserEntity(req *view.UserReq, passwordHash []byte) *UserEntity {
	return &UserEntity{
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Password: passwordHash,
		IsAdmin:  req.IsAdmin,
	}
}
