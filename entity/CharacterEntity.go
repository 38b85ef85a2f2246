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

import "github.com/swfavorites/swfavorites-service/view"

type CharacterEntity struct {
	tableName struct{} `pg:"character_data, alias:character_data"`

	Id          int     `pg:"id, pk, type:serial"`
	Name        string  `pg:"name, type:varchar, notnull"`
	Description *string `pg:"description, type:text"`
	Gender      *string `pg:"gender, type:varchar"`
	BirthYear   *string `pg:"birth_year, type:varchar"`
}

func MakeCharacterView(ent *CharacterEntity, favoritesCount int) *view.Character {
	return &view.Character{
		Id:             ent.Id,
		Name:           ent.Name,
		Description:    ent.Description,
		Gender:         ent.Gender,
		BirthYear:      ent.BirthYear,
		FavoritesCount: favoritesCount,
	}
}

func MakeCharacterEntity(req *view.CharacterReq) *CharacterEntity {
	return &CharacterEntity{
		Name:        req.Name,
		Description: req.Description,
		Gender:      req.Gender,
		BirthYear:   req.BirthYear,
	}
}
