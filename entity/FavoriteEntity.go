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
	"fmt"

	"github.com/swfavorites/swfavorites-service/view"
)

// FavoriteEntity always has exactly one of CharacterId and PlanetId set.
type FavoriteEntity struct {
	tableName struct{} `pg:"favorite_data, alias:favorite_data"`

	Id          int  `pg:"id, pk, type:serial"`
	UserId      int  `pg:"user_id, type:integer, notnull"`
	CharacterId *int `pg:"character_id, type:integer"`
	PlanetId    *int `pg:"planet_id, type:integer"`
}

func MakeFavoriteEntity(userId int, target view.FavoriteTarget) *FavoriteEntity {
	ent := &FavoriteEntity{UserId: userId}
	id := target.Id
	switch target.Kind {
	case view.FavoriteKindCharacter:
		ent.CharacterId = &id
	case view.FavoriteKindPlanet:
		ent.PlanetId = &id
	}
	return ent
}

func (f FavoriteEntity) Target() (view.FavoriteTarget, error) {
	switch {
	case f.CharacterId != nil && f.PlanetId == nil:
		return view.CharacterTarget(*f.CharacterId), nil
	case f.PlanetId != nil && f.CharacterId == nil:
		return view.PlanetTarget(*f.PlanetId), nil
	default:
		return view.FavoriteTarget{}, fmt.Errorf("favorite %d has an invalid target (character_id=%v, planet_id=%v)", f.Id, f.CharacterId, f.PlanetId)
	}
}

func (f FavoriteEntity) Matches(target view.FavoriteTarget) bool {
	t, err := f.Target()
	if err != nil {
		return false
	}
	return t == target
}

func MakeFavoriteRecordView(ent *FavoriteEntity) (*view.FavoriteRecord, error) {
	target, err := ent.Target()
	if err != nil {
		return nil, err
	}
	return &view.FavoriteRecord{
		Id:       ent.Id,
		UserId:   ent.UserId,
		Kind:     target.Kind,
		TargetId: target.Id,
	}, nil
}

type FavoritesCountEntity struct {
	TargetId int `pg:"target_id"`
	Count    int `pg:"count"`
}
