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

package view

import "fmt"

type FavoriteKind string

const (
	FavoriteKindCharacter FavoriteKind = "character"
	FavoriteKindPlanet    FavoriteKind = "planet"
)

// FavoriteTarget is the thing a favorite points at: either a character or a planet, never both.
type FavoriteTarget struct {
	Kind FavoriteKind
	Id   int
}

func CharacterTarget(id int) FavoriteTarget {
	return FavoriteTarget{Kind: FavoriteKindCharacter, Id: id}
}

func PlanetTarget(id int) FavoriteTarget {
	return FavoriteTarget{Kind: FavoriteKindPlanet, Id: id}
}

func (t FavoriteTarget) String() string {
	return fmt.Sprintf("%s:%d", t.Kind, t.Id)
}

type Favorite struct {
	Id        int        `json:"id"`
	UserId    int        `json:"user_id"`
	Character *Character `json:"character"`
	Planet    *Planet    `json:"planet"`
}

type FavoriteRecord struct {
	Id       int          `json:"id"`
	UserId   int          `json:"user_id"`
	Kind     FavoriteKind `json:"kind"`
	TargetId int          `json:"target_id"`
}

type FavoriteReq struct {
	UserId      int  `json:"user_id" validate:"required"`
	CharacterId *int `json:"character_id"`
	PlanetId    *int `json:"planet_id"`
}

type Message struct {
	Msg string `json:"msg"`
}
