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

type PlanetEntity struct {
	tableName struct{} `pg:"planet_data, alias:planet_data"`

	Id         int     `pg:"id, pk, type:serial"`
	Name       string  `pg:"name, type:varchar, notnull"`
	Climate    *string `pg:"climate, type:varchar"`
	Terrain    *string `pg:"terrain, type:varchar"`
	Population *string `pg:"population, type:varchar"`
}

func MakePlanetView(ent *PlanetEntity, favoritesCount int) *view.Planet {
	return &view.Planet{
		Id:             ent.Id,
		Name:           ent.Name,
		Climate:        ent.Climate,
		Terrain:        ent.Terrain,
		Population:     ent.Population,
		FavoritesCount: favoritesCount,
	}
}

func MakePlanetEntity(req *view.PlanetReq) *PlanetEntity {
	return &PlanetEntity{
		Name:       req.Name,
		Climate:    req.Climate,
		Terrain:    req.Terrain,
		Population: req.Population,
	}
}
