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

type Planet struct {
	Id             int     `json:"id"`
	Name           string  `json:"name"`
	Climate        *string `json:"climate"`
	Terrain        *string `json:"terrain"`
	Population     *string `json:"population"`
	FavoritesCount int     `json:"favorites_count"`
}

type PlanetReq struct {
	Name       string  `json:"name" validate:"required"`
	Climate    *string `json:"climate"`
	Terrain    *string `json:"terrain"`
	Population *string `json:"population"`
}
