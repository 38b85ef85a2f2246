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

type SwapiPage[T any] struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}

type SwapiPerson struct {
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	BirthYear string `json:"birth_year"`
	Height    string `json:"height"`
	Mass      string `json:"mass"`
}

type SwapiPlanet struct {
	Name       string `json:"name"`
	Climate    string `json:"climate"`
	Terrain    string `json:"terrain"`
	Population string `json:"population"`
}

type SwapiImportResult struct {
	CharactersImported int `json:"charactersImported"`
	PlanetsImported    int `json:"planetsImported"`
	Skipped            int `json:"skipped"`
}
