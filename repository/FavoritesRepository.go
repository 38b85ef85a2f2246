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

package repository

import (
	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/view"
)

type FavoritesRepository interface {
	AddFavorite(ent *entity.FavoriteEntity) error
	GetFavoriteById(id int) (*entity.FavoriteEntity, error)
	GetFavorites() ([]entity.FavoriteEntity, error)
	GetUserFavorites(userId int) ([]entity.FavoriteEntity, error)
	// RemoveFavorite deletes the oldest favorite of the user pointing at target.
	RemoveFavorite(userId int, target view.FavoriteTarget) (bool, error)
	DeleteFavorite(id int) (bool, error)
	GetFavoritesCount(kind view.FavoriteKind) (map[int]int, error)
	CountFavorites(target view.FavoriteTarget) (int, error)
}
