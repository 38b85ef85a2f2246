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
	"github.com/boltdb/bolt"
	"github.com/swfavorites/swfavorites-service/db"
	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/view"
)

func NewFavoritesRepositoryBolt(bp db.BoltProvider) FavoritesRepository {
	return &favoritesRepositoryBoltImpl{bp: bp}
}

type favoritesRepositoryBoltImpl struct {
	bp db.BoltProvider
}

func (f favoritesRepositoryBoltImpl) AddFavorite(ent *entity.FavoriteEntity) error {
	if _, err := ent.Target(); err != nil {
		return err
	}
	return insert(f.bp.GetDB(), db.FavoritesBucket, func(id int) { ent.Id = id }, ent)
}

func (f favoritesRepositoryBoltImpl) GetFavoriteById(id int) (*entity.FavoriteEntity, error) {
	result := new(entity.FavoriteEntity)
	found, err := getOne(f.bp.GetDB(), db.FavoritesBucket, id, result)
	if err != nil || !found {
		return nil, err
	}
	return result, nil
}

func (f favoritesRepositoryBoltImpl) GetFavorites() ([]entity.FavoriteEntity, error) {
	return f.findFavorites(func(*entity.FavoriteEntity) bool { return true })
}

func (f favoritesRepositoryBoltImpl) GetUserFavorites(userId int) ([]entity.FavoriteEntity, error) {
	return f.findFavorites(func(ent *entity.FavoriteEntity) bool { return ent.UserId == userId })
}

func (f favoritesRepositoryBoltImpl) findFavorites(filter func(*entity.FavoriteEntity) bool) ([]entity.FavoriteEntity, error) {
	result := make([]entity.FavoriteEntity, 0)
	err := f.bp.GetDB().View(func(tx *bolt.Tx) error {
		return forEach(tx, db.FavoritesBucket, func(data []byte) error {
			var ent entity.FavoriteEntity
			if err := decode(data, &ent); err != nil {
				return err
			}
			if filter(&ent) {
				result = append(result, ent)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (f favoritesRepositoryBoltImpl) RemoveFavorite(userId int, target view.FavoriteTarget) (bool, error) {
	removed := false
	err := f.bp.GetDB().Update(func(tx *bolt.Tx) error {
		bucket, err := bucketFor(tx, db.FavoritesBucket)
		if err != nil {
			return err
		}
		cursor := bucket.Cursor()
		for key, data := cursor.First(); key != nil; key, data = cursor.Next() {
			var ent entity.FavoriteEntity
			if err := decode(data, &ent); err != nil {
				return err
			}
			if ent.UserId == userId && ent.Matches(target) {
				removed = true
				return bucket.Delete(key)
			}
		}
		return nil
	})
	return removed, err
}

func (f favoritesRepositoryBoltImpl) DeleteFavorite(id int) (bool, error) {
	return remove(f.bp.GetDB(), db.FavoritesBucket, id, nil)
}

func (f favoritesRepositoryBoltImpl) GetFavoritesCount(kind view.FavoriteKind) (map[int]int, error) {
	favorites, err := f.GetFavorites()
	if err != nil {
		return nil, err
	}
	result := make(map[int]int)
	for _, fav := range favorites {
		target, err := fav.Target()
		if err != nil {
			return nil, err
		}
		if target.Kind == kind {
			result[target.Id]++
		}
	}
	return result, nil
}

func (f favoritesRepositoryBoltImpl) CountFavorites(target view.FavoriteTarget) (int, error) {
	favorites, err := f.findFavorites(func(ent *entity.FavoriteEntity) bool { return ent.Matches(target) })
	if err != nil {
		return 0, err
	}
	return len(favorites), nil
}
