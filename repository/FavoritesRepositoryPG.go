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
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
	"github.com/swfavorites/swfavorites-service/db"
	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/view"
)

func NewFavoritesRepositoryPG(cp db.ConnectionProvider) FavoritesRepository {
	return &favoritesRepositoryImpl{cp: cp}
}

type favoritesRepositoryImpl struct {
	cp db.ConnectionProvider
}

func targetColumn(kind view.FavoriteKind) (string, error) {
	switch kind {
	case view.FavoriteKindCharacter:
		return "character_id", nil
	case view.FavoriteKindPlanet:
		return "planet_id", nil
	}
	return "", fmt.Errorf("unknown favorite kind '%s'", kind)
}

func (f favoritesRepositoryImpl) AddFavorite(ent *entity.FavoriteEntity) error {
	_, err := f.cp.GetConnection().Model(ent).
		Returning("id").
		Insert()
	return err
}

func (f favoritesRepositoryImpl) GetFavoriteById(id int) (*entity.FavoriteEntity, error) {
	result := new(entity.FavoriteEntity)
	err := f.cp.GetConnection().Model(result).
		Where("id = ?", id).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (f favoritesRepositoryImpl) GetFavorites() ([]entity.FavoriteEntity, error) {
	result := make([]entity.FavoriteEntity, 0)
	err := f.cp.GetConnection().Model(&result).
		Order("id ASC").
		Select()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (f favoritesRepositoryImpl) GetUserFavorites(userId int) ([]entity.FavoriteEntity, error) {
	result := make([]entity.FavoriteEntity, 0)
	err := f.cp.GetConnection().Model(&result).
		Where("user_id = ?", userId).
		Order("id ASC").
		Select()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (f favoritesRepositoryImpl) RemoveFavorite(userId int, target view.FavoriteTarget) (bool, error) {
	column, err := targetColumn(target.Kind)
	if err != nil {
		return false, err
	}
	removed := false
	err = f.cp.GetConnection().RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		ent := new(entity.FavoriteEntity)
		err := tx.Model(ent).
			Where("user_id = ?", userId).
			Where("? = ?", pg.Ident(column), target.Id).
			Order("id ASC").
			Limit(1).
			For("UPDATE").
			Select()
		if err != nil {
			if err == pg.ErrNoRows {
				return nil
			}
			return err
		}
		_, err = tx.Model(ent).WherePK().Delete()
		if err != nil {
			return err
		}
		removed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (f favoritesRepositoryImpl) DeleteFavorite(id int) (bool, error) {
	res, err := f.cp.GetConnection().Model(&entity.FavoriteEntity{}).
		Where("id = ?", id).
		Delete()
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (f favoritesRepositoryImpl) GetFavoritesCount(kind view.FavoriteKind) (map[int]int, error) {
	column, err := targetColumn(kind)
	if err != nil {
		return nil, err
	}
	var counts []entity.FavoritesCountEntity
	_, err = f.cp.GetConnection().Query(&counts,
		`select ? as target_id, count(*) as count from favorite_data where ? is not null group by ?`,
		pg.Ident(column), pg.Ident(column), pg.Ident(column))
	if err != nil {
		return nil, err
	}
	result := make(map[int]int, len(counts))
	for _, c := range counts {
		result[c.TargetId] = c.Count
	}
	return result, nil
}

func (f favoritesRepositoryImpl) CountFavorites(target view.FavoriteTarget) (int, error) {
	column, err := targetColumn(target.Kind)
	if err != nil {
		return 0, err
	}
	return f.cp.GetConnection().Model((*entity.FavoriteEntity)(nil)).
		Where("? = ?", pg.Ident(column), target.Id).
		Count()
}
