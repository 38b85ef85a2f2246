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
	"github.com/go-pg/pg/v10"
	"github.com/swfavorites/swfavorites-service/db"
	"github.com/swfavorites/swfavorites-service/entity"
)

func NewCharacterRepositoryPG(cp db.ConnectionProvider) CharacterRepository {
	return &characterRepositoryImpl{cp: cp}
}

type characterRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (c characterRepositoryImpl) GetCharacters() ([]entity.CharacterEntity, error) {
	result := make([]entity.CharacterEntity, 0)
	err := c.cp.GetConnection().Model(&result).
		Order("id ASC").
		Select()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c characterRepositoryImpl) GetCharacterById(id int) (*entity.CharacterEntity, error) {
	result := new(entity.CharacterEntity)
	err := c.cp.GetConnection().Model(result).
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

func (c characterRepositoryImpl) GetCharactersByIds(ids []int) ([]entity.CharacterEntity, error) {
	var result []entity.CharacterEntity
	if len(ids) == 0 {
		return nil, nil
	}
	err := c.cp.GetConnection().Model(&result).
		Where("id in (?)", pg.In(ids)).
		Order("id ASC").
		Select()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c characterRepositoryImpl) GetCharacterByName(name string) (*entity.CharacterEntity, error) {
	result := new(entity.CharacterEntity)
	err := c.cp.GetConnection().Model(result).
		Where("name = ?", name).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (c characterRepositoryImpl) CreateCharacter(ent *entity.CharacterEntity) error {
	_, err := c.cp.GetConnection().Model(ent).
		Returning("id").
		Insert()
	return err
}

func (c characterRepositoryImpl) UpdateCharacter(ent *entity.CharacterEntity) (bool, error) {
	res, err := c.cp.GetConnection().Model(ent).
		WherePK().
		Update()
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// favorite_data.character_id is declared with "on delete cascade"
func (c characterRepositoryImpl) DeleteCharacter(id int) (bool, error) {
	res, err := c.cp.GetConnection().Model(&entity.CharacterEntity{}).
		Where("id = ?", id).
		Delete()
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
