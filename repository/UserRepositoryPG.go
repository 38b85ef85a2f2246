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

func NewUserRepositoryPG(cp db.ConnectionProvider) UserRepository {
	return &userRepositoryImpl{cp: cp}
}

type userRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (u userRepositoryImpl) GetUsers() ([]entity.UserEntity, error) {
	result := make([]entity.UserEntity, 0)
	err := u.cp.GetConnection().Model(&result).
		Order("id ASC").
		Select()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u userRepositoryImpl) GetUserById(id int) (*entity.UserEntity, error) {
	return u.getUser("id = ?", id)
}

func (u userRepositoryImpl) GetUserByUsername(username string) (*entity.UserEntity, error) {
	return u.getUser("username = ?", username)
}

func (u userRepositoryImpl) GetUserByEmail(email string) (*entity.UserEntity, error) {
	return u.getUser("email ilike ?", email)
}

func (u userRepositoryImpl) getUser(condition string, param interface{}) (*entity.UserEntity, error) {
	result := new(entity.UserEntity)
	err := u.cp.GetConnection().Model(result).
		Where(condition, param).
		First()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return result, nil
}

func (u userRepositoryImpl) CreateUser(ent *entity.UserEntity) error {
	_, err := u.cp.GetConnection().Model(ent).
		Returning("id").
		Insert()
	return mapPGError(err)
}

func (u userRepositoryImpl) UpdateUser(ent *entity.UserEntity) (bool, error) {
	res, err := u.cp.GetConnection().Model(ent).
		WherePK().
		Update()
	if err != nil {
		return false, mapPGError(err)
	}
	return res.RowsAffected() > 0, nil
}

func (u userRepositoryImpl) UpdateUserPassword(id int, passwordHash []byte) error {
	_, err := u.cp.GetConnection().Model(&entity.UserEntity{}).
		Set("password = ?", passwordHash).
		Where("id = ?", id).
		Update()
	return err
}

func (u userRepositoryImpl) DeleteUser(id int) (bool, error) {
	res, err := u.cp.GetConnection().Model(&entity.UserEntity{}).
		Where("id = ?", id).
		Delete()
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
