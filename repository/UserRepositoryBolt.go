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
	"strings"

	"github.com/boltdb/bolt"
	"github.com/swfavorites/swfavorites-service/db"
	"github.com/swfavorites/swfavorites-service/entity"
)

func NewUserRepositoryBolt(bp db.BoltProvider) UserRepository {
	return &userRepositoryBoltImpl{bp: bp}
}

type userRepositoryBoltImpl struct {
	bp db.BoltProvider
}

func (u userRepositoryBoltImpl) GetUsers() ([]entity.UserEntity, error) {
	result := make([]entity.UserEntity, 0)
	err := u.bp.GetDB().View(func(tx *bolt.Tx) error {
		var err error
		result, err = findUsersTx(tx, func(*entity.UserEntity) bool { return true })
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u userRepositoryBoltImpl) GetUserById(id int) (*entity.UserEntity, error) {
	result := new(entity.UserEntity)
	found, err := getOne(u.bp.GetDB(), db.UsersBucket, id, result)
	if err != nil || !found {
		return nil, err
	}
	return result, nil
}

func (u userRepositoryBoltImpl) GetUserByUsername(username string) (*entity.UserEntity, error) {
	return u.findUser(func(ent *entity.UserEntity) bool { return ent.Username == username })
}

func (u userRepositoryBoltImpl) GetUserByEmail(email string) (*entity.UserEntity, error) {
	return u.findUser(func(ent *entity.UserEntity) bool { return strings.EqualFold(ent.Email, email) })
}

func (u userRepositoryBoltImpl) findUser(filter func(*entity.UserEntity) bool) (*entity.UserEntity, error) {
	var result []entity.UserEntity
	err := u.bp.GetDB().View(func(tx *bolt.Tx) error {
		var err error
		result, err = findUsersTx(tx, filter)
		return err
	})
	if err != nil || len(result) == 0 {
		return nil, err
	}
	return &result[0], nil
}

func findUsersTx(tx *bolt.Tx, filter func(*entity.UserEntity) bool) ([]entity.UserEntity, error) {
	result := make([]entity.UserEntity, 0)
	err := forEach(tx, db.UsersBucket, func(data []byte) error {
		var ent entity.UserEntity
		if err := decode(data, &ent); err != nil {
			return err
		}
		if filter(&ent) {
			result = append(result, ent)
		}
		return nil
	})
	return result, err
}

// duplicateTx reports whether another user already owns the username or email of ent.
func duplicateTx(tx *bolt.Tx, ent *entity.UserEntity) (bool, error) {
	duplicates, err := findUsersTx(tx, func(other *entity.UserEntity) bool {
		return other.Id != ent.Id && (other.Username == ent.Username || strings.EqualFold(other.Email, ent.Email))
	})
	return len(duplicates) > 0, err
}

func (u userRepositoryBoltImpl) CreateUser(ent *entity.UserEntity) error {
	return u.bp.GetDB().Update(func(tx *bolt.Tx) error {
		duplicate, err := duplicateTx(tx, ent)
		if err != nil {
			return err
		}
		if duplicate {
			return ErrDuplicate
		}
		return insertTx(tx, db.UsersBucket, func(id int) { ent.Id = id }, ent)
	})
}

func (u userRepositoryBoltImpl) UpdateUser(ent *entity.UserEntity) (bool, error) {
	updated := false
	err := u.bp.GetDB().Update(func(tx *bolt.Tx) error {
		bucket, err := bucketFor(tx, db.UsersBucket)
		if err != nil {
			return err
		}
		if bucket.Get(itob(ent.Id)) == nil {
			return nil
		}
		duplicate, err := duplicateTx(tx, ent)
		if err != nil {
			return err
		}
		if duplicate {
			return ErrDuplicate
		}
		data, err := encode(ent)
		if err != nil {
			return err
		}
		updated = true
		return bucket.Put(itob(ent.Id), data)
	})
	return updated, err
}

func (u userRepositoryBoltImpl) UpdateUserPassword(id int, passwordHash []byte) error {
	ent, err := u.GetUserById(id)
	if err != nil {
		return err
	}
	if ent == nil {
		return nil
	}
	ent.Password = passwordHash
	_, err = replace(u.bp.GetDB(), db.UsersBucket, id, ent)
	return err
}

func (u userRepositoryBoltImpl) DeleteUser(id int) (bool, error) {
	return remove(u.bp.GetDB(), db.UsersBucket, id, func(fav *entity.FavoriteEntity) bool {
		return fav.UserId == id
	})
}
