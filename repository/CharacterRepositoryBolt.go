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
)

func NewCharacterRepositoryBolt(bp db.BoltProvider) CharacterRepository {
	return &characterRepositoryBoltImpl{bp: bp}
}

type characterRepositoryBoltImpl struct {
	bp db.BoltProvider
}

func (c characterRepositoryBoltImpl) GetCharacters() ([]entity.CharacterEntity, error) {
	return c.findCharacters(func(*entity.CharacterEntity) bool { return true })
}

func (c characterRepositoryBoltImpl) GetCharacterById(id int) (*entity.CharacterEntity, error) {
	result := new(entity.CharacterEntity)
	found, err := getOne(c.bp.GetDB(), db.CharactersBucket, id, result)
	if err != nil || !found {
		return nil, err
	}
	return result, nil
}

func (c characterRepositoryBoltImpl) GetCharactersByIds(ids []int) ([]entity.CharacterEntity, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	idSet := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	return c.findCharacters(func(ent *entity.CharacterEntity) bool {
		_, exists := idSet[ent.Id]
		return exists
	})
}

func (c characterRepositoryBoltImpl) GetCharacterByName(name string) (*entity.CharacterEntity, error) {
	result, err := c.findCharacters(func(ent *entity.CharacterEntity) bool { return ent.Name == name })
	if err != nil || len(result) == 0 {
		return nil, err
	}
	return &result[0], nil
}

func (c characterRepositoryBoltImpl) findCharacters(filter func(*entity.CharacterEntity) bool) ([]entity.CharacterEntity, error) {
	result := make([]entity.CharacterEntity, 0)
	err := c.bp.GetDB().View(func(tx *bolt.Tx) error {
		return forEach(tx, db.CharactersBucket, func(data []byte) error {
			var ent entity.CharacterEntity
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

func (c characterRepositoryBoltImpl) CreateCharacter(ent *entity.CharacterEntity) error {
	return insert(c.bp.GetDB(), db.CharactersBucket, func(id int) { ent.Id = id }, ent)
}

func (c characterRepositoryBoltImpl) UpdateCharacter(ent *entity.CharacterEntity) (bool, error) {
	return replace(c.bp.GetDB(), db.CharactersBucket, ent.Id, ent)
}

func (c characterRepositoryBoltImpl) DeleteCharacter(id int) (bool, error) {
	return remove(c.bp.GetDB(), db.CharactersBucket, id, func(fav *entity.FavoriteEntity) bool {
		return fav.CharacterId != nil && *fav.CharacterId == id
	})
}
