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

func NewPlanetRepositoryBolt(bp db.BoltProvider) PlanetRepository {
	return &planetRepositoryBoltImpl{bp: bp}
}

type planetRepositoryBoltImpl struct {
	bp db.BoltProvider
}

func (p planetRepositoryBoltImpl) GetPlanets() ([]entity.PlanetEntity, error) {
	return p.findPlanets(func(*entity.PlanetEntity) bool { return true })
}

func (p planetRepositoryBoltImpl) GetPlanetById(id int) (*entity.PlanetEntity, error) {
	result := new(entity.PlanetEntity)
	found, err := getOne(p.bp.GetDB(), db.PlanetsBucket, id, result)
	if err != nil || !found {
		return nil, err
	}
	return result, nil
}

func (p planetRepositoryBoltImpl) GetPlanetsByIds(ids []int) ([]entity.PlanetEntity, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	idSet := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	return p.findPlanets(func(ent *entity.PlanetEntity) bool {
		_, exists := idSet[ent.Id]
		return exists
	})
}

func (p planetRepositoryBoltImpl) GetPlanetByName(name string) (*entity.PlanetEntity, error) {
	result, err := p.findPlanets(func(ent *entity.PlanetEntity) bool { return ent.Name == name })
	if err != nil || len(result) == 0 {
		return nil, err
	}
	return &result[0], nil
}

func (p planetRepositoryBoltImpl) findPlanets(filter func(*entity.PlanetEntity) bool) ([]entity.PlanetEntity, error) {
	result := make([]entity.PlanetEntity, 0)
	err := p.bp.GetDB().View(func(tx *bolt.Tx) error {
		return forEach(tx, db.PlanetsBucket, func(data []byte) error {
			var ent entity.PlanetEntity
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

func (p planetRepositoryBoltImpl) CreatePlanet(ent *entity.PlanetEntity) error {
	return insert(p.bp.GetDB(), db.PlanetsBucket, func(id int) { ent.Id = id }, ent)
}

func (p planetRepositoryBoltImpl) UpdatePlanet(ent *entity.PlanetEntity) (bool, error) {
	return replace(p.bp.GetDB(), db.PlanetsBucket, ent.Id, ent)
}

func (p planetRepositoryBoltImpl) DeletePlanet(id int) (bool, error) {
	return remove(p.bp.GetDB(), db.PlanetsBucket, id, func(fav *entity.FavoriteEntity) bool {
		return fav.PlanetId != nil && *fav.PlanetId == id
	})
}
