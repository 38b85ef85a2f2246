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

func NewPlanetRepositoryPG(cp db.ConnectionProvider) PlanetRepository {
	return &planetRepositoryImpl{cp: cp}
}

type planetRepositoryImpl struct {
	cp db.ConnectionProvider
}

func (p planetRepositoryImpl) GetPlanets() ([]entity.PlanetEntity, error) {
	result := make([]entity.PlanetEntity, 0)
	err := p.cp.GetConnection().Model(&result).
		Order("id ASC").
		Select()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p planetRepositoryImpl) GetPlanetById(id int) (*entity.PlanetEntity, error) {
	result := new(entity.PlanetEntity)
	err := p.cp.GetConnection().Model(result).
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

func (p planetRepositoryImpl) GetPlanetsByIds(ids []int) ([]entity.PlanetEntity, error) {
	var result []entity.PlanetEntity
	if len(ids) == 0 {
		return nil, nil
	}
	err := p.cp.GetConnection().Model(&result).
		Where("id in (?)", pg.In(ids)).
		Order("id ASC").
		Select()
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p planetRepositoryImpl) GetPlanetByName(name string) (*entity.PlanetEntity, error) {
	result := new(entity.PlanetEntity)
	err := p.cp.GetConnection().Model(result).
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

func (p planetRepositoryImpl) CreatePlanet(ent *entity.PlanetEntity) error {
	_, err := p.cp.GetConnection().Model(ent).
		Returning("id").
		Insert()
	return err
}

func (p planetRepositoryImpl) UpdatePlanet(ent *entity.PlanetEntity) (bool, error) {
	res, err := p.cp.GetConnection().Model(ent).
		WherePK().
		Update()
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

// favorite_data.planet_id is declared with "on delete cascade"
func (p planetRepositoryImpl) DeletePlanet(id int) (bool, error) {
	res, err := p.cp.GetConnection().Model(&entity.PlanetEntity{}).
		Where("id = ?", id).
		Delete()
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}
