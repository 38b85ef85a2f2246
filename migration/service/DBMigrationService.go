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

package service

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-pg/pg/v10"
	log "github.com/sirupsen/logrus"
	"github.com/swfavorites/swfavorites-service/db"
	"github.com/swfavorites/swfavorites-service/entity"
)

type DBMigrationService interface {
	// Migrate brings the storage schema to the latest known version and returns the version before and after.
	Migrate() (int, int, error)
}

func NewDBMigrationService(cp db.ConnectionProvider, basePath string) (DBMigrationService, error) {
	service := &dbMigrationServiceImpl{
		cp:               cp,
		migrationsFolder: basePath + "/resources/migrations",
	}
	upMigrations, downMigrations, err := getMigrationFilenamesMap(service.migrationsFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration files: %v", err.Error())
	}
	service.upMigrations = upMigrations
	service.downMigrations = downMigrations
	return service, nil
}

type dbMigrationServiceImpl struct {
	cp               db.ConnectionProvider
	migrationsFolder string
	upMigrations     map[int]string
	downMigrations   map[int]string
}

func (d *dbMigrationServiceImpl) createMigrationTables() error {
	_, err := d.cp.GetConnection().Exec(`
		create table if not exists schema_migrations
		(
			version integer not null,
			dirty boolean not null,
			PRIMARY KEY(version)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema migrations table: %w", err)
	}
	_, err = d.cp.GetConnection().Exec(`
		create table if not exists stored_schema_migration
		(
			num integer not null,
			up_hash varchar not null,
			sql_up varchar not null,
			down_hash varchar null,
			sql_down varchar null,
			PRIMARY KEY(num)
		)`)
	if err != nil {
		return fmt.Errorf("failed to create stored migrations table: %w", err)
	}
	return nil
}

func (d *dbMigrationServiceImpl) Migrate() (int, int, error) {
	log.Infof("Schema Migration: start")
	if err := d.createMigrationTables(); err != nil {
		return 0, 0, err
	}

	var currentMigrationNumber int
	_, err := d.cp.GetConnection().QueryOne(pg.Scan(&currentMigrationNumber), `SELECT version FROM schema_migrations`)
	if err != nil && err != pg.ErrNoRows {
		return 0, 0, err
	}
	newMigrationNumber := len(d.upMigrations)
	upMigrations, downMigrations, err := d.getRequiredMigrations(currentMigrationNumber, newMigrationNumber)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to calculate required migrations to execute: %w", err)
	}
	if len(upMigrations)+len(downMigrations) == 0 {
		log.Infof("Schema Migration: no migrations required")
		return currentMigrationNumber, newMigrationNumber, nil
	}
	if err = d.applyRequiredMigrations(upMigrations, downMigrations); err != nil {
		return 0, 0, err
	}
	log.Infof("Schema Migration: finished successfully, version %d -> %d", currentMigrationNumber, newMigrationNumber)
	return currentMigrationNumber, newMigrationNumber, nil
}

func (d *dbMigrationServiceImpl) applyRequiredMigrations(upMigrations []entity.SchemaMigrationEntity, downMigrations []entity.SchemaMigrationEntity) error {
	sort.Slice(upMigrations, func(i, j int) bool {
		return upMigrations[i].Num < upMigrations[j].Num
	})
	sort.Slice(downMigrations, func(i, j int) bool {
		return downMigrations[i].Num > downMigrations[j].Num
	})
	var latestMigrationNum int
	if len(upMigrations) > 0 {
		latestMigrationNum = upMigrations[len(upMigrations)-1].Num
	} else {
		latestMigrationNum = downMigrations[len(downMigrations)-1].Num - 1
	}
	log.Infof("Schema Migration: applying %v down and %v up migrations", len(downMigrations), len(upMigrations))
	return d.cp.GetConnection().RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		for _, downMigration := range downMigrations {
			if strings.TrimSpace(downMigration.SqlDown) != "" {
				if _, err := tx.Exec(downMigration.SqlDown); err != nil {
					return fmt.Errorf("failed to apply stored down migration %v: %w", downMigration.Num, err)
				}
			}
			if _, err := tx.Model(&downMigration).WherePK().Delete(); err != nil {
				return fmt.Errorf("failed to remove down migration %v from stored_schema_migration: %w", downMigration.Num, err)
			}
			log.Infof("applied down migration %v", downMigration.Num)
		}
		for _, upMigration := range upMigrations {
			if _, err := tx.Exec(upMigration.SqlUp); err != nil {
				return fmt.Errorf("failed to apply up migration %v: %w", upMigration.Num, err)
			}
			if _, err := tx.Model(&upMigration).Insert(); err != nil {
				return fmt.Errorf("failed to store up migration %v: %w", upMigration.Num, err)
			}
			log.Infof("applied up migration %v", upMigration.Num)
		}
		if _, err := tx.Model(&entity.MigrationEntity{}).Where("version is not null").Delete(); err != nil {
			return fmt.Errorf("failed to update schema_migrations table with version %v: %w", latestMigrationNum, err)
		}
		if _, err := tx.Model(&entity.MigrationEntity{Version: latestMigrationNum}).Insert(); err != nil {
			return fmt.Errorf("failed to update schema_migrations table with version %v: %w", latestMigrationNum, err)
		}
		return nil
	})
}

// getRequiredMigrations walks stored and local migrations from the top down until their hashes agree.
func (d *dbMigrationServiceImpl) getRequiredMigrations(currentMigrationNumber int, newMigrationNumber int) ([]entity.SchemaMigrationEntity, []entity.SchemaMigrationEntity, error) {
	requiredUpMigrations := make([]entity.SchemaMigrationEntity, 0)
	requiredDownMigrations := make([]entity.SchemaMigrationEntity, 0)
	i := currentMigrationNumber
	j := newMigrationNumber
	for i > 0 || j > 0 {
		if i > j {
			storedMigration, err := d.getSchemaMigrationEntity(i)
			if err != nil {
				return nil, nil, err
			}
			requiredDownMigrations = append(requiredDownMigrations, *storedMigration)
			i--
			continue
		}
		localMigration, err := makeLocalMigrationEntity(j, d.upMigrations, d.downMigrations)
		if err != nil {
			return nil, nil, err
		}
		if j > i {
			requiredUpMigrations = append(requiredUpMigrations, *localMigration)
			j--
			continue
		}
		storedMigration, err := d.getSchemaMigrationEntity(i)
		if err != nil {
			return nil, nil, err
		}
		if localMigration.UpHash == storedMigration.UpHash {
			break
		}
		requiredUpMigrations = append(requiredUpMigrations, *localMigration)
		requiredDownMigrations = append(requiredDownMigrations, *storedMigration)
		i--
		j--
	}
	return requiredUpMigrations, requiredDownMigrations, nil
}

func (d *dbMigrationServiceImpl) getSchemaMigrationEntity(migrationNumber int) (*entity.SchemaMigrationEntity, error) {
	var storedMigration entity.SchemaMigrationEntity
	err := d.cp.GetConnection().Model(&storedMigration).Where("num = ?", migrationNumber).Limit(1).Select()
	if err != nil {
		if err == pg.ErrNoRows {
			return nil, fmt.Errorf("stored migration %v not found", migrationNumber)
		}
		return nil, fmt.Errorf("failed to read stored migration %v: %w", migrationNumber, err)
	}
	return &storedMigration, nil
}

func readMigrationFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration file %v: %w", name, err)
	}
	return data, nil
}
