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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/swfavorites/swfavorites-service/entity"
)

var upMigrationFileRegexp = regexp.MustCompile(`^[0-9]+_.+\.up\.sql$`)
var downMigrationFileRegexp = regexp.MustCompile(`^[0-9]+_.+\.down\.sql$`)

func getMigrationFilenamesMap(migrationsFolder string) (map[int]string, map[int]string, error) {
	entries, err := os.ReadDir(migrationsFolder)
	if err != nil {
		return nil, nil, err
	}
	upMigrations := make(map[int]string)
	downMigrations := make(map[int]string)
	maxUpMigrationNumber := 0
	for _, entry := range entries {
		file := entry.Name()
		num, _ := strconv.Atoi(strings.Split(file, `_`)[0])
		switch {
		case upMigrationFileRegexp.MatchString(file):
			if _, exists := upMigrations[num]; exists {
				return nil, nil, fmt.Errorf("found duplicate migration number, migration is not possible: %v", file)
			}
			upMigrations[num] = filepath.Join(migrationsFolder, file)
			if maxUpMigrationNumber < num {
				maxUpMigrationNumber = num
			}
		case downMigrationFileRegexp.MatchString(file):
			if _, exists := downMigrations[num]; exists {
				return nil, nil, fmt.Errorf("found duplicate migration number, migration is not possible: %v", file)
			}
			downMigrations[num] = filepath.Join(migrationsFolder, file)
		}
	}
	if maxUpMigrationNumber != len(upMigrations) {
		return nil, nil, fmt.Errorf("highest migration number (%v) should be equal to a total number of migrations (%v)", maxUpMigrationNumber, len(upMigrations))
	}
	for num := range downMigrations {
		if _, exists := upMigrations[num]; !exists {
			return nil, nil, fmt.Errorf("down migration '%v' doesn't belong to any of up migrations", downMigrations[num])
		}
	}
	return upMigrations, downMigrations, nil
}

func makeLocalMigrationEntity(migrationNumber int, upMigrations map[int]string, downMigrations map[int]string) (*entity.SchemaMigrationEntity, error) {
	upMigrationFile, exists := upMigrations[migrationNumber]
	if !exists {
		return nil, fmt.Errorf("up migration %v not found", migrationNumber)
	}
	upData, err := readMigrationFile(upMigrationFile)
	if err != nil {
		return nil, err
	}
	downData := []byte{}
	if downMigrationFile, exists := downMigrations[migrationNumber]; exists {
		if downData, err = readMigrationFile(downMigrationFile); err != nil {
			return nil, err
		}
	}
	return &entity.SchemaMigrationEntity{
		Num:      migrationNumber,
		UpHash:   calculateMigrationHash(migrationNumber, upData),
		SqlUp:    string(upData),
		DownHash: calculateMigrationHash(migrationNumber, downData),
		SqlDown:  string(downData),
	}, nil
}

func calculateMigrationHash(migrationNum int, data []byte) string {
	sum := sha256.New()
	sum.Write([]byte(strconv.Itoa(migrationNum)))
	sum.Write(data)
	return hex.EncodeToString(sum.Sum(nil))
}
