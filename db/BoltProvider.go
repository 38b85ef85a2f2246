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

package db

import (
	"fmt"
	"time"

	"github.com/boltdb/bolt"
)

const (
	UsersBucket      = "user_data"
	CharactersBucket = "character_data"
	PlanetsBucket    = "planet_data"
	FavoritesBucket  = "favorite_data"
)

var AllBuckets = []string{UsersBucket, CharactersBucket, PlanetsBucket, FavoritesBucket}

type BoltProvider interface {
	GetDB() *bolt.DB
	Close() error
}

type boltProviderImpl struct {
	db *bolt.DB
}

func NewBoltProvider(path string) (BoltProvider, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open local database %s: %w", path, err)
	}
	return &boltProviderImpl{db: db}, nil
}

func (b *boltProviderImpl) GetDB() *bolt.DB {
	return b.db
}

// Close the database and release the file lock
func (b *boltProviderImpl) Close() error {
	return b.db.Close()
}
