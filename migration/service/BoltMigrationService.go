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
	"github.com/boltdb/bolt"
	log "github.com/sirupsen/logrus"
	"github.com/swfavorites/swfavorites-service/db"
)

// localSchemaVersion is bumped whenever the set of buckets changes.
const localSchemaVersion = 1

var metaBucket = []byte("schema_migrations")
var versionKey = []byte("version")

func NewBoltMigrationService(bp db.BoltProvider) DBMigrationService {
	return &boltMigrationServiceImpl{bp: bp}
}

type boltMigrationServiceImpl struct {
	bp db.BoltProvider
}

func (b *boltMigrationServiceImpl) Migrate() (int, int, error) {
	currentVersion := 0
	err := b.bp.GetDB().Update(func(tx *bolt.Tx) error {
		meta, err := tx.CreateBucketIfNotExists(metaBucket)
		if err != nil {
			return err
		}
		if v := meta.Get(versionKey); len(v) > 0 {
			currentVersion = int(v[0])
		}
		for _, name := range db.AllBuckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return meta.Put(versionKey, []byte{localSchemaVersion})
	})
	if err != nil {
		return 0, 0, err
	}
	log.Infof("Local storage migration: version %d -> %d", currentVersion, localSchemaVersion)
	return currentVersion, localSchemaVersion, nil
}
