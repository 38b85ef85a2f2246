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
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"
	"github.com/pkg/errors"
	"github.com/swfavorites/swfavorites-service/db"
	"github.com/swfavorites/swfavorites-service/entity"
)

// itob returns an 8-byte big endian representation of v, so cursor order equals id order.
func itob(v int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func bucketFor(tx *bolt.Tx, name string) (*bolt.Bucket, error) {
	bucket := tx.Bucket([]byte(name))
	if bucket == nil {
		return nil, fmt.Errorf("bucket %s does not exist, local storage is not migrated", name)
	}
	return bucket, nil
}

func encode(ent interface{}) ([]byte, error) {
	return json.Marshal(ent)
}

func decode(data []byte, ptr interface{}) error {
	return json.Unmarshal(data, ptr)
}

// getOne decodes the record stored under id into ptr and reports whether it exists.
func getOne(store *bolt.DB, bucketName string, id int, ptr interface{}) (bool, error) {
	found := false
	err := store.View(func(tx *bolt.Tx) error {
		bucket, err := bucketFor(tx, bucketName)
		if err != nil {
			return err
		}
		data := bucket.Get(itob(id))
		if data == nil {
			return nil
		}
		found = true
		return errors.Wrapf(decode(data, ptr), "failed to decode %s/%d", bucketName, id)
	})
	return found, err
}

// forEach walks a bucket in id order.
func forEach(tx *bolt.Tx, bucketName string, fn func(data []byte) error) error {
	bucket, err := bucketFor(tx, bucketName)
	if err != nil {
		return err
	}
	return bucket.ForEach(func(_, data []byte) error {
		return fn(data)
	})
}

// insert assigns the next sequence of the bucket as id and stores the record.
func insert(store *bolt.DB, bucketName string, setId func(int), ent interface{}) error {
	return store.Update(func(tx *bolt.Tx) error {
		return insertTx(tx, bucketName, setId, ent)
	})
}

func insertTx(tx *bolt.Tx, bucketName string, setId func(int), ent interface{}) error {
	bucket, err := bucketFor(tx, bucketName)
	if err != nil {
		return err
	}
	seq, err := bucket.NextSequence()
	if err != nil {
		return err
	}
	setId(int(seq))
	data, err := encode(ent)
	if err != nil {
		return err
	}
	return bucket.Put(itob(int(seq)), data)
}

func replace(store *bolt.DB, bucketName string, id int, ent interface{}) (bool, error) {
	updated := false
	err := store.Update(func(tx *bolt.Tx) error {
		bucket, err := bucketFor(tx, bucketName)
		if err != nil {
			return err
		}
		if bucket.Get(itob(id)) == nil {
			return nil
		}
		data, err := encode(ent)
		if err != nil {
			return err
		}
		updated = true
		return bucket.Put(itob(id), data)
	})
	return updated, err
}

// remove deletes the record and every favorite that cascade matches, in one transaction.
func remove(store *bolt.DB, bucketName string, id int, cascade func(fav *entity.FavoriteEntity) bool) (bool, error) {
	removed := false
	err := store.Update(func(tx *bolt.Tx) error {
		bucket, err := bucketFor(tx, bucketName)
		if err != nil {
			return err
		}
		if bucket.Get(itob(id)) == nil {
			return nil
		}
		if err := bucket.Delete(itob(id)); err != nil {
			return err
		}
		removed = true
		if cascade == nil {
			return nil
		}
		return deleteFavoritesTx(tx, cascade)
	})
	return removed, err
}

func deleteFavoritesTx(tx *bolt.Tx, match func(fav *entity.FavoriteEntity) bool) error {
	bucket, err := bucketFor(tx, db.FavoritesBucket)
	if err != nil {
		return err
	}
	toDelete := make([][]byte, 0)
	err = bucket.ForEach(func(key, data []byte) error {
		var fav entity.FavoriteEntity
		if err := decode(data, &fav); err != nil {
			return err
		}
		if match(&fav) {
			toDelete = append(toDelete, key)
		}
		return nil
	})
	if err != nil {
		return err
	}
	// keys can't be deleted while iterating with ForEach
	for _, key := range toDelete {
		if err := bucket.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
