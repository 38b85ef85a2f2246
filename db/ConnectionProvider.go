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
	"strings"

	"github.com/go-pg/pg/v10"
)

type ConnectionProvider interface {
	GetConnection() *pg.DB
	Close() error
}

type connectionProviderImpl struct {
	opts *pg.Options
	db   *pg.DB
}

// NewConnectionProvider accepts both postgres:// and the legacy postgresql:// url schemes.
func NewConnectionProvider(databaseUrl string) (ConnectionProvider, error) {
	if strings.HasPrefix(databaseUrl, "postgresql://") {
		databaseUrl = "postgres://" + strings.TrimPrefix(databaseUrl, "postgresql://")
	}
	opts, err := pg.ParseURL(databaseUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	opts.PoolSize = 50
	opts.MaxRetries = 5
	return &connectionProviderImpl{opts: opts}, nil
}

func (c *connectionProviderImpl) GetConnection() *pg.DB {
	if c.db == nil {
		c.db = pg.Connect(c.opts)
	}
	return c.db
}

func (c *connectionProviderImpl) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
