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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swfavorites/swfavorites-service/db"
)

func writeMigrationFiles(t *testing.T, names ...string) string {
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("select 1;"), 0644))
	}
	return dir
}

func TestGetMigrationFilenamesMap_ProjectMigrations(t *testing.T) {
	up, down, err := getMigrationFilenamesMap("../../resources/migrations")
	require.NoError(t, err)
	assert.Len(t, up, 2)
	assert.Len(t, down, 2)
	assert.Equal(t, "1_initial_schema.up.sql", filepath.Base(up[1]))

	ent, err := makeLocalMigrationEntity(1, up, down)
	require.NoError(t, err)
	assert.Contains(t, ent.SqlUp, "favorite_data")
	assert.NotEqual(t, ent.UpHash, ent.DownHash)
}

func TestGetMigrationFilenamesMap_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		files []string
	}{
		{"Gap", []string{"1_a.up.sql", "3_c.up.sql"}},
		{"Duplicate", []string{"1_a.up.sql", "1_b.up.sql"}},
		{"OrphanDown", []string{"1_a.up.sql", "2_b.down.sql"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := getMigrationFilenamesMap(writeMigrationFiles(t, tc.files...))
			assert.Error(t, err)
		})
	}
}

func TestGetMigrationFilenamesMap_IgnoresOtherFiles(t *testing.T) {
	up, down, err := getMigrationFilenamesMap(writeMigrationFiles(t, "1_a.up.sql", "README.md", "notes.sql"))
	require.NoError(t, err)
	assert.Len(t, up, 1)
	assert.Empty(t, down)

	ent, err := makeLocalMigrationEntity(1, up, down)
	require.NoError(t, err)
	assert.Empty(t, ent.SqlDown)

	_, err = makeLocalMigrationEntity(2, up, down)
	assert.Error(t, err)
}

func TestCalculateMigrationHash(t *testing.T) {
	data := []byte("create table planet_data();")
	assert.Equal(t, calculateMigrationHash(1, data), calculateMigrationHash(1, data))
	assert.NotEqual(t, calculateMigrationHash(1, data), calculateMigrationHash(2, data))
	assert.Len(t, calculateMigrationHash(1, data), 64)
}

func TestBoltMigrationService(t *testing.T) {
	bp, err := db.NewBoltProvider(filepath.Join(t.TempDir(), uuid.New().String()+".db"))
	require.NoError(t, err)
	defer bp.Close()
	migrationService := NewBoltMigrationService(bp)

	current, target, err := migrationService.Migrate()
	require.NoError(t, err)
	assert.Equal(t, 0, current)
	assert.Equal(t, localSchemaVersion, target)

	current, _, err = migrationService.Migrate()
	require.NoError(t, err)
	assert.Equal(t, localSchemaVersion, current)
}
