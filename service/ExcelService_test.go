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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swfavorites/swfavorites-service/context"
	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/view"
)

func TestExcelService_ExportFavorites(t *testing.T) {
	repos := newTestRepositories(t)
	user := createTestUser(t, repos)
	character := &entity.CharacterEntity{Name: "Chewbacca"}
	require.NoError(t, repos.characterRepo.CreateCharacter(character))
	_, err := repos.favoritesService().AddFavorite(context.CreateFromId(user.Id), view.CharacterTarget(character.Id))
	require.NoError(t, err)

	excelService := NewExcelService(repos.favoritesRepo, repos.userRepo, repos.characterRepo, repos.planetRepo)
	workbook, filename, err := excelService.ExportFavorites()
	require.NoError(t, err)
	defer workbook.Close()
	assert.True(t, strings.HasPrefix(filename, "favorites-"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))
	assert.Equal(t, []string{FavoritesSheetName}, workbook.GetSheetList())

	rows, err := workbook.GetRows(FavoritesSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Id", "User", "Kind", "Target id", "Target name"}, rows[0])
	assert.Equal(t, []string{"1", user.Username, "character", "1", "Chewbacca"}, rows[1])
}
