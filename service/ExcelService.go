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
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/swfavorites/swfavorites-service/repository"
	"github.com/swfavorites/swfavorites-service/view"
	"github.com/xuri/excelize/v2"
)

const FavoritesSheetName = "Favorites"

type ExcelService interface {
	ExportFavorites() (*excelize.File, string, error)
}

func NewExcelService(favoritesRepo repository.FavoritesRepository, userRepo repository.UserRepository,
	characterRepo repository.CharacterRepository, planetRepo repository.PlanetRepository) ExcelService {
	return &excelServiceImpl{
		favoritesRepo: favoritesRepo,
		userRepo:      userRepo,
		characterRepo: characterRepo,
		planetRepo:    planetRepo,
	}
}

type excelServiceImpl struct {
	favoritesRepo repository.FavoritesRepository
	userRepo      repository.UserRepository
	characterRepo repository.CharacterRepository
	planetRepo    repository.PlanetRepository
}

type favoriteRow struct {
	id         int
	username   string
	kind       view.FavoriteKind
	targetId   int
	targetName string
}

func (e excelServiceImpl) ExportFavorites() (*excelize.File, string, error) {
	rows, err := e.collectRows()
	if err != nil {
		return nil, "", err
	}
	workbook := excelize.NewFile()
	report := favoritesReport{workbook: workbook}
	if err = report.createFavoritesSheet(rows); err != nil {
		return nil, "", err
	}
	if err = report.workbook.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("failed to delete default Sheet1: %v", err.Error())
	}
	filename := slug.Make(fmt.Sprintf("favorites %v", time.Now().Format("2006-01-02 15-04-05"))) + ".xlsx"
	return report.workbook, filename, nil
}

func (e excelServiceImpl) collectRows() ([]favoriteRow, error) {
	favorites, err := e.favoritesRepo.GetFavorites()
	if err != nil {
		return nil, err
	}
	users, err := e.userRepo.GetUsers()
	if err != nil {
		return nil, err
	}
	usernames := make(map[int]string, len(users))
	for _, user := range users {
		usernames[user.Id] = user.Username
	}
	characters, err := e.characterRepo.GetCharacters()
	if err != nil {
		return nil, err
	}
	planets, err := e.planetRepo.GetPlanets()
	if err != nil {
		return nil, err
	}
	names := map[view.FavoriteKind]map[int]string{
		view.FavoriteKindCharacter: make(map[int]string, len(characters)),
		view.FavoriteKindPlanet:    make(map[int]string, len(planets)),
	}
	for _, character := range characters {
		names[view.FavoriteKindCharacter][character.Id] = character.Name
	}
	for _, planet := range planets {
		names[view.FavoriteKindPlanet][planet.Id] = planet.Name
	}
	rows := make([]favoriteRow, 0, len(favorites))
	for _, fav := range favorites {
		target, err := fav.Target()
		if err != nil {
			return nil, err
		}
		rows = append(rows, favoriteRow{
			id:         fav.Id,
			username:   usernames[fav.UserId],
			kind:       target.Kind,
			targetId:   target.Id,
			targetName: names[target.Kind][target.Id],
		})
	}
	return rows, nil
}

type favoritesReport struct {
	workbook *excelize.File
}

func (f *favoritesReport) createFavoritesSheet(rows []favoriteRow) error {
	headerStyle := getHeaderStyle(f.workbook)
	evenCellStyle := getEvenCellStyle(f.workbook)
	oddCellStyle := getOddCellStyle(f.workbook)
	if _, err := f.workbook.NewSheet(FavoritesSheetName); err != nil {
		return fmt.Errorf("failed to create new sheet: %v", err)
	}
	cells := make(map[string]interface{})
	cells["A1"] = "Id"
	cells["B1"] = "User"
	cells["C1"] = "Kind"
	cells["D1"] = "Target id"
	cells["E1"] = "Target name"
	if err := f.workbook.SetCellStyle(FavoritesSheetName, "A1", "E1", headerStyle); err != nil {
		return err
	}
	if err := f.workbook.SetColWidth(FavoritesSheetName, "A", "A", 10); err != nil {
		return err
	}
	if err := f.workbook.SetColWidth(FavoritesSheetName, "B", "E", 25); err != nil {
		return err
	}
	rowIndex := 2
	for _, row := range rows {
		cells[fmt.Sprintf("A%d", rowIndex)] = row.id
		cells[fmt.Sprintf("B%d", rowIndex)] = row.username
		cells[fmt.Sprintf("C%d", rowIndex)] = string(row.kind)
		cells[fmt.Sprintf("D%d", rowIndex)] = row.targetId
		cells[fmt.Sprintf("E%d", rowIndex)] = row.targetName
		style := oddCellStyle
		if rowIndex%2 == 0 {
			style = evenCellStyle
		}
		if err := f.workbook.SetCellStyle(FavoritesSheetName, fmt.Sprintf("A%d", rowIndex), fmt.Sprintf("E%d", rowIndex), style); err != nil {
			return err
		}
		rowIndex++
	}
	if err := setCellsValues(f.workbook, FavoritesSheetName, cells); err != nil {
		return fmt.Errorf("failed to set cell values: %v", err.Error())
	}
	return f.workbook.AutoFilter(FavoritesSheetName, fmt.Sprintf("A1:E%d", rowIndex-1), []excelize.AutoFilterOptions{})
}

func setCellsValues(report *excelize.File, sheetName string, columnsValue map[string]interface{}) error {
	for key, value := range columnsValue {
		if err := report.SetCellValue(sheetName, key, value); err != nil {
			return err
		}
	}
	return nil
}

func cellBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "E2E5E8", Style: 1},
		{Type: "right", Color: "E2E5E8", Style: 1},
		{Type: "top", Color: "E2E5E8", Style: 1},
		{Type: "bottom", Color: "E2E5E8", Style: 1},
	}
}

func getHeaderStyle(file *excelize.File) (style int) {
	headerStyle, _ := file.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Family: "Arial", Size: 10, Color: "FFFFFF"},
		Border: cellBorders(),
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"4E79A0"}, Pattern: 1},
	})
	return headerStyle
}

func getEvenCellStyle(file *excelize.File) (style int) {
	evenCellStyle, _ := file.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Family: "Arial", Size: 10},
		Border: cellBorders(),
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#F5F7F8"}, Pattern: 1},
	})
	return evenCellStyle
}

func getOddCellStyle(file *excelize.File) (style int) {
	oddCellStyle, _ := file.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Family: "Arial", Size: 10},
		Border: cellBorders(),
	})
	return oddCellStyle
}
