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
	"net/http"

	"github.com/swfavorites/swfavorites-service/context"
	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/exception"
	"github.com/swfavorites/swfavorites-service/metrics"
	"github.com/swfavorites/swfavorites-service/repository"
	"github.com/swfavorites/swfavorites-service/utils"
	"github.com/swfavorites/swfavorites-service/view"
)

const FavoriteNotFoundMsg = "Favorite not found."

type FavoritesService interface {
	GetUserFavorites(ctx context.SecurityContext) ([]view.Favorite, error)
	AddFavorite(ctx context.SecurityContext, target view.FavoriteTarget) (*view.Message, error)
	// RemoveFavorite reports false with a not found message when the user has no such favorite.
	RemoveFavorite(ctx context.SecurityContext, target view.FavoriteTarget) (*view.Message, bool, error)

	// GetFavoriteRecords lists raw favorite rows, limit 0 means no paging.
	GetFavoriteRecords(limit int, page int) ([]view.FavoriteRecord, error)
	CreateFavoriteRecord(req view.FavoriteReq) (*view.FavoriteRecord, error)
	DeleteFavoriteRecord(id int) error
}

func NewFavoritesService(favoritesRepo repository.FavoritesRepository, userRepo repository.UserRepository,
	characterRepo repository.CharacterRepository, planetRepo repository.PlanetRepository, viewBuilder FavoritesViewBuilder) FavoritesService {
	return &favoritesServiceImpl{
		favoritesRepo: favoritesRepo,
		userRepo:      userRepo,
		characterRepo: characterRepo,
		planetRepo:    planetRepo,
		viewBuilder:   viewBuilder,
	}
}

type favoritesServiceImpl struct {
	favoritesRepo repository.FavoritesRepository
	userRepo      repository.UserRepository
	characterRepo repository.CharacterRepository
	planetRepo    repository.PlanetRepository
	viewBuilder   FavoritesViewBuilder
}

func (f favoritesServiceImpl) GetUserFavorites(ctx context.SecurityContext) ([]view.Favorite, error) {
	userId, err := f.checkUserExists(ctx.GetUserId())
	if err != nil {
		return nil, err
	}
	ents, err := f.favoritesRepo.GetUserFavorites(userId)
	if err != nil {
		return nil, err
	}
	return f.viewBuilder.BuildFavoriteViews(ents)
}

func (f favoritesServiceImpl) AddFavorite(ctx context.SecurityContext, target view.FavoriteTarget) (*view.Message, error) {
	userId, err := f.checkUserExists(ctx.GetUserId())
	if err != nil {
		return nil, err
	}
	label, name, err := f.getTargetName(target)
	if err != nil {
		return nil, err
	}
	if err = f.favoritesRepo.AddFavorite(entity.MakeFavoriteEntity(userId, target)); err != nil {
		return nil, err
	}
	metrics.FavoriteOperations.WithLabelValues(metrics.OperationAdd, string(target.Kind)).Inc()
	return &view.Message{Msg: fmt.Sprintf("%s %s added to favorites.", label, name)}, nil
}

func (f favoritesServiceImpl) RemoveFavorite(ctx context.SecurityContext, target view.FavoriteTarget) (*view.Message, bool, error) {
	userId, err := f.checkUserExists(ctx.GetUserId())
	if err != nil {
		return nil, false, err
	}
	removed, err := f.favoritesRepo.RemoveFavorite(userId, target)
	if err != nil {
		return nil, false, err
	}
	if !removed {
		return &view.Message{Msg: FavoriteNotFoundMsg}, false, nil
	}
	metrics.FavoriteOperations.WithLabelValues(metrics.OperationRemove, string(target.Kind)).Inc()
	return &view.Message{Msg: fmt.Sprintf("%s removed from favorites.", targetLabel(target.Kind))}, true, nil
}

func (f favoritesServiceImpl) GetFavoriteRecords(limit int, page int) ([]view.FavoriteRecord, error) {
	ents, err := f.favoritesRepo.GetFavorites()
	if err != nil {
		return nil, err
	}
	startIndex, endIndex := utils.PaginateList(len(ents), limit, page)
	ents = ents[startIndex:endIndex]
	result := make([]view.FavoriteRecord, 0, len(ents))
	for i := range ents {
		record, err := entity.MakeFavoriteRecordView(&ents[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *record)
	}
	return result, nil
}

func (f favoritesServiceImpl) CreateFavoriteRecord(req view.FavoriteReq) (*view.FavoriteRecord, error) {
	var target view.FavoriteTarget
	switch {
	case req.CharacterId != nil && req.PlanetId == nil:
		target = view.CharacterTarget(*req.CharacterId)
	case req.PlanetId != nil && req.CharacterId == nil:
		target = view.PlanetTarget(*req.PlanetId)
	default:
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.FavoriteTargetAmbiguous,
			Message: exception.FavoriteTargetAmbiguousMsg,
		}
	}
	if _, err := f.checkUserExists(req.UserId); err != nil {
		return nil, err
	}
	if _, _, err := f.getTargetName(target); err != nil {
		return nil, err
	}
	ent := entity.MakeFavoriteEntity(req.UserId, target)
	if err := f.favoritesRepo.AddFavorite(ent); err != nil {
		return nil, err
	}
	metrics.FavoriteOperations.WithLabelValues(metrics.OperationAdd, string(target.Kind)).Inc()
	return entity.MakeFavoriteRecordView(ent)
}

func (f favoritesServiceImpl) DeleteFavoriteRecord(id int) error {
	ent, err := f.favoritesRepo.GetFavoriteById(id)
	if err != nil {
		return err
	}
	if ent != nil {
		deleted, err := f.favoritesRepo.DeleteFavorite(id)
		if err != nil {
			return err
		}
		if deleted {
			if target, err := ent.Target(); err == nil {
				metrics.FavoriteOperations.WithLabelValues(metrics.OperationRemove, string(target.Kind)).Inc()
			}
			return nil
		}
	}
	return &exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.FavoriteNotFound,
		Message: exception.FavoriteNotFoundMsg,
		Params:  map[string]interface{}{"favoriteId": id},
	}
}

func (f favoritesServiceImpl) checkUserExists(userId int) (int, error) {
	if userId == 0 {
		return 0, &exception.CustomError{
			Status:  http.StatusUnauthorized,
			Code:    exception.PrincipalNotResolved,
			Message: exception.PrincipalNotResolvedMsg,
		}
	}
	user, err := f.userRepo.GetUserById(userId)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, userNotFound(userId)
	}
	return user.Id, nil
}

func (f favoritesServiceImpl) getTargetName(target view.FavoriteTarget) (string, string, error) {
	switch target.Kind {
	case view.FavoriteKindCharacter:
		ent, err := f.characterRepo.GetCharacterById(target.Id)
		if err != nil {
			return "", "", err
		}
		if ent == nil {
			return "", "", characterNotFound(target.Id)
		}
		return targetLabel(target.Kind), ent.Name, nil
	case view.FavoriteKindPlanet:
		ent, err := f.planetRepo.GetPlanetById(target.Id)
		if err != nil {
			return "", "", err
		}
		if ent == nil {
			return "", "", planetNotFound(target.Id)
		}
		return targetLabel(target.Kind), ent.Name, nil
	}
	return "", "", fmt.Errorf("unknown favorite target kind %v", target.Kind)
}

func targetLabel(kind view.FavoriteKind) string {
	if kind == view.FavoriteKindPlanet {
		return "Planet"
	}
	return "Character"
}
