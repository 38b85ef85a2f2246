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
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/swfavorites/swfavorites-service/entity"
	"github.com/swfavorites/swfavorites-service/exception"
	"github.com/swfavorites/swfavorites-service/repository"
	"github.com/swfavorites/swfavorites-service/utils"
	"github.com/swfavorites/swfavorites-service/view"
	"golang.org/x/crypto/bcrypt"
)

type UserService interface {
	GetUsers() ([]view.User, error)
	GetUser(id int) (*view.User, error)
	GetAuthenticatedUser(id int) (*view.AuthenticatedUser, error)
	GetUserByEmail(email string) (*view.AuthenticatedUser, error)
	CreateUser(req view.UserReq) (*view.AuthenticatedUser, error)
	UpdateUser(id int, req view.UserReq) (*view.AuthenticatedUser, error)
	UpdateUserPassword(id int, password string) error
	DeleteUser(id int) error
	// AuthenticateUser accepts either the username or the email as login.
	AuthenticateUser(login string, password string) (*view.AuthenticatedUser, error)
}

func NewUserService(repo repository.UserRepository, favoritesRepo repository.FavoritesRepository, viewBuilder FavoritesViewBuilder) UserService {
	return &usersServiceImpl{
		repo:          repo,
		favoritesRepo: favoritesRepo,
		viewBuilder:   viewBuilder,
	}
}

type usersServiceImpl struct {
	repo          repository.UserRepository
	favoritesRepo repository.FavoritesRepository
	viewBuilder   FavoritesViewBuilder
}

func (u usersServiceImpl) GetUsers() ([]view.User, error) {
	defer utils.Measure(500, "GetUsers")()
	users, err := u.repo.GetUsers()
	if err != nil {
		return nil, err
	}
	favorites, err := u.favoritesRepo.GetFavorites()
	if err != nil {
		return nil, err
	}
	favoriteViews, err := u.viewBuilder.BuildFavoriteViews(favorites)
	if err != nil {
		return nil, err
	}
	byUser := make(map[int][]view.Favorite)
	for _, fav := range favoriteViews {
		byUser[fav.UserId] = append(byUser[fav.UserId], fav)
	}
	result := make([]view.User, 0, len(users))
	for i := range users {
		result = append(result, *entity.MakeUserView(&users[i], byUser[users[i].Id]))
	}
	return result, nil
}

func (u usersServiceImpl) GetUser(id int) (*view.User, error) {
	ent, err := u.repo.GetUserById(id)
	if err != nil {
		return nil, err
	}
	if ent == nil {
		return nil, userNotFound(id)
	}
	favorites, err := u.favoritesRepo.GetUserFavorites(id)
	if err != nil {
		return nil, err
	}
	favoriteViews, err := u.viewBuilder.BuildFavoriteViews(favorites)
	if err != nil {
		return nil, err
	}
	return entity.MakeUserView(ent, favoriteViews), nil
}

func (u usersServiceImpl) GetAuthenticatedUser(id int) (*view.AuthenticatedUser, error) {
	ent, err := u.repo.GetUserById(id)
	if err != nil || ent == nil {
		return nil, err
	}
	return entity.MakeAuthenticatedUserView(ent), nil
}

func (u usersServiceImpl) GetUserByEmail(email string) (*view.AuthenticatedUser, error) {
	ent, err := u.repo.GetUserByEmail(email)
	if err != nil || ent == nil {
		return nil, err
	}
	return entity.MakeAuthenticatedUserView(ent), nil
}

func (u usersServiceImpl) CreateUser(req view.UserReq) (*view.AuthenticatedUser, error) {
	passwordHash, err := createBcryptHashedPassword(req.Password)
	if err != nil {
		return nil, err
	}
	ent := entity.MakeUserEntity(&req, passwordHash)
	if err = u.repo.CreateUser(ent); err != nil {
		return nil, u.mapDuplicateError(err, ent, 0)
	}
	log.Infof("User '%s' (id %d) has been created", ent.Username, ent.Id)
	return entity.MakeAuthenticatedUserView(ent), nil
}

func (u usersServiceImpl) UpdateUser(id int, req view.UserReq) (*view.AuthenticatedUser, error) {
	passwordHash, err := createBcryptHashedPassword(req.Password)
	if err != nil {
		return nil, err
	}
	ent := entity.MakeUserEntity(&req, passwordHash)
	ent.Id = id
	updated, err := u.repo.UpdateUser(ent)
	if err != nil {
		return nil, u.mapDuplicateError(err, ent, id)
	}
	if !updated {
		return nil, userNotFound(id)
	}
	return entity.MakeAuthenticatedUserView(ent), nil
}

func (u usersServiceImpl) UpdateUserPassword(id int, password string) error {
	passwordHash, err := createBcryptHashedPassword(password)
	if err != nil {
		return err
	}
	return u.repo.UpdateUserPassword(id, passwordHash)
}

func (u usersServiceImpl) DeleteUser(id int) error {
	deleted, err := u.repo.DeleteUser(id)
	if err != nil {
		return err
	}
	if !deleted {
		return userNotFound(id)
	}
	return nil
}

func (u usersServiceImpl) AuthenticateUser(login string, password string) (*view.AuthenticatedUser, error) {
	var userEntity *entity.UserEntity
	var err error
	if strings.Contains(login, "@") {
		userEntity, err = u.repo.GetUserByEmail(login)
	} else {
		userEntity, err = u.repo.GetUserByUsername(login)
	}
	if err != nil {
		return nil, err
	}
	if password == "" || userEntity == nil || len(userEntity.Password) == 0 {
		log.Debugf("Local authentication failed for %v", login)
		return nil, fmt.Errorf("invalid credentials")
	}
	err = bcrypt.CompareHashAndPassword(userEntity.Password, []byte(password))
	if err != nil {
		log.Debugf("Local authentication failed for %v", login)
		return nil, fmt.Errorf("invalid credentials")
	}
	return entity.MakeAuthenticatedUserView(userEntity), nil
}

// mapDuplicateError tells apart username and email conflicts, which the storage reports alike.
func (u usersServiceImpl) mapDuplicateError(err error, ent *entity.UserEntity, excludedId int) error {
	if !errors.Is(err, repository.ErrDuplicate) {
		return err
	}
	existing, lookupErr := u.repo.GetUserByUsername(ent.Username)
	if lookupErr == nil && existing != nil && existing.Id != excludedId {
		return &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.UsernameAlreadyTaken,
			Message: exception.UsernameAlreadyTakenMsg,
			Params:  map[string]interface{}{"username": ent.Username},
		}
	}
	return &exception.CustomError{
		Status:  http.StatusBadRequest,
		Code:    exception.EmailAlreadyTaken,
		Message: exception.EmailAlreadyTakenMsg,
		Params:  map[string]interface{}{"email": ent.Email},
	}
}

func createBcryptHashedPassword(password string) ([]byte, error) {
	//bcrypt max allowed password len
	if len([]byte(password)) > 72 {
		return nil, &exception.CustomError{
			Status:  http.StatusBadRequest,
			Code:    exception.PasswordTooLong,
			Message: exception.PasswordTooLongMsg,
		}
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

func userNotFound(id int) *exception.CustomError {
	return &exception.CustomError{
		Status:  http.StatusNotFound,
		Code:    exception.UserNotFound,
		Message: exception.UserNotFoundMsg,
		Params:  map[string]interface{}{"userId": id},
	}
}
