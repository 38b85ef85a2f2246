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

package security

import (
	goctx "context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/shaj13/go-guardian/v2/auth/strategies/basic"
	"github.com/shaj13/go-guardian/v2/auth/strategies/jwt"
	"github.com/shaj13/go-guardian/v2/auth/strategies/union"
	"github.com/shaj13/libcache"
	_ "github.com/shaj13/libcache/lru"
	"github.com/swfavorites/swfavorites-service/context"
	"github.com/swfavorites/swfavorites-service/controller"
	"github.com/swfavorites/swfavorites-service/exception"
	"github.com/swfavorites/swfavorites-service/service"
	"github.com/swfavorites/swfavorites-service/view"
)

var strategy union.Union
var keeper jwt.SecretsKeeper
var userService service.UserService

func SetupGoGuardian(userServiceLocal service.UserService, systemInfoService service.SystemInfoService) error {
	userService = userServiceLocal

	block, _ := pem.Decode(systemInfoService.GetJwtPrivateKey())
	if block == nil {
		return fmt.Errorf("can't decode jwt private key: no PEM block found")
	}
	pkcs8PrivateKey, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return fmt.Errorf("can't parse pkcs8 private key. Error - %s", err.Error())
	}
	privateKey, ok := pkcs8PrivateKey.(*rsa.PrivateKey)
	if !ok {
		return fmt.Errorf("can't parse pkcs8 private key to rsa.PrivateKey")
	}

	keeper = jwt.StaticSecret{
		ID:        "secret-id",
		Secret:    privateKey,
		Algorithm: jwt.RS256,
	}

	cache := libcache.LRU.New(1000)
	cache.SetTTL(time.Minute * 60)
	cache.RegisterOnExpired(func(key, _ interface{}) {
		cache.Delete(key)
	})
	strategies := []auth.Strategy{
		jwt.New(cache, keeper),
		basic.NewCached(authenticateBasic, cache),
	}
	if defaultUserId := systemInfoService.GetDefaultUserId(); defaultUserId != 0 {
		strategies = append(strategies, NewDefaultPrincipalStrategy(userService, defaultUserId))
	}
	strategy = union.New(strategies...)
	return nil
}

func authenticateBasic(ctx goctx.Context, r *http.Request, login, password string) (auth.Info, error) {
	user, err := userService.AuthenticateUser(login, password)
	if err != nil {
		return nil, err
	}
	return makeUserInfo(*user), nil
}

func makeUserInfo(user view.AuthenticatedUser) auth.Info {
	extensions := auth.Extensions{}
	extensions.Set(context.AdminExt, strconv.FormatBool(user.IsAdmin))
	return auth.NewUserInfo(user.Username, strconv.Itoa(user.Id), []string{}, extensions)
}

func CreateLocalUserToken(w http.ResponseWriter, r *http.Request) {
	login, password, ok := r.BasicAuth()
	if !ok {
		controller.RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusUnauthorized,
			Message: http.StatusText(http.StatusUnauthorized),
		})
		return
	}
	user, err := userService.AuthenticateUser(login, password)
	if err != nil {
		controller.RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusUnauthorized,
			Code:    exception.InvalidCredentials,
			Message: exception.InvalidCredentialsMsg,
			Debug:   err.Error(),
		})
		return
	}
	userTokens, err := CreateTokenForUser(*user)
	if err != nil {
		controller.RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusUnauthorized,
			Message: http.StatusText(http.StatusUnauthorized),
			Debug:   err.Error(),
		})
		return
	}
	controller.RespondWithJson(w, http.StatusOK, userTokens)
}

func CreateTokenForUser(user view.AuthenticatedUser) (*view.UserTokens, error) {
	info := makeUserInfo(user)
	accessDuration := jwt.SetExpDuration(time.Hour * 12) // should be more than one minute!
	token, err := jwt.IssueAccessToken(info, keeper, accessDuration)
	if err != nil {
		return nil, err
	}
	renewDuration := jwt.SetExpDuration(time.Hour * 24 * 30) // approximately one month
	renewToken, err := jwt.IssueAccessToken(info, keeper, renewDuration)
	if err != nil {
		return nil, err
	}
	return &view.UserTokens{AccessToken: token, RenewToken: renewToken, User: user}, nil
}
