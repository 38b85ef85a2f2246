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

	log "github.com/sirupsen/logrus"
	"github.com/swfavorites/swfavorites-service/view"
)

type ZeroDayAdminService interface {
	CreateZeroDayAdmin() error
}

func NewZeroDayAdminService(userService UserService, systemInfoService SystemInfoService) ZeroDayAdminService {
	return &zeroDayAdminServiceImpl{
		userService:       userService,
		systemInfoService: systemInfoService,
	}
}

type zeroDayAdminServiceImpl struct {
	userService       UserService
	systemInfoService SystemInfoService
}

func (a zeroDayAdminServiceImpl) CreateZeroDayAdmin() error {
	username, email, password, err := a.systemInfoService.GetZeroDayAdminCreds()
	if err != nil {
		return fmt.Errorf("CreateZeroDayAdmin: credentials error: %w, admin will not be created", err)
	}

	user, err := a.userService.GetUserByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		user, err = a.userService.CreateUser(view.UserReq{
			Username: username,
			Email:    email,
			Password: password,
			IsAdmin:  true,
		})
		if err != nil {
			return err
		}
		log.Infof("CreateZeroDayAdmin: admin user '%s' has been created", email)
		return nil
	}
	if !user.IsAdmin {
		return fmt.Errorf("CreateZeroDayAdmin: user '%s' exists but is not an admin", email)
	}
	if _, err = a.userService.AuthenticateUser(email, password); err != nil {
		if err = a.userService.UpdateUserPassword(user.Id, password); err != nil {
			return err
		}
		log.Infof("CreateZeroDayAdmin: password is updated for admin user")
	} else {
		log.Infof("CreateZeroDayAdmin: admin user is already present")
	}
	return nil
}
