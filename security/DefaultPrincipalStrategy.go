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
	"fmt"
	"net/http"

	"github.com/shaj13/go-guardian/v2/auth"
	"github.com/swfavorites/swfavorites-service/service"
	"github.com/swfavorites/swfavorites-service/view"
)

// NewDefaultPrincipalStrategy authenticates requests that carry no credentials as the configured user.
func NewDefaultPrincipalStrategy(userService service.UserService, userId int) auth.Strategy {
	return &defaultPrincipalStrategyImpl{userService: userService, userId: userId}
}

type defaultPrincipalStrategyImpl struct {
	userService service.UserService
	userId      int
}

func (d defaultPrincipalStrategyImpl) Authenticate(ctx goctx.Context, r *http.Request) (auth.Info, error) {
	if r.Header.Get("Authorization") != "" {
		return nil, fmt.Errorf("authentication failed: credentials are present but invalid")
	}
	user, err := d.userService.GetAuthenticatedUser(d.userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// the principal is still resolved, so endpoints can report the missing user themselves
		return makeUserInfo(view.AuthenticatedUser{Id: d.userId}), nil
	}
	return makeUserInfo(*user), nil
}
