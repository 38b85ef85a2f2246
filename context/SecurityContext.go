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

package context

import (
	"net/http"
	"strconv"

	"github.com/shaj13/go-guardian/v2/auth"
)

const AdminExt = "isAdmin"

// SecurityContext describes the acting principal of a request.
type SecurityContext interface {
	GetUserId() int
	IsAdmin() bool
}

func Create(r *http.Request) SecurityContext {
	user := auth.User(r)
	if user == nil {
		return &securityContextImpl{}
	}
	userId, _ := strconv.Atoi(user.GetID())
	return &securityContextImpl{
		userId:  userId,
		isAdmin: user.GetExtensions().Get(AdminExt) == "true",
	}
}

func CreateFromId(userId int) SecurityContext {
	return &securityContextImpl{userId: userId}
}

type securityContextImpl struct {
	userId  int
	isAdmin bool
}

func (ctx securityContextImpl) GetUserId() int {
	return ctx.userId
}

func (ctx securityContextImpl) IsAdmin() bool {
	return ctx.isAdmin
}
