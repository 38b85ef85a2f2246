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
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/shaj13/go-guardian/v2/auth"
	log "github.com/sirupsen/logrus"
	"github.com/swfavorites/swfavorites-service/context"
	"github.com/swfavorites/swfavorites-service/controller"
	"github.com/swfavorites/swfavorites-service/exception"
)

func recoverPanic(w http.ResponseWriter, r *http.Request) {
	if err := recover(); err != nil {
		log.Errorf("Request %s failed with panic: %v", context.GetRequestId(r.Context()), err)
		log.Tracef("Stacktrace: %v", string(debug.Stack()))
		controller.RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusInternalServerError,
			Message: http.StatusText(http.StatusInternalServerError),
			Debug:   fmt.Sprintf("%v", err),
		})
	}
}

func authenticate(w http.ResponseWriter, r *http.Request) (*http.Request, bool) {
	_, user, err := strategy.AuthenticateRequest(r)
	if err != nil {
		log.Debugf("Authorization failed(401): %+v", err)
		w.Header().Set("WWW-Authenticate", `Basic realm="swfavorites"`)
		controller.RespondWithCustomError(w, &exception.CustomError{
			Status:  http.StatusUnauthorized,
			Message: http.StatusText(http.StatusUnauthorized),
			Debug:   fmt.Sprintf("%v", err),
		})
		return r, false
	}
	return auth.RequestWithUser(user, r), true
}

func Secure(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer recoverPanic(w, r)
		r, ok := authenticate(w, r)
		if !ok {
			return
		}
		next.ServeHTTP(w, r)
	}
}

// SecureAdmin additionally requires the principal to be an admin.
func SecureAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer recoverPanic(w, r)
		r, ok := authenticate(w, r)
		if !ok {
			return
		}
		isAdmin, err := isActiveAdmin(context.Create(r))
		if err != nil {
			controller.RespondWithError(w, "Failed to check user privileges", err)
			return
		}
		if !isAdmin {
			log.Debugf("Authorization failed(403): user %v is not an admin", auth.User(r).GetID())
			controller.RespondWithCustomError(w, &exception.CustomError{
				Status:  http.StatusForbidden,
				Code:    exception.InsufficientPrivileges,
				Message: exception.InsufficientPrivilegesMsg,
			})
			return
		}
		next.ServeHTTP(w, r)
	}
}

// isActiveAdmin rechecks the stored user since tokens and cached credentials keep the flag they were issued with.
func isActiveAdmin(ctx context.SecurityContext) (bool, error) {
	if !ctx.IsAdmin() {
		return false, nil
	}
	user, err := userService.GetAuthenticatedUser(ctx.GetUserId())
	if err != nil {
		return false, err
	}
	return user != nil && user.IsAdmin, nil
}

func NoSecure(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer recoverPanic(w, r)
		next.ServeHTTP(w, r)
	}
}
