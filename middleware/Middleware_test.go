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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/swfavorites/swfavorites-service/context"
)

func TestStripTrailingSlash(t *testing.T) {
	testCases := []struct {
		path     string
		expected string
	}{
		{"/", "/"},
		{"/people", "/people"},
		{"/people/", "/people"},
		{"/favorite/planet/1//", "/favorite/planet/1"},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			var seen string
			handler := StripTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r.URL.Path
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path, nil))
			assert.Equal(t, tc.expected, seen)
		})
	}
}

func TestRequestIdMiddleware(t *testing.T) {
	var seen string
	handler := RequestIdMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = context.GetRequestId(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIdHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIdHeader, "req-1")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", rec.Header().Get(RequestIdHeader))
}

func TestPrometheusMiddleware_KeepsStatus(t *testing.T) {
	handler := PrometheusMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/people", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestGetTemplatePath(t *testing.T) {
	var seen string
	router := mux.NewRouter()
	router.HandleFunc("/people/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		seen = getTemplatePath(r)
	})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/people/3", nil))
	assert.Equal(t, "/people/{id:[0-9]+}", seen)

	assert.Equal(t, "unmatched", getTemplatePath(httptest.NewRequest(http.MethodGet, "/people/3", nil)))
}
