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

package controller

import (
	"net/http"
	"regexp"
	"sort"

	"github.com/gorilla/mux"
	"github.com/swfavorites/swfavorites-service/view"
)

var pathVarPattern = regexp.MustCompile(`\{([^:}]+):[^}]+\}`)

type SitemapController interface {
	GetSitemap(w http.ResponseWriter, r *http.Request)
}

// NewSitemapController lists the routes of router at request time, so routes added later are included.
func NewSitemapController(router *mux.Router) SitemapController {
	return &sitemapControllerImpl{router: router}
}

type sitemapControllerImpl struct {
	router *mux.Router
}

func (s sitemapControllerImpl) GetSitemap(w http.ResponseWriter, r *http.Request) {
	sitemap, err := s.buildSitemap()
	if err != nil {
		RespondWithError(w, "Failed to build sitemap", err)
		return
	}
	RespondWithJson(w, http.StatusOK, sitemap)
}

func (s sitemapControllerImpl) buildSitemap() (*view.Sitemap, error) {
	routes := make([]view.Route, 0)
	err := s.router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}
		path = pathVarPattern.ReplaceAllString(path, "{$1}")
		for _, method := range methods {
			routes = append(routes, view.Route{Method: method, Path: path})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	return &view.Sitemap{Routes: routes}, nil
}
