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

package client

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"github.com/swfavorites/swfavorites-service/view"
	"golang.org/x/time/rate"
)

// maxPages bounds pagination in case the remote keeps returning a next link.
const maxPages = 100

const DefaultContextTimeout = time.Second * 60

type SwapiClient interface {
	GetPeople(ctx context.Context) ([]view.SwapiPerson, error)
	GetPlanets(ctx context.Context) ([]view.SwapiPlanet, error)
}

func NewSwapiClient(baseUrl string) SwapiClient {
	cl := http.Client{Timeout: time.Second * 30}
	client := resty.NewWithClient(&cl).
		SetBaseURL(baseUrl).
		SetHeader("accept", "application/json").
		SetRetryCount(2).
		SetRetryWaitTime(time.Second)
	return &swapiClientImpl{
		client:      client,
		rateLimiter: rate.NewLimiter(5, 1), // x requests per second
	}
}

type swapiClientImpl struct {
	client      *resty.Client
	rateLimiter *rate.Limiter
}

func (s swapiClientImpl) GetPeople(ctx context.Context) ([]view.SwapiPerson, error) {
	return getAllPages[view.SwapiPerson](ctx, s, "/people/")
}

func (s swapiClientImpl) GetPlanets(ctx context.Context) ([]view.SwapiPlanet, error) {
	return getAllPages[view.SwapiPlanet](ctx, s, "/planets/")
}

func getAllPages[T any](ctx context.Context, s swapiClientImpl, path string) ([]T, error) {
	result := make([]T, 0)
	next := path
	for page := 0; next != "" && page < maxPages; page++ {
		if err := s.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
		var body view.SwapiPage[T]
		resp, err := s.client.R().
			SetContext(ctx).
			SetResult(&body).
			Get(next)
		if err != nil {
			return nil, fmt.Errorf("failed to get %v: %w", next, err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("failed to get %v: unexpected status %v", next, resp.StatusCode())
		}
		result = append(result, body.Results...)
		next = ""
		if body.Next != nil {
			next = *body.Next
		}
		log.Debugf("SWAPI: loaded %d of %d records from %v", len(result), body.Count, path)
	}
	if next != "" {
		log.Warnf("SWAPI: stopped %v pagination after %d pages", strings.Trim(path, "/"), maxPages)
	}
	return result, nil
}
