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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TotalRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "swfavorites_http_requests_total",
		Help: "Number of http requests.",
	},
	[]string{"path", "code", "method"},
)

var HttpDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "swfavorites_http_request_duration_seconds",
		Buckets: []float64{
			0.01,
			0.05,
			0.1, // 100 ms
			0.25,
			0.5,
			1,
			3,
			5,
		},
	},
	[]string{"path", "code", "method"},
)

var FavoritesCount = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "swfavorites_favorites_count",
		Help: "Stored favorites per target kind.",
	},
	[]string{"kind"},
)

var FavoriteOperations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "swfavorites_favorite_operations_total",
		Help: "Favorite add/remove operations per target kind.",
	},
	[]string{"operation", "kind"},
)

var SwapiImportedRecords = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "swfavorites_swapi_imported_records_total",
		Help: "Records imported from SWAPI.",
	},
	[]string{"kind"},
)

const OperationAdd = "add"
const OperationRemove = "remove"

func RegisterAllPrometheusApplicationMetrics() {
	prometheus.Register(TotalRequests)
	prometheus.Register(FavoritesCount)
	prometheus.Register(FavoriteOperations)
	prometheus.Register(SwapiImportedRecords)
}
