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
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/swfavorites/swfavorites-service/metrics"
)

type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newStatusResponseWriter(w http.ResponseWriter) *statusResponseWriter {
	return &statusResponseWriter{w, http.StatusOK}
}

func (srw *statusResponseWriter) WriteHeader(code int) {
	srw.statusCode = code
	srw.ResponseWriter.WriteHeader(code)
}

func PrometheusMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := getTemplatePath(r)
		now := time.Now()

		srw := newStatusResponseWriter(w)
		next.ServeHTTP(srw, r)
		statusCode := strconv.Itoa(srw.statusCode)

		elapsedSeconds := time.Since(now).Seconds()

		metrics.TotalRequests.WithLabelValues(path, statusCode, r.Method).Inc()
		metrics.HttpDuration.WithLabelValues(path, statusCode, r.Method).Observe(elapsedSeconds)
	})
}

func getTemplatePath(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unmatched"
	}
	templatePath, err := route.GetPathTemplate()
	if err != nil {
		return "unmatched"
	}
	return templatePath
}
