/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/mfreeman451/cohesity-checks/pkg/db"
	httpx "github.com/mfreeman451/cohesity-checks/pkg/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const (
	defaultHistoryLimit = 100
	readHeaderTimeout   = 10 * time.Second
)

// APIServer serves the check statuses, their stored history and the
// Prometheus metrics.
type APIServer struct {
	statuses StatusProvider
	store    db.Service
	gatherer prometheus.Gatherer
	router   *mux.Router
}

// NewAPIServer wires the routes. gatherer may be nil to leave out /metrics.
func NewAPIServer(statuses StatusProvider, store db.Service, gatherer prometheus.Gatherer) *APIServer {
	s := &APIServer{
		statuses: statuses,
		store:    store,
		gatherer: gatherer,
		router:   mux.NewRouter(),
	}

	s.setupRoutes()

	return s
}

func (s *APIServer) setupRoutes() {
	s.router.Use(httpx.CommonMiddleware)

	s.router.HandleFunc("/api/checks", s.getChecks).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/checks/{name}", s.getCheck).Methods(http.MethodGet, http.MethodOptions)
	s.router.HandleFunc("/api/checks/{name}/history", s.getCheckHistory).Methods(http.MethodGet, http.MethodOptions)

	if s.gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet, http.MethodOptions)
	}
}

// ServeHTTP implements http.Handler.
func (s *APIServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Server returns an http.Server serving the API on addr.
func (s *APIServer) Server(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

func (s *APIServer) getChecks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.statuses.Statuses())
}

func (s *APIServer) getCheck(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	status, ok := s.statuses.Status(name)
	if !ok {
		http.Error(w, "Check not found", http.StatusNotFound)

		return
	}

	writeJSON(w, status)
}

func (s *APIServer) getCheckHistory(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	limit := defaultHistoryLimit

	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)

			return
		}

		limit = n
	}

	history, err := s.store.GetHistory(name, limit)
	if err != nil {
		log.Errorf("Error fetching history for %s: %v", name, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	if len(history) == 0 {
		if _, ok := s.statuses.Status(name); !ok {
			http.Error(w, "Check not found", http.StatusNotFound)

			return
		}
	}

	writeJSON(w, history)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Error encoding response: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
