// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package devtools exposes a [diagnostics.Store] to browser debugging panels.
//
// Mount the handler in development builds only:
//
//	store := diagnostics.New()
//	mux.Handle("/_effects/", http.StripPrefix("/_effects", devtools.Handler(store)))
//
// Routes:
//
//	GET    /ids           identifiers of hooks with retained reports
//	GET    /reports       all retained reports, oldest first
//	GET    /reports/{id}  reports of one hook
//	DELETE /reports       clear the store
//	DELETE /reports/{id}  clear the reports of one hook
//	GET    /stream        websocket streaming every new report as JSON
package devtools

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"fillmore-labs.com/effectdeps/diagnostics"
)

// DefaultBuffer is the number of reports queued per stream client before reports are dropped.
const DefaultBuffer = 64

// Server serves the routes of a [diagnostics.Store].
type Server struct {
	store    *diagnostics.Store
	router   chi.Router
	upgrader websocket.Upgrader
	logger   *slog.Logger
	buffer   int
}

// Option configures a [Server].
type Option func(*Server)

// WithLogger sets the logger for connection diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCheckOrigin sets the origin check for stream connections.
// The default accepts same-origin requests only.
func WithCheckOrigin(check func(r *http.Request) bool) Option {
	return func(s *Server) {
		s.upgrader.CheckOrigin = check
	}
}

// WithBuffer sets the number of reports queued per stream client.
func WithBuffer(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.buffer = n
		}
	}
}

// Handler returns a [Server] for store.
func Handler(store *diagnostics.Store, opts ...Option) *Server {
	s := &Server{
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: slog.Default(),
		buffer: DefaultBuffer,
	}

	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/ids", s.ids)
	r.Get("/reports", s.reports)
	r.Delete("/reports", s.clear)
	r.Get("/reports/{id}", s.reportsByID)
	r.Delete("/reports/{id}", s.clearID)
	r.Get("/stream", s.stream)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	s.router = r

	return s
}

// ServeHTTP implements [http.Handler].
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) ids(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(s.store.IDs()))
}

func (s *Server) reports(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, nonNil(s.store.Reports()))
}

func (s *Server) reportsByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	reports := s.store.ByID(id)
	if len(reports) == 0 {
		writeError(w, http.StatusNotFound, "no reports for "+id)

		return
	}

	writeJSON(w, http.StatusOK, reports)
}

func (s *Server) clear(w http.ResponseWriter, _ *http.Request) {
	s.store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearID(w http.ResponseWriter, r *http.Request) {
	removed := s.store.ClearID(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

// stream pushes every report appended after the connection is established.
func (s *Server) stream(w http.ResponseWriter, r *http.Request) {
	// Subscribe before the handshake completes, so a client sees every report appended after
	// its dial returned.
	reports := make(chan diagnostics.Report, s.buffer)
	cancel := s.store.Subscribe(func(report diagnostics.Report) {
		select {
		case reports <- report:
		default:
			s.logger.Warn("Devtools stream lagging, report dropped", slog.String("id", report.ID), slog.Uint64("seq", report.Seq))
		}
	})
	defer cancel()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("Devtools stream upgrade failed", slog.Any("error", err))

		return
	}
	defer conn.Close()

	closed := make(chan struct{})

	go func() {
		defer close(closed)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return

		case report := <-reports:
			if err := conn.WriteJSON(report); err != nil {
				s.logger.Debug("Devtools stream write failed", slog.Any("error", err))

				return
			}
		}
	}
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}

	return values
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
