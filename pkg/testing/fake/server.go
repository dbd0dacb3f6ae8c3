/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package fake provides an in-memory manila API, fronted by just enough of
// keystone to authenticate and find it in the catalog.  Resources move
// through their lifecycle one poll at a time so waiters get exercised.
package fake

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	// Region is the only region in the catalog.
	Region = "RegionOne"

	// Token is issued to anyone who asks.
	Token = "fake-token"

	// MicroversionHeader carries the requested manila microversion.
	MicroversionHeader = "X-OpenStack-Manila-API-Version"

	statusCreating  = "creating"
	statusAvailable = "available"
	statusDeleting  = "deleting"
)

// Collection names a type of manila resource.
type Collection string

const (
	Shares           Collection = "shares"
	ShareNetworks    Collection = "share-networks"
	ShareTypes       Collection = "types"
	SecurityServices Collection = "security-services"
)

// envelope is the JSON key wrapping a single resource.
func (c Collection) envelope() string {
	switch c {
	case Shares:
		return "share"
	case ShareNetworks:
		return "share_network"
	case ShareTypes:
		return "share_type"
	case SecurityServices:
		return "security_service"
	}

	return string(c)
}

// Request records a manila API call.
type Request struct {
	Method       string
	Path         string
	Microversion string
}

type fault struct {
	method     string
	collection Collection
	status     int
}

// Server is a fake manila endpoint.
type Server struct {
	server    *httptest.Server
	projectID string

	lock      sync.Mutex
	resources map[Collection]map[string]map[string]any
	requests  []Request
	faults    []fault

	// shareStatus is where new shares settle after creating.
	shareStatus string
}

// Option configures the server.
type Option func(*Server)

// WithShareStatus makes new shares settle in the given status, e.g. "error".
func WithShareStatus(status string) Option {
	return func(s *Server) {
		s.shareStatus = status
	}
}

// New starts a fake server, close it when done.
func New(options ...Option) *Server {
	s := &Server{
		projectID: uuid.NewString(),
		resources: map[Collection]map[string]map[string]any{
			Shares:           {},
			ShareNetworks:    {},
			ShareTypes:       {},
			SecurityServices: {},
		},
		shareStatus: statusAvailable,
	}

	for _, o := range options {
		o(s)
	}

	s.server = httptest.NewServer(s.router())

	return s
}

// Close shuts down the server.
func (s *Server) Close() {
	s.server.Close()
}

// URL is the server's base URL.
func (s *Server) URL() string {
	return s.server.URL
}

// IdentityEndpoint is the keystone v3 endpoint to authenticate against.
func (s *Server) IdentityEndpoint() string {
	return s.server.URL + "/v3/"
}

// Endpoint is manila's endpoint as advertised in the catalog.
func (s *Server) Endpoint() string {
	return s.server.URL + "/v2/" + s.projectID + "/"
}

// Fail makes every request of the method on the collection, or any of its
// members, return the status until cleared with Reset.
func (s *Server) Fail(method string, collection Collection, status int) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.faults = append(s.faults, fault{method: method, collection: collection, status: status})
}

// Reset removes any injected faults.
func (s *Server) Reset() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.faults = nil
}

// Requests returns the manila API calls made so far.
func (s *Server) Requests() []Request {
	s.lock.Lock()
	defer s.lock.Unlock()

	return slices.Clone(s.requests)
}

// IDs returns the identifiers of the resources that exist in a collection.
func (s *Server) IDs(collection Collection) []string {
	s.lock.Lock()
	defer s.lock.Unlock()

	ids := make([]string, 0, len(s.resources[collection]))

	for id := range s.resources[collection] {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

// Get returns a copy of a stored resource.
func (s *Server) Get(collection Collection, id string) (map[string]any, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	resource, ok := s.resources[collection][id]
	if !ok {
		return nil, false
	}

	out := map[string]any{}

	for k, v := range resource {
		out[k] = v
	}

	return out, true
}

func (s *Server) router() http.Handler {
	router := chi.NewRouter()

	router.Post("/v3/auth/tokens", s.createToken)

	router.Route("/v2/{projectID}", func(r chi.Router) {
		for _, collection := range []Collection{Shares, ShareNetworks, ShareTypes, SecurityServices} {
			r.Route("/"+string(collection), func(r chi.Router) {
				r.Use(s.record(collection))
				r.Post("/", s.create(collection))
				r.Get("/", s.list(collection))
				r.Get("/{id}", s.get(collection))
				r.Delete("/{id}", s.delete(collection))
			})
		}
	})

	return router
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	//nolint:errchkjson
	_ = json.NewEncoder(w).Encode(body)
}

func writeFault(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    status,
			"message": message,
		},
	})
}

func (s *Server) createToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Subject-Token", Token)

	writeJSON(w, http.StatusCreated, map[string]any{
		"token": map[string]any{
			"expires_at": "2099-01-01T00:00:00.000000Z",
			"project": map[string]any{
				"id":   s.projectID,
				"name": "admin",
			},
			"user": map[string]any{
				"id":   uuid.NewString(),
				"name": "admin",
			},
			"catalog": []any{
				map[string]any{
					"type": "sharev2",
					"name": "manilav2",
					"endpoints": []any{
						map[string]any{
							"id":        uuid.NewString(),
							"interface": "public",
							"region":    Region,
							"region_id": Region,
							"url":       s.Endpoint(),
						},
					},
				},
			},
		},
	})
}

// record logs the request and applies any injected fault.
func (s *Server) record(collection Collection) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.lock.Lock()

			s.requests = append(s.requests, Request{
				Method:       r.Method,
				Path:         r.URL.Path,
				Microversion: r.Header.Get(MicroversionHeader),
			})

			index := slices.IndexFunc(s.faults, func(f fault) bool {
				return f.method == r.Method && f.collection == collection
			})

			var status int

			if index >= 0 {
				status = s.faults[index].status
			}

			s.lock.Unlock()

			if status != 0 {
				writeFault(w, status, "injected fault")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) create(collection Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body map[string]map[string]any

		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeFault(w, http.StatusBadRequest, err.Error())
			return
		}

		resource, ok := body[collection.envelope()]
		if !ok {
			writeFault(w, http.StatusBadRequest, fmt.Sprintf("missing %s", collection.envelope()))
			return
		}

		resource["id"] = uuid.NewString()
		resource["project_id"] = s.projectID

		if collection == Shares {
			resource["status"] = statusCreating
		}

		s.lock.Lock()
		s.resources[collection][resource["id"].(string)] = resource
		s.lock.Unlock()

		writeJSON(w, http.StatusOK, map[string]any{
			collection.envelope(): resource,
		})
	}
}

func (s *Server) list(collection Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		defer s.lock.Unlock()

		items := make([]any, 0, len(s.resources[collection]))

		for _, resource := range s.resources[collection] {
			items = append(items, resource)
		}

		key := string(collection)
		if collection == ShareTypes {
			key = "share_types"
		}

		writeJSON(w, http.StatusOK, map[string]any{
			key: items,
		})
	}
}

// get returns the resource, advancing shares through their lifecycle.
func (s *Server) get(collection Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		s.lock.Lock()
		defer s.lock.Unlock()

		resource, ok := s.resources[collection][id]
		if !ok {
			writeFault(w, http.StatusNotFound, fmt.Sprintf("%s %s not found", collection.envelope(), id))
			return
		}

		body := map[string]any{
			collection.envelope(): resource,
		}

		if collection == Shares {
			switch resource["status"] {
			case statusCreating:
				resource["status"] = s.shareStatus
			case statusDeleting:
				delete(s.resources[collection], id)
			}
		}

		writeJSON(w, http.StatusOK, body)
	}
}

// delete removes the resource, shares linger for one poll while deleting.
func (s *Server) delete(collection Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		s.lock.Lock()
		defer s.lock.Unlock()

		resource, ok := s.resources[collection][id]
		if !ok {
			writeFault(w, http.StatusNotFound, fmt.Sprintf("%s %s not found", collection.envelope(), id))
			return
		}

		if collection == Shares {
			resource["status"] = statusDeleting
		} else {
			delete(s.resources[collection], id)
		}

		w.WriteHeader(http.StatusAccepted)
	}
}
