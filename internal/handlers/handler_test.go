// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Everything runs against the in-memory gateway; no services are needed.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"contenthub/internal/docstore"
	"contenthub/internal/middleware"
	"contenthub/internal/seed"
	"contenthub/internal/session"
)

var errInjected = errors.New("connection reset by peer")

// countingGateway counts calls per operation and can fail the nth insert
// into a collection.
type countingGateway struct {
	inner docstore.Gateway

	mu             sync.Mutex
	finds, inserts int
	insertsInto    map[string]int
	failCollection string
	failOnInsert   int
}

func newCountingGateway() *countingGateway {
	return &countingGateway{inner: docstore.NewMemory(), insertsInto: map[string]int{}}
}

func (g *countingGateway) FindOne(ctx context.Context, collection string, filter docstore.Filter) (docstore.Document, error) {
	g.mu.Lock()
	g.finds++
	g.mu.Unlock()
	return g.inner.FindOne(ctx, collection, filter)
}

func (g *countingGateway) Find(ctx context.Context, collection string, filter docstore.Filter) ([]docstore.Document, error) {
	g.mu.Lock()
	g.finds++
	g.mu.Unlock()
	return g.inner.Find(ctx, collection, filter)
}

func (g *countingGateway) InsertOne(ctx context.Context, collection string, doc docstore.Document) (string, error) {
	g.mu.Lock()
	g.inserts++
	g.insertsInto[collection]++
	fail := collection == g.failCollection && g.insertsInto[collection] == g.failOnInsert
	g.mu.Unlock()
	if fail {
		return "", &docstore.StoreError{Op: docstore.OpInsert, Collection: collection, Err: errInjected}
	}
	return g.inner.InsertOne(ctx, collection, doc)
}

func (g *countingGateway) calls() (finds, inserts int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.finds, g.inserts
}

// fakeSessions records the sessions created and destroyed.
type fakeSessions struct {
	created   []*session.Data
	destroyed int
	err       error
}

func (f *fakeSessions) Create(_ context.Context, w http.ResponseWriter, data *session.Data) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, data)
	http.SetCookie(w, &http.Cookie{Name: session.CookieName, Value: "test-session"})
	return "test-session", nil
}

func (f *fakeSessions) Destroy(context.Context, http.ResponseWriter, *http.Request) error {
	f.destroyed++
	return nil
}

// withSession injects data the way LoadSession would.
func withSession(data *session.Data) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if data != nil {
				r = r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, data))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// seedRouter mounts the seed trigger behind RequireAdmin, as the server does.
func seedRouter(t *testing.T, gw docstore.Gateway, sess *session.Data) http.Handler {
	t.Helper()
	catalog, err := seed.Bundled()
	if err != nil {
		t.Fatalf("Bundled: %v", err)
	}
	h := NewSeed(catalog, seed.New(gw, seed.WithLogger(zap.NewNop())), zap.NewNop())
	return chiRouterFor(h, sess)
}

func chiRouterFor(h *Seed, sess *session.Data) http.Handler {
	r := chi.NewRouter()
	r.Use(withSession(sess))
	r.With(middleware.RequireAdmin).Post("/api/admin/seed-{topic}", h.Trigger)
	return r
}

func postSeed(t *testing.T, h http.Handler, topic string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/seed-"+topic, strings.NewReader(`{"name":"ignored"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return v
}

func adminSession() *session.Data {
	return &session.Data{UserID: "u-admin", Username: "admin", IsAdmin: true}
}
