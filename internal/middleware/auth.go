// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"contenthub/internal/session"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// SessionKey is the context key for the session data.
	SessionKey contextKey = "session"
)

// AuthorizationError is a rejected request. Status is the HTTP status the
// middleware answers with.
type AuthorizationError struct {
	Status  int
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

var (
	// ErrUnauthenticated means no valid session was presented.
	ErrUnauthenticated = &AuthorizationError{Status: http.StatusUnauthorized, Message: "Authentication required"}

	// ErrForbidden means the session belongs to a non-admin user.
	ErrForbidden = &AuthorizationError{Status: http.StatusForbidden, Message: "Admin access required"}
)

// SessionGetter loads the session attached to a request, or nil.
type SessionGetter interface {
	Get(ctx context.Context, r *http.Request) (*session.Data, error)
}

// LoadSession retrieves the session from Valkey and stores it in the
// request context. Downstream handlers can access it via SessionFromCtx().
// This middleware does NOT enforce authentication, it just loads the
// session if one exists.
func LoadSession(store SessionGetter, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r.Context(), r)
			if err != nil {
				// Log but don't block; treat as unauthenticated.
				log.Warn("session load failed", zap.Error(err), zap.String("path", r.URL.Path))
				next.ServeHTTP(w, r)
				return
			}

			if data != nil {
				ctx := context.WithValue(r.Context(), SessionKey, data)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Authorize checks the session against the admin requirement without
// touching the response. It returns nil, ErrUnauthenticated or ErrForbidden.
func Authorize(sess *session.Data, adminOnly bool) error {
	if sess == nil {
		return ErrUnauthenticated
	}
	if adminOnly && !sess.IsAdmin {
		return ErrForbidden
	}
	return nil
}

func deny(w http.ResponseWriter, err error) {
	ae := err.(*AuthorizationError)
	writeError(w, ae.Status, ae.Message)
}

// RequireAuth answers 401 for requests without a session.
// Must be applied after LoadSession in the middleware chain.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := Authorize(SessionFromCtx(r.Context()), false); err != nil {
			deny(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin answers 401 without a session and 403 if the authenticated
// user is not an admin. Must be applied after LoadSession.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := Authorize(SessionFromCtx(r.Context()), true); err != nil {
			deny(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// SessionFromCtx extracts the session data from the request context.
// Returns nil if no session is loaded (user is not authenticated).
func SessionFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(SessionKey).(*session.Data)
	return data
}
