// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"contenthub/internal/models"
)

const sidebarKey contextKey = "sidebar"

// SidebarResolver resolves the sidebar for a user id; "" is anonymous.
type SidebarResolver interface {
	ForUser(ctx context.Context, userID string) ([]models.Category, error)
}

type sidebarResult struct {
	categories []models.Category
	err        error
}

// Sidebar resolves the viewer's sidebar categories once per request and
// stores them in the context for downstream handlers. A resolution error is
// logged and stored too; the handler decides how to answer. Must be applied
// after LoadSession.
func Sidebar(resolver SidebarResolver, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var userID string
			if sess := SessionFromCtx(r.Context()); sess != nil {
				userID = sess.UserID
			}

			cats, err := resolver.ForUser(r.Context(), userID)
			if err != nil {
				log.Error("sidebar resolution failed", zap.Error(err), zap.String("user_id", userID))
			}

			ctx := context.WithValue(r.Context(), sidebarKey, sidebarResult{categories: cats, err: err})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SidebarFromCtx returns the categories resolved by Sidebar. Without the
// middleware in the chain it returns an empty list.
func SidebarFromCtx(ctx context.Context) ([]models.Category, error) {
	res, ok := ctx.Value(sidebarKey).(sidebarResult)
	if !ok {
		return []models.Category{}, nil
	}
	return res.categories, res.err
}
