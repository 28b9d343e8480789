// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package sidebar computes the category list shown in the site sidebar: the
// categories a viewer may open, premium first, then by name. The list is
// rebuilt on every call so category edits show up on the next request.
package sidebar

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"contenthub/internal/docstore"
	"contenthub/internal/models"
	"contenthub/internal/store"
)

// Resolver builds sidebar category lists.
type Resolver struct {
	categories *store.CategoryStore
	users      *store.UserStore
}

// NewResolver creates a Resolver over gw.
func NewResolver(gw docstore.Gateway) *Resolver {
	return &Resolver{
		categories: store.NewCategoryStore(gw),
		users:      store.NewUserStore(gw),
	}
}

// Resolve returns the categories viewer may access in sidebar order. A nil
// viewer is an anonymous visitor and gets an empty list.
func (r *Resolver) Resolve(ctx context.Context, viewer *models.User) ([]models.Category, error) {
	if viewer == nil {
		return []models.Category{}, nil
	}

	all, err := r.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve sidebar: %w", err)
	}

	visible := make([]models.Category, 0, len(all))
	for i := range all {
		if viewer.CanAccess(&all[i]) {
			visible = append(visible, all[i])
		}
	}
	Sort(visible)
	return visible, nil
}

// ForUser re-reads the user's flags from the store, then resolves. An empty
// or unknown userID resolves as anonymous.
func (r *Resolver) ForUser(ctx context.Context, userID string) ([]models.Category, error) {
	if userID == "" {
		return r.Resolve(ctx, nil)
	}
	u, err := r.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve sidebar: %w", err)
	}
	return r.Resolve(ctx, u)
}

// Sort orders categories premium first, then by case-insensitive name.
// Equal keys keep their store order.
func Sort(categories []models.Category) {
	slices.SortStableFunc(categories, func(a, b models.Category) int {
		if a.IsPremium() != b.IsPremium() {
			if a.IsPremium() {
				return -1
			}
			return 1
		}
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}
