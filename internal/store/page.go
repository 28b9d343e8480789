// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"

	"contenthub/internal/docstore"
	"contenthub/internal/models"
)

// PageStore manages page settings documents.
type PageStore struct {
	gw docstore.Gateway
}

// NewPageStore returns a new PageStore.
func NewPageStore(gw docstore.Gateway) *PageStore {
	return &PageStore{gw: gw}
}

// FindByName retrieves the settings of a named page. Returns nil if not found.
func (s *PageStore) FindByName(ctx context.Context, name string) (*models.Page, error) {
	doc, err := s.gw.FindOne(ctx, docstore.CollectionPages, docstore.Filter{"page_name": name})
	if err != nil {
		return nil, fmt.Errorf("find page: %w", err)
	}
	return decode[models.Page](docstore.CollectionPages, doc)
}

// EnsureDefault inserts the default home page settings unless a home page
// already exists. It reports whether it inserted anything.
func (s *PageStore) EnsureDefault(ctx context.Context) (bool, error) {
	existing, err := s.FindByName(ctx, models.PageHome)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	doc, err := encode(docstore.CollectionPages, models.DefaultHomePage())
	if err != nil {
		return false, fmt.Errorf("create home page: %w", err)
	}
	if _, err := s.gw.InsertOne(ctx, docstore.CollectionPages, doc); err != nil {
		return false, fmt.Errorf("create home page: %w", err)
	}
	return true, nil
}
