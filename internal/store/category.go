// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"time"

	"contenthub/internal/docstore"
	"contenthub/internal/models"
)

// CategoryStore manages categories in the document store.
type CategoryStore struct {
	gw docstore.Gateway
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(gw docstore.Gateway) *CategoryStore {
	return &CategoryStore{gw: gw}
}

// FindByName retrieves a category by exact, case-sensitive name. Returns nil
// if not found.
func (s *CategoryStore) FindByName(ctx context.Context, name string) (*models.Category, error) {
	doc, err := s.gw.FindOne(ctx, docstore.CollectionCategories, docstore.Filter{"name": name})
	if err != nil {
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return decode[models.Category](docstore.CollectionCategories, doc)
}

// List returns all categories in store order.
func (s *CategoryStore) List(ctx context.Context) ([]models.Category, error) {
	docs, err := s.gw.Find(ctx, docstore.CollectionCategories, nil)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return decodeAll[models.Category](docstore.CollectionCategories, docs)
}

// Create inserts c and sets its ID. A zero CreatedAt is set to now.
func (s *CategoryStore) Create(ctx context.Context, c *models.Category) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.ID = ""
	doc, err := encode(docstore.CollectionCategories, c)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	id, err := s.gw.InsertOne(ctx, docstore.CollectionCategories, doc)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	c.ID = id
	return nil
}
