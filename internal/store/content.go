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

// ContentStore manages content items in the document store.
type ContentStore struct {
	gw docstore.Gateway
}

// NewContentStore returns a new ContentStore.
func NewContentStore(gw docstore.Gateway) *ContentStore {
	return &ContentStore{gw: gw}
}

// FindByCategoryAndTitle retrieves the content item titled title under the
// given category. Returns nil if not found.
func (s *ContentStore) FindByCategoryAndTitle(ctx context.Context, categoryID, title string) (*models.Content, error) {
	doc, err := s.gw.FindOne(ctx, docstore.CollectionContent, docstore.Filter{
		"category_id": categoryID,
		"title":       title,
	})
	if err != nil {
		return nil, fmt.Errorf("find content by title: %w", err)
	}
	return decode[models.Content](docstore.CollectionContent, doc)
}

// Create inserts c and sets its ID. An empty media type is stored as text
// and a zero CreatedAt is set to now.
func (s *ContentStore) Create(ctx context.Context, c *models.Content) error {
	if c.MediaType == "" {
		c.MediaType = models.MediaText
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.ID = ""
	doc, err := encode(docstore.CollectionContent, c)
	if err != nil {
		return fmt.Errorf("create content: %w", err)
	}
	id, err := s.gw.InsertOne(ctx, docstore.CollectionContent, doc)
	if err != nil {
		return fmt.Errorf("create content: %w", err)
	}
	c.ID = id
	return nil
}
