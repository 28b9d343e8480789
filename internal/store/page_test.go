// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"

	"contenthub/internal/docstore"
	"contenthub/internal/models"
)

func TestPageStoreEnsureDefault(t *testing.T) {
	gw := testGateway(t)
	s := NewPageStore(gw)
	ctx := context.Background()

	created, err := s.EnsureDefault(ctx)
	if err != nil {
		t.Fatalf("EnsureDefault: %v", err)
	}
	if !created {
		t.Error("expected first EnsureDefault to insert")
	}

	created, err = s.EnsureDefault(ctx)
	if err != nil {
		t.Fatalf("EnsureDefault (second): %v", err)
	}
	if created {
		t.Error("expected second EnsureDefault to be a no-op")
	}
	if n := gw.Len(docstore.CollectionPages); n != 1 {
		t.Errorf("pages: got %d, want 1", n)
	}

	page, err := s.FindByName(ctx, models.PageHome)
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if page == nil {
		t.Fatal("expected home page")
	}
	if page.Title != "Welcome to ContentHub" {
		t.Errorf("title: got %q", page.Title)
	}
}

func TestPageStoreFindByNameMissing(t *testing.T) {
	page, err := NewPageStore(testGateway(t)).FindByName(context.Background(), "about")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if page != nil {
		t.Errorf("expected nil, got %+v", page)
	}
}
