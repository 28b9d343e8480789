// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides the shared gateway helpers for all store tests.
// Stores run against the in-memory backend; the backend-specific behavior
// is covered in internal/docstore.
package store

import (
	"context"
	"errors"
	"testing"

	"contenthub/internal/docstore"
)

// testGateway returns an empty in-memory gateway.
func testGateway(t *testing.T) *docstore.Memory {
	t.Helper()
	return docstore.NewMemory()
}

var errBroken = errors.New("connection refused")

// brokenGateway fails every call with a StoreError.
type brokenGateway struct{}

func (brokenGateway) FindOne(_ context.Context, collection string, _ docstore.Filter) (docstore.Document, error) {
	return nil, &docstore.StoreError{Op: docstore.OpFindOne, Collection: collection, Err: errBroken}
}

func (brokenGateway) InsertOne(_ context.Context, collection string, _ docstore.Document) (string, error) {
	return "", &docstore.StoreError{Op: docstore.OpInsert, Collection: collection, Err: errBroken}
}

func (brokenGateway) Find(_ context.Context, collection string, _ docstore.Filter) ([]docstore.Document, error) {
	return nil, &docstore.StoreError{Op: docstore.OpFind, Collection: collection, Err: errBroken}
}

// requireStoreError fails the test unless err wraps a StoreError for op.
func requireStoreError(t *testing.T, err error, op string) {
	t.Helper()
	var se *docstore.StoreError
	if !errors.As(err, &se) {
		t.Fatalf("expected *docstore.StoreError, got %T: %v", err, err)
	}
	if se.Op != op {
		t.Errorf("op: got %q, want %q", se.Op, op)
	}
}
