// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package docstore is the gateway to the collection-oriented document store
// behind ContentHub. Callers see three operations (FindOne, InsertOne, Find)
// over named collections; MongoDB, PostgreSQL (JSONB) and in-memory backends
// implement them. BSON is the document codec for every backend.
package docstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names shared by every backend.
const (
	CollectionCategories = "categories"
	CollectionContent    = "content"
	CollectionPages      = "pages"
	CollectionUsers      = "users"
)

// IDField is the document identifier key. Gateways always return it as a
// string, whatever the backend's native id type is.
const IDField = "_id"

// Document is a single stored document.
type Document = bson.M

// Filter selects documents by top-level field equality. A nil value matches
// a null or missing field.
type Filter = bson.M

// Gateway is the contract every store backend satisfies. Each call is atomic
// on its own; a lookup followed by an insert is not.
type Gateway interface {
	// FindOne returns the first matching document in store order, or nil
	// when nothing matches.
	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)

	// InsertOne stores doc and returns its generated identifier.
	InsertOne(ctx context.Context, collection string, doc Document) (string, error)

	// Find returns every matching document in store order.
	Find(ctx context.Context, collection string, filter Filter) ([]Document, error)
}

// Conn is a Gateway that owns a connection and must be closed at shutdown.
type Conn interface {
	Gateway
	Close(ctx context.Context) error
}

// Encode converts a bson-tagged struct into a Document.
func Encode(v any) (Document, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var doc Document
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	// The store assigns ids; an empty one must not reach it.
	if id, ok := doc[IDField].(string); ok && id == "" {
		delete(doc, IDField)
	}
	return doc, nil
}

// Decode fills the bson-tagged struct v from doc.
func Decode(doc Document, v any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	if err := bson.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}

// withoutID returns a shallow copy of doc minus its identifier.
func withoutID(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		if k == IDField {
			continue
		}
		out[k] = v
	}
	return out
}
