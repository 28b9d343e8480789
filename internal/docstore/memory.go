// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package docstore

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Gateway. Documents round-trip through BSON on the
// way in and out, so callers never share maps with the store and values have
// the same types a real backend would return.
type Memory struct {
	mu          sync.Mutex
	collections map[string][]Document
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]Document)}
}

// FindOne implements Gateway.
func (m *Memory) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr(OpFindOne, collection, err)
	}
	want, err := cloneDoc(filter)
	if err != nil {
		return nil, storeErr(OpFindOne, collection, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if matches(doc, want) {
			out, err := cloneDoc(doc)
			if err != nil {
				return nil, storeErr(OpFindOne, collection, err)
			}
			return out, nil
		}
	}
	return nil, nil
}

// InsertOne implements Gateway. Identifiers are ObjectID hex strings, the
// same shape the Mongo backend hands back.
func (m *Memory) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", storeErr(OpInsert, collection, err)
	}
	stored, err := cloneDoc(withoutID(doc))
	if err != nil {
		return "", storeErr(OpInsert, collection, err)
	}
	id := primitive.NewObjectID().Hex()
	stored[IDField] = id

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], stored)
	m.mu.Unlock()

	return id, nil
}

// Find implements Gateway.
func (m *Memory) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeErr(OpFind, collection, err)
	}
	want, err := cloneDoc(filter)
	if err != nil {
		return nil, storeErr(OpFind, collection, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Document, 0)
	for _, doc := range m.collections[collection] {
		if !matches(doc, want) {
			continue
		}
		c, err := cloneDoc(doc)
		if err != nil {
			return nil, storeErr(OpFind, collection, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// Close implements Conn.
func (m *Memory) Close(context.Context) error { return nil }

// Len returns the number of documents in a collection.
func (m *Memory) Len(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[collection])
}

func matches(doc Document, filter Filter) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if want == nil {
			if ok && got != nil {
				return false
			}
			continue
		}
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func cloneDoc(doc Document) (Document, error) {
	if doc == nil {
		return Document{}, nil
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
