// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides typed access to the ContentHub collections. Each
// store wraps a docstore.Gateway and converts between documents and models.
package store

import (
	"contenthub/internal/docstore"
)

// decode converts doc into a new T. A nil doc yields a nil result.
func decode[T any](collection string, doc docstore.Document) (*T, error) {
	if doc == nil {
		return nil, nil
	}
	v := new(T)
	if err := docstore.Decode(doc, v); err != nil {
		return nil, &docstore.StoreError{Op: docstore.OpDecode, Collection: collection, Err: err}
	}
	return v, nil
}

// decodeAll converts every document in docs, preserving order.
func decodeAll[T any](collection string, docs []docstore.Document) ([]T, error) {
	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		v, err := decode[T](collection, doc)
		if err != nil {
			return nil, err
		}
		items = append(items, *v)
	}
	return items, nil
}

// encode converts a model into a document ready for insertion.
func encode(collection string, v any) (docstore.Document, error) {
	doc, err := docstore.Encode(v)
	if err != nil {
		return nil, &docstore.StoreError{Op: docstore.OpInsert, Collection: collection, Err: err}
	}
	return doc, nil
}
