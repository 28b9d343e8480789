// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seed

import (
	"context"
	"errors"
	"sync"

	"contenthub/internal/docstore"
)

var errInjected = errors.New("injected store failure")

// recordingGateway wraps a gateway, counts calls per operation and can fail
// the nth call of an operation on a collection.
type recordingGateway struct {
	inner docstore.Gateway

	mu    sync.Mutex
	calls map[string]int

	failOp         string
	failCollection string
	failOnCall     int // 1-based; 0 fails every matching call
}

func newRecordingGateway(inner docstore.Gateway) *recordingGateway {
	return &recordingGateway{inner: inner, calls: map[string]int{}}
}

// failAt makes the nth call of op on collection fail.
func (g *recordingGateway) failAt(op, collection string, n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.failOp, g.failCollection, g.failOnCall = op, collection, n
}

func (g *recordingGateway) record(op, collection string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	key := op + ":" + collection
	g.calls[key]++
	g.calls[op]++
	if op == g.failOp && collection == g.failCollection &&
		(g.failOnCall == 0 || g.calls[key] == g.failOnCall) {
		return &docstore.StoreError{Op: op, Collection: collection, Err: errInjected}
	}
	return nil
}

// total returns the number of calls of op; an empty op counts everything.
func (g *recordingGateway) total(op string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if op != "" {
		return g.calls[op]
	}
	return g.calls[docstore.OpFindOne] + g.calls[docstore.OpInsert] + g.calls[docstore.OpFind]
}

func (g *recordingGateway) FindOne(ctx context.Context, collection string, filter docstore.Filter) (docstore.Document, error) {
	if err := g.record(docstore.OpFindOne, collection); err != nil {
		return nil, err
	}
	return g.inner.FindOne(ctx, collection, filter)
}

func (g *recordingGateway) InsertOne(ctx context.Context, collection string, doc docstore.Document) (string, error) {
	if err := g.record(docstore.OpInsert, collection); err != nil {
		return "", err
	}
	return g.inner.InsertOne(ctx, collection, doc)
}

func (g *recordingGateway) Find(ctx context.Context, collection string, filter docstore.Filter) ([]docstore.Document, error) {
	if err := g.record(docstore.OpFind, collection); err != nil {
		return nil, err
	}
	return g.inner.Find(ctx, collection, filter)
}

// blockingGateway holds the first FindOne on collection until release is
// closed. entered is closed once that call is waiting.
type blockingGateway struct {
	docstore.Gateway
	collection string

	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newBlockingGateway(inner docstore.Gateway, collection string) *blockingGateway {
	return &blockingGateway{
		Gateway:    inner,
		collection: collection,
		entered:    make(chan struct{}),
		release:    make(chan struct{}),
	}
}

func (g *blockingGateway) FindOne(ctx context.Context, collection string, filter docstore.Filter) (docstore.Document, error) {
	first := false
	if collection == g.collection {
		g.once.Do(func() { first = true })
	}
	if first {
		close(g.entered)
		<-g.release
	}
	return g.Gateway.FindOne(ctx, collection, filter)
}
