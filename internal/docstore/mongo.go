// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the MongoDB Gateway. One client is shared for the process
// lifetime.
type Mongo struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// ConnectMongo dials uri, verifies the connection with a ping and selects
// the named database. Every later call is bounded by timeout.
func ConnectMongo(ctx context.Context, uri, database string, timeout time.Duration) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, storeErr(OpConnect, "", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, storeErr(OpConnect, "", err)
	}

	return &Mongo{
		client:  client,
		db:      client.Database(database),
		timeout: timeout,
	}, nil
}

// EnsureIndexes creates the lookup indexes the seeder and login rely on.
// They are not unique: admin-created categories may share a name.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	specs := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{CollectionCategories, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}}},
		{CollectionContent, mongo.IndexModel{Keys: bson.D{{Key: "category_id", Value: 1}, {Key: "title", Value: 1}}}},
		{CollectionUsers, mongo.IndexModel{Keys: bson.D{{Key: "username", Value: 1}}}},
		{CollectionPages, mongo.IndexModel{Keys: bson.D{{Key: "page_name", Value: 1}}}},
	}
	for _, s := range specs {
		if _, err := m.db.Collection(s.collection).Indexes().CreateOne(ctx, s.model); err != nil {
			return storeErr("create_index", s.collection, err)
		}
	}
	return nil
}

// FindOne implements Gateway.
func (m *Mongo) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var doc Document
	err := m.db.Collection(collection).FindOne(ctx, mongoFilter(filter)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(OpFindOne, collection, err)
	}
	return normalizeID(doc), nil
}

// InsertOne implements Gateway.
func (m *Mongo) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	res, err := m.db.Collection(collection).InsertOne(ctx, withoutID(doc))
	if err != nil {
		return "", storeErr(OpInsert, collection, err)
	}
	return idString(res.InsertedID), nil
}

// Find implements Gateway.
func (m *Mongo) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	cur, err := m.db.Collection(collection).Find(ctx, mongoFilter(filter))
	if err != nil {
		return nil, storeErr(OpFind, collection, err)
	}
	docs := make([]Document, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr(OpFind, collection, err)
	}
	for i := range docs {
		docs[i] = normalizeID(docs[i])
	}
	return docs, nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	if err := m.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	return nil
}

// mongoFilter converts a hex string _id into the ObjectID Mongo stores.
func mongoFilter(filter Filter) bson.M {
	out := bson.M{}
	for k, v := range filter {
		out[k] = v
	}
	if s, ok := out[IDField].(string); ok {
		if oid, err := primitive.ObjectIDFromHex(s); err == nil {
			out[IDField] = oid
		}
	}
	return out
}

func normalizeID(doc Document) Document {
	if v, ok := doc[IDField]; ok {
		doc[IDField] = idString(v)
	}
	return doc
}

func idString(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}
