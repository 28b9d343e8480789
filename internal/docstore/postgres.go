// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/bson"
)

// Postgres is a Gateway over a single JSONB table (see the database
// package migrations). Store order is insertion order (the seq column).
//
// Filters use JSONB containment, so a nil filter value matches an explicit
// null but not a missing key.
type Postgres struct {
	db      *sqlx.DB
	timeout time.Duration
}

const selectDocuments = `SELECT id::text AS id, body FROM documents WHERE collection = $1 AND body @> $2::jsonb`

type documentRow struct {
	ID   string `db:"id"`
	Body []byte `db:"body"`
}

// errNoMatch short-circuits a query whose _id filter cannot match.
var errNoMatch = errors.New("no match")

// ConnectPostgres opens a pgx-backed pool and pings it.
func ConnectPostgres(ctx context.Context, dsn string, timeout time.Duration) (*Postgres, error) {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := sqlx.ConnectContext(pingCtx, "pgx", dsn)
	if err != nil {
		return nil, storeErr(OpConnect, "", err)
	}
	return NewPostgres(db, timeout), nil
}

// NewPostgres wraps an existing pool.
func NewPostgres(db *sqlx.DB, timeout time.Duration) *Postgres {
	return &Postgres{db: db, timeout: timeout}
}

// SQL exposes the underlying pool for migrations.
func (p *Postgres) SQL() *sql.DB { return p.db.DB }

// FindOne implements Gateway.
func (p *Postgres) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	query, args, err := buildQuery(collection, filter)
	if errors.Is(err, errNoMatch) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(OpFindOne, collection, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var row documentRow
	err = p.db.GetContext(ctx, &row, query+" ORDER BY seq LIMIT 1", args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(OpFindOne, collection, err)
	}
	doc, err := row.document()
	if err != nil {
		return nil, storeErr(OpDecode, collection, err)
	}
	return doc, nil
}

// InsertOne implements Gateway. Identifiers are random UUIDs.
func (p *Postgres) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	body, err := bson.MarshalExtJSON(withoutID(doc), false, false)
	if err != nil {
		return "", storeErr(OpInsert, collection, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	id := uuid.NewString()
	if _, err := p.db.ExecContext(ctx,
		`INSERT INTO documents (id, collection, body) VALUES ($1, $2, $3::jsonb)`,
		id, collection, string(body),
	); err != nil {
		return "", storeErr(OpInsert, collection, err)
	}
	return id, nil
}

// Find implements Gateway.
func (p *Postgres) Find(ctx context.Context, collection string, filter Filter) ([]Document, error) {
	query, args, err := buildQuery(collection, filter)
	if errors.Is(err, errNoMatch) {
		return []Document{}, nil
	}
	if err != nil {
		return nil, storeErr(OpFind, collection, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var rows []documentRow
	if err := p.db.SelectContext(ctx, &rows, query+" ORDER BY seq", args...); err != nil {
		return nil, storeErr(OpFind, collection, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		doc, err := row.document()
		if err != nil {
			return nil, storeErr(OpDecode, collection, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Close closes the pool.
func (p *Postgres) Close(context.Context) error {
	return p.db.Close()
}

func buildQuery(collection string, filter Filter) (string, []any, error) {
	contains, err := bson.MarshalExtJSON(withoutID(filter), false, false)
	if err != nil {
		return "", nil, fmt.Errorf("encode filter: %w", err)
	}
	query := selectDocuments
	args := []any{collection, string(contains)}

	if v, ok := filter[IDField]; ok {
		s, _ := v.(string)
		id, err := uuid.Parse(s)
		if err != nil {
			return "", nil, errNoMatch
		}
		query += " AND id = $3"
		args = append(args, id.String())
	}
	return query, args, nil
}

func (r documentRow) document() (Document, error) {
	var doc Document
	if err := bson.UnmarshalExtJSON(r.Body, false, &doc); err != nil {
		return nil, err
	}
	doc[IDField] = r.ID
	return doc, nil
}
