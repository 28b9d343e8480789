// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package seed ensures that a named category and its content items exist
// exactly once in the document store. Runs are additive: existing documents
// are reused, never modified or deleted.
package seed

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"contenthub/internal/docstore"
	"contenthub/internal/metrics"
	"contenthub/internal/models"
	"contenthub/internal/store"
)

// DefaultLockTTL bounds how long a crashed run can hold the seed lock.
const DefaultLockTTL = 2 * time.Minute

// Seeder runs idempotent seed operations against a gateway.
type Seeder struct {
	categories *store.CategoryStore
	content    *store.ContentStore
	locker     Locker
	lockTTL    time.Duration
	log        *zap.Logger
	now        func() time.Time

	// Lookup-then-insert steps for the same key run one caller at a time
	// within this process. Each caller does its own lookup under its own ctx.
	keys keyLocks
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithLocker serializes runs for the same category name across processes.
func WithLocker(l Locker, ttl time.Duration) Option {
	return func(s *Seeder) {
		s.locker = l
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

// WithLogger sets the logger. The default is zap.L().
func WithLogger(log *zap.Logger) Option {
	return func(s *Seeder) { s.log = log }
}

// WithClock sets the clock used for created_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

// New creates a Seeder over gw.
func New(gw docstore.Gateway, opts ...Option) *Seeder {
	s := &Seeder{
		categories: store.NewCategoryStore(gw),
		content:    store.NewContentStore(gw),
		lockTTL:    DefaultLockTTL,
		log:        zap.L(),
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seed ensures cat exists, then ensures each item exists under it, in input
// order. Input is validated before any store call.
//
// On a store failure Seed returns a populated Result together with a *Error:
// the failed item is marked ItemFailed and the items after it
// ItemNotAttempted. Documents created before the failure are kept.
func (s *Seeder) Seed(ctx context.Context, cat CategorySpec, items []ContentSpec) (*Result, error) {
	if err := Validate(cat, items); err != nil {
		return nil, err
	}

	if s.locker != nil {
		unlock, err := s.locker.TryLock(ctx, cat.Name, s.lockTTL)
		if err != nil {
			return nil, err
		}
		defer func() {
			// Release even when the request context is already done.
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				s.log.Warn("seed lock release failed", zap.String("category", cat.Name), zap.Error(err))
			}
		}()
	}

	res := &Result{
		Category: CategoryOutcome{Name: cat.Name},
		Content:  make([]ItemOutcome, len(items)),
	}
	for i, item := range items {
		res.Content[i] = ItemOutcome{Title: item.Title, State: ItemNotAttempted}
	}

	id, created, err := s.ensureCategory(ctx, cat)
	if err != nil {
		res.Status = StatusCategoryFailed
		return res, err
	}
	res.Category.ID = id
	res.Category.Created = created

	for i, item := range items {
		created, err := s.ensureContent(ctx, id, item)
		if err != nil {
			res.Content[i].State = ItemFailed
			res.Status = StatusContentFailed
			return res, err
		}
		if created {
			res.Content[i].State = ItemCreated
		} else {
			res.Content[i].State = ItemSkipped
		}
	}

	res.settle()
	return res, nil
}

// SeedTopic seeds a bundled topic, then records metrics and logs the outcome.
func (s *Seeder) SeedTopic(ctx context.Context, t *Topic) (*Result, error) {
	start := time.Now()
	res, err := s.Seed(ctx, t.Category, t.Content)

	status := "error"
	switch {
	case res != nil:
		status = string(res.Status)
	case errors.Is(err, ErrSeedInProgress):
		status = "in_progress"
	case errors.Is(err, ErrInvalidSpec):
		status = "invalid"
	}
	metrics.SeedRunsTotal.WithLabelValues(t.Name, status).Inc()

	fields := []zap.Field{
		zap.String("topic", t.Name),
		zap.String("status", status),
		zap.Duration("duration", time.Since(start)),
	}
	if res != nil {
		for state, n := range res.Counts() {
			metrics.SeedItemsTotal.WithLabelValues(string(state)).Add(float64(n))
		}
		fields = append(fields, zap.String("category_id", res.Category.ID), zap.Bool("category_created", res.Category.Created))
	}
	if err != nil {
		s.log.Error("seed run failed", append(fields, zap.Error(err))...)
		return res, err
	}
	s.log.Info("seed run complete", fields...)
	return res, nil
}

func (s *Seeder) ensureCategory(ctx context.Context, cat CategorySpec) (string, bool, error) {
	release, err := s.keys.acquire(ctx, "category\x00"+cat.Name)
	if err != nil {
		return "", false, &Error{Step: StepCategoryLookup, Err: err}
	}
	defer release()

	existing, err := s.categories.FindByName(ctx, cat.Name)
	if err != nil {
		return "", false, &Error{Step: StepCategoryLookup, Err: err}
	}
	if existing != nil {
		return existing.ID, false, nil
	}

	c := &models.Category{
		Name:        cat.Name,
		Description: cat.Description,
		AccentColor: cat.AccentColor,
		IsFree:      cat.IsFree,
		CreatedAt:   s.now(),
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return "", false, &Error{Step: StepCategoryInsert, Err: err}
	}
	s.log.Debug("category created", zap.String("name", c.Name), zap.String("id", c.ID))
	return c.ID, true, nil
}

func (s *Seeder) ensureContent(ctx context.Context, categoryID string, item ContentSpec) (bool, error) {
	release, err := s.keys.acquire(ctx, "content\x00"+categoryID+"\x00"+item.Title)
	if err != nil {
		return false, &Error{Step: StepContentLookup, Title: item.Title, Err: err}
	}
	defer release()

	existing, err := s.content.FindByCategoryAndTitle(ctx, categoryID, item.Title)
	if err != nil {
		return false, &Error{Step: StepContentLookup, Title: item.Title, Err: err}
	}
	if existing != nil {
		return false, nil
	}

	c := &models.Content{
		CategoryID: categoryID,
		Title:      item.Title,
		Text:       item.Body,
		MediaURL:   item.MediaURL,
		MediaType:  item.MediaType,
		Caption:    item.Caption,
		CreatedAt:  s.now(),
	}
	if err := s.content.Create(ctx, c); err != nil {
		return false, &Error{Step: StepContentInsert, Title: item.Title, Err: err}
	}
	s.log.Debug("content created", zap.String("title", c.Title), zap.String("id", c.ID))
	return true, nil
}
