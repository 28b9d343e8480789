// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"contenthub/internal/docstore"
	"contenthub/internal/models"
)

// UserStore handles all user-related store operations.
type UserStore struct {
	gw docstore.Gateway
}

// NewUserStore creates a new UserStore over the given gateway.
func NewUserStore(gw docstore.Gateway) *UserStore {
	return &UserStore{gw: gw}
}

// FindByUsername retrieves a user by username. Returns nil if not found.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	doc, err := s.gw.FindOne(ctx, docstore.CollectionUsers, docstore.Filter{"username": username})
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return decode[models.User](docstore.CollectionUsers, doc)
}

// FindByID retrieves a user by ID. Returns nil if not found.
func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	doc, err := s.gw.FindOne(ctx, docstore.CollectionUsers, docstore.Filter{docstore.IDField: id})
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return decode[models.User](docstore.CollectionUsers, doc)
}

// Any reports whether at least one user exists.
func (s *UserStore) Any(ctx context.Context) (bool, error) {
	doc, err := s.gw.FindOne(ctx, docstore.CollectionUsers, docstore.Filter{})
	if err != nil {
		return false, fmt.Errorf("check users: %w", err)
	}
	return doc != nil, nil
}

// Create inserts a new user with a bcrypt-hashed password.
func (s *UserStore) Create(ctx context.Context, username, password string, isAdmin, isSubscribed bool) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		IsSubscribed: isSubscribed,
		CreatedAt:    time.Now().UTC(),
	}
	doc, err := encode(docstore.CollectionUsers, u)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	id, err := s.gw.InsertOne(ctx, docstore.CollectionUsers, doc)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	u.ID = id
	return u, nil
}

// CheckPassword verifies a plaintext password against the user's stored hash.
func (s *UserStore) CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
