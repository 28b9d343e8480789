// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"contenthub/internal/docstore"
	"contenthub/internal/store"
)

// Default development credentials created by Bootstrap.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
)

// Bootstrap populates the store with initial development data. It creates a
// default admin user if no user exists and the default home page settings if
// they are missing. Safe to call on every start.
func Bootstrap(ctx context.Context, gw docstore.Gateway, log *zap.Logger) error {
	users := store.NewUserStore(gw)
	exists, err := users.Any(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	if exists {
		log.Debug("users present, skipping default admin")
	} else {
		if _, err := users.Create(ctx, DefaultAdminUsername, DefaultAdminPassword, true, false); err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
		log.Info("created default admin user", zap.String("username", DefaultAdminUsername))
	}

	created, err := store.NewPageStore(gw).EnsureDefault(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap home page: %w", err)
	}
	if created {
		log.Info("created default home page settings")
	}
	return nil
}
