// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the documents ContentHub keeps in its store and
// the small amount of behavior that belongs to them.
package models

import "time"

// User is a site account. Admins and subscribers see premium categories;
// everyone else sees only free ones.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password" json:"-"` // Never serialize the hash
	IsAdmin      bool      `bson:"is_admin" json:"is_admin"`
	IsSubscribed bool      `bson:"is_subscribed" json:"is_subscribed"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// CanAccess reports whether u may read content in c.
func (u *User) CanAccess(c *Category) bool {
	return c.IsFree || u.IsSubscribed || u.IsAdmin
}
