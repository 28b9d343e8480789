// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Category is a named, colored grouping of content with a free or premium
// access tier. Name is the case-sensitive key seeding looks categories up by.
type Category struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	AccentColor string    `bson:"accent_color" json:"accent_color"`
	IsFree      bool      `bson:"is_free" json:"is_free"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// DefaultAccentColor is applied when a category has no color of its own.
const DefaultAccentColor = "#6366f1"

// IsPremium reports whether the category requires a subscription.
func (c *Category) IsPremium() bool {
	return !c.IsFree
}
