// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// MediaType says what a content item's MediaURL points at.
type MediaType string

const (
	MediaText  MediaType = "text"
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Valid reports whether m is one of the known media types.
func (m MediaType) Valid() bool {
	switch m {
	case MediaText, MediaImage, MediaVideo:
		return true
	}
	return false
}

// Content is a single Markdown document owned by a category. CategoryID is
// the string form of the owning category's id; FolderID is stored as null
// when the item sits at the top level.
type Content struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	CategoryID string    `bson:"category_id" json:"category_id"`
	FolderID   *string   `bson:"folder_id" json:"folder_id"`
	Title      string    `bson:"title" json:"title"`
	Text       string    `bson:"text" json:"text"`
	MediaURL   string    `bson:"media_url" json:"media_url"`
	MediaType  MediaType `bson:"media_type" json:"media_type"`
	Caption    string    `bson:"caption" json:"caption"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
