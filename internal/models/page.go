// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// PageHome is the page name of the landing page.
const PageHome = "home"

// Page holds the editable presentation settings of a named page.
type Page struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	PageName     string `bson:"page_name" json:"page_name"`
	AccentColor  string `bson:"accent_color" json:"accent_color"`
	Title        string `bson:"title" json:"title"`
	Description  string `bson:"description" json:"description"`
	PreviewImage string `bson:"preview_image" json:"preview_image"`
}

// DefaultHomePage returns the settings a fresh install starts with.
func DefaultHomePage() *Page {
	return &Page{
		PageName:    PageHome,
		AccentColor: DefaultAccentColor,
		Title:       "Welcome to ContentHub",
		Description: "Subscribe to access premium content",
	}
}
