// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"contenthub/internal/middleware"
	"contenthub/internal/models"
)

type sidebarCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AccentColor string `json:"accent_color"`
	IsFree      bool   `json:"is_free"`
}

// Sidebar returns the categories resolved by middleware.Sidebar for the
// current viewer. Anonymous visitors get an empty list.
func Sidebar(w http.ResponseWriter, r *http.Request) {
	cats, err := middleware.SidebarFromCtx(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not load categories.")
		return
	}

	out := make([]sidebarCategory, 0, len(cats))
	for _, c := range cats {
		out = append(out, toSidebarCategory(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

func toSidebarCategory(c models.Category) sidebarCategory {
	accent := c.AccentColor
	if accent == "" {
		accent = models.DefaultAccentColor
	}
	return sidebarCategory{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		AccentColor: accent,
		IsFree:      c.IsFree,
	}
}
