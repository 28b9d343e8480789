// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"contenthub/internal/middleware"
	"contenthub/internal/seed"
)

// Seed is the admin trigger for bundled seed topics.
type Seed struct {
	catalog *seed.Catalog
	seeder  *seed.Seeder
	log     *zap.Logger
}

// NewSeed creates the seed handler over the bundled catalog.
func NewSeed(catalog *seed.Catalog, seeder *seed.Seeder, log *zap.Logger) *Seed {
	return &Seed{catalog: catalog, seeder: seeder, log: log}
}

type seedCategory struct {
	Created bool   `json:"created"`
	ID      string `json:"id"`
	Name    string `json:"name"`
}

type seedItem struct {
	Title   string `json:"title"`
	Created bool   `json:"created"`
	State   string `json:"state"`
}

type seedResponse struct {
	Status   string       `json:"status"`
	Outcome  string       `json:"outcome"`
	Category seedCategory `json:"category"`
	Content  []seedItem   `json:"content"`
	Message  string       `json:"message,omitempty"`
}

// Trigger seeds the topic named in the URL. The request body is ignored.
// Authorization is enforced by middleware before this runs.
func (h *Seed) Trigger(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "topic")
	topic, ok := h.catalog.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Unknown seed topic %q.", name))
		return
	}

	log := h.log.With(zap.String("topic", topic.Name), zap.String("request_id", middleware.RequestIDFromCtx(r.Context())))
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		log = log.With(zap.String("admin", sess.Username))
	}

	res, err := h.seeder.SeedTopic(r.Context(), topic)

	var seedErr *seed.Error
	switch {
	case err == nil:
		body := toSeedResponse(res)
		body.Status = "success"
		if res.Status == seed.StatusAlreadySeeded {
			body.Message = "Everything was already seeded; nothing was written."
		}
		writeJSON(w, http.StatusOK, body)

	case errors.Is(err, seed.ErrSeedInProgress):
		writeError(w, http.StatusConflict, "A seed run for this topic is already in progress.")

	case errors.As(err, &seedErr) && res != nil:
		body := toSeedResponse(res)
		body.Status = "error"
		body.Message = seedErr.Summary()
		writeJSON(w, http.StatusInternalServerError, body)

	default:
		log.Error("seed trigger failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Seeding failed.")
	}
}

func toSeedResponse(res *seed.Result) seedResponse {
	items := make([]seedItem, 0, len(res.Content))
	for _, item := range res.Content {
		items = append(items, seedItem{
			Title:   item.Title,
			Created: item.Created(),
			State:   string(item.State),
		})
	}
	return seedResponse{
		Outcome: string(res.Status),
		Category: seedCategory{
			Created: res.Category.Created,
			ID:      res.Category.ID,
			Name:    res.Category.Name,
		},
		Content: items,
	}
}
