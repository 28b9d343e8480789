// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seed

// Status is the overall outcome of a seed run.
type Status string

const (
	// StatusSeeded means the category and every content item were created.
	StatusSeeded Status = "seeded"
	// StatusPartiallySeeded means the run succeeded but some documents
	// already existed and were left alone.
	StatusPartiallySeeded Status = "partially_seeded"
	// StatusAlreadySeeded means the run succeeded and created nothing.
	StatusAlreadySeeded Status = "already_seeded"
	// StatusContentFailed means the category step succeeded and a content
	// step failed. Documents created before the failure remain.
	StatusContentFailed Status = "content_failed"
	// StatusCategoryFailed means the category lookup or insert failed.
	StatusCategoryFailed Status = "category_failed"
)

// OK reports whether the run completed without a store failure.
func (s Status) OK() bool {
	switch s {
	case StatusSeeded, StatusPartiallySeeded, StatusAlreadySeeded:
		return true
	}
	return false
}

// ItemState is the outcome of one content item.
type ItemState string

const (
	ItemCreated      ItemState = "created"
	ItemSkipped      ItemState = "skipped"
	ItemFailed       ItemState = "failed"
	ItemNotAttempted ItemState = "not_attempted"
)

// CategoryOutcome says which category the run used and whether it created it.
type CategoryOutcome struct {
	ID      string
	Name    string
	Created bool
}

// ItemOutcome is the per-item entry of a Result.
type ItemOutcome struct {
	Title string
	State ItemState
}

// Created reports whether this run inserted the item.
func (o ItemOutcome) Created() bool { return o.State == ItemCreated }

// Result reports what a seed run did. Content is in input order.
type Result struct {
	Category CategoryOutcome
	Content  []ItemOutcome
	Status   Status
}

// Counts returns the number of items in each state.
func (r *Result) Counts() map[ItemState]int {
	counts := make(map[ItemState]int, 4)
	for _, item := range r.Content {
		counts[item.State]++
	}
	return counts
}

// settle sets Status for a run that finished without error.
func (r *Result) settle() {
	counts := r.Counts()
	created := counts[ItemCreated]
	switch {
	case created == len(r.Content) && r.Category.Created:
		r.Status = StatusSeeded
	case created == 0 && !r.Category.Created:
		r.Status = StatusAlreadySeeded
	default:
		r.Status = StatusPartiallySeeded
	}
}
