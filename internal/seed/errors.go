// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package seed

import (
	"errors"
	"fmt"
)

// ErrSeedInProgress is returned when another process holds the seed lock
// for the same category.
var ErrSeedInProgress = errors.New("seed already in progress")

// Step names the part of a seed run that failed.
type Step string

const (
	StepCategoryLookup Step = "category_lookup"
	StepCategoryInsert Step = "category_insert"
	StepContentLookup  Step = "content_lookup"
	StepContentInsert  Step = "content_insert"
)

// Error reports a failed seed step. Title is set for content steps. Err is
// the underlying store error, reachable with errors.As as a
// *docstore.StoreError.
type Error struct {
	Step  Step
	Title string
	Err   error
}

func (e *Error) Error() string {
	return e.Summary() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Summary describes the failed step without the underlying driver error,
// for showing to operators and admins.
func (e *Error) Summary() string {
	switch e.Step {
	case StepCategoryLookup:
		return "seed: category lookup failed"
	case StepCategoryInsert:
		return "seed: category insert failed"
	case StepContentLookup:
		return fmt.Sprintf("seed: content lookup failed for %q", e.Title)
	case StepContentInsert:
		return fmt.Sprintf("seed: content insert failed for %q", e.Title)
	}
	return "seed: " + string(e.Step) + " failed"
}
