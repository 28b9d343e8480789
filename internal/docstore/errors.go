// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package docstore

import (
	"errors"
	"fmt"
)

// Operation names carried by StoreError.
const (
	OpConnect = "connect"
	OpFindOne = "find_one"
	OpInsert  = "insert_one"
	OpFind    = "find"
	OpDecode  = "decode"
)

// StoreError reports a failed call to the document store. It names the
// operation and collection so callers can say which step broke without
// exposing the driver error to end users.
type StoreError struct {
	Op         string
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("docstore %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("docstore %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsStoreError reports whether err is, or wraps, a *StoreError.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

func storeErr(op, collection string, err error) error {
	return &StoreError{Op: op, Collection: collection, Err: err}
}
