package ui

import (
	"errors"
	"fmt"
)

// Tree assembly mistakes surface as errors wrapping one of these sentinels so
// callers can discriminate a colliding registration from a missing one. They
// indicate programming errors, not runtime conditions, and are never
// recovered internally.
var (
	// ErrDuplicateKey reports a second registration under a key that is
	// already taken (composite widget keys, repeated input cells).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound reports a lookup for a key that was never registered.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyParented reports an attempt to attach a widget that already
	// belongs to another parent. Composite and container children must be
	// freshly constructed, never shared.
	ErrAlreadyParented = errors.New("widget already has a parent")

	// ErrMissingElement reports a required sub-element that was never
	// configured before a lifecycle method needed it.
	ErrMissingElement = errors.New("required element missing")

	// ErrHeadEntriesUnset reports head-entry operations on an object whose
	// entry set was never initialized, which means the object skipped its
	// constructor.
	ErrHeadEntriesUnset = errors.New("head entry set not initialized")
)

// InvalidChildError reports an attempt to add a child of an unsupported kind
// to a parent that only accepts specific capabilities. The offending value is
// attached for diagnostics.
type InvalidChildError struct {
	Parent string
	Child  any
}

func (e *InvalidChildError) Error() string {
	return fmt.Sprintf("%s does not accept children of type %T", e.Parent, e.Child)
}
