// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import "errors"

// Structural errors abort the whole build; no partial type graph is usable
// after any of these is returned.
var (
	// ErrIterations is returned when nested translation exceeds the recursion ceiling.
	ErrIterations = errors.New("too many iterations")

	// ErrNoSchema is returned when a schema node is absent or not a structured value.
	ErrNoSchema = errors.New("schema node missing")

	// ErrUnknownShape is returned when a node carries no recognizable type marker.
	ErrUnknownShape = errors.New("cannot determine schema shape")

	// ErrNoItems is returned when an array schema has no items definition.
	ErrNoItems = errors.New("array schema missing items")

	// ErrNoDefinition is returned when a referenced definition is absent from
	// the definitions of the requested namespace.
	ErrNoDefinition = errors.New("schema definition not found")

	// ErrLinkOperation is returned when a link names no operation, or names one
	// that cannot be looked up.
	ErrLinkOperation = errors.New("link operation not resolvable")
)
