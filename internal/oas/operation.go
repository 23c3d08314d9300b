// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package oas preprocesses a dereferenced OpenAPI document into the operation
// descriptors and schema definition tables consumed by the translator.
package oas

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Operation describes one path+method pair of the source document.
type Operation struct {
	ID          string // operationId, synthesized from method and path when absent
	Method      string // uppercase HTTP method
	Path        string
	Description string

	// Parameters is the flattened parameter list: path-item level parameters
	// followed by operation-level ones.
	Parameters []*openapi3.Parameter

	// RequestName is the schema name of the JSON request body, "" when the
	// operation takes no body. RequestRequired mirrors the body's required flag.
	RequestName     string
	RequestRequired bool

	// ResponseName is the schema name of the first 2xx JSON response, "" when
	// the operation returns no JSON payload.
	ResponseName string

	// Links declared on the success response, keyed by link name.
	Links map[string]*openapi3.Link
}

// IsQuery reports whether the operation belongs on the Query root.
// Everything except GET is treated as a mutation.
func (op *Operation) IsQuery() bool {
	return op.Method == "GET"
}

// pointerKey builds the path+method lookup key used for operationRef links.
func pointerKey(path, method string) string {
	return strings.ToUpper(method) + " " + path
}

// unescapePointer reverses JSON Pointer token escaping (~1 -> "/", ~0 -> "~").
func unescapePointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}
