// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/graphql-go/graphql"
)

// scalarType maps a primitive schema type tag to the matching GraphQL scalar.
// It returns nil for anything that is not a primitive.
func scalarType(tag string) graphql.Output {
	switch tag {
	case "string":
		return graphql.String
	case "integer":
		return graphql.Int
	case "number":
		return graphql.Float
	case "boolean":
		return graphql.Boolean
	}
	return nil
}

// typeTag returns the first declared type of a schema, "" when none is set.
func typeTag(s *openapi3.Schema) string {
	if s == nil || s.Type == nil || len(*s.Type) == 0 {
		return ""
	}
	return (*s.Type)[0]
}
