// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/graphql-go/graphql"

	"github.com/dacolabs/oasgraph/internal/naming"
)

// BuildArgs converts an operation's parameter list plus an optional JSON
// request body into a GraphQL argument map. Nameless parameters and
// parameters overridden by configured header/query presets are skipped.
// Argument keys are sanitized; the original parameter names stay recoverable
// through the context's name registry so a request builder can map arguments
// back to the wire names.
//
// An empty argument map is a valid result, not an error.
func BuildArgs(params []*openapi3.Parameter, reqSchemaName string, reqRequired bool, tctx *Context) (graphql.FieldConfigArgument, error) {
	args := graphql.FieldConfigArgument{}

	for _, p := range params {
		if p == nil || p.Name == "" {
			tctx.log().Debug("skipping parameter without a name")
			continue
		}
		if p.In == openapi3.ParameterInHeader && tctx.Options.SkipHeader(p.Name) {
			tctx.log().Debug("header parameter overridden by options", "name", p.Name)
			continue
		}
		if p.In == openapi3.ParameterInQuery && tctx.Options.SkipQueryParam(p.Name) {
			tctx.log().Debug("query parameter overridden by options", "name", p.Name)
			continue
		}

		// Simple parameters are scalar-typed; object and array tags are not
		// valid here and fall back to String like any unrecognized tag.
		var argType graphql.Input = graphql.String
		if p.Schema != nil && p.Schema.Value != nil {
			if st := scalarType(typeTag(p.Schema.Value)); st != nil {
				argType = st
			}
		}
		if p.Required {
			argType = graphql.NewNonNull(argType)
		}

		clean := naming.BeautifyAndStore(p.Name, tctx.Names)
		args[clean] = &graphql.ArgumentConfig{
			Type:        argType,
			Description: p.Description,
		}
	}

	if reqSchemaName != "" {
		bodyType, err := resolveRef(reqSchemaName, tctx, true, 0)
		if err != nil {
			return nil, err
		}
		if bodyType != nil {
			var t graphql.Input = bodyType
			if reqRequired {
				t = graphql.NewNonNull(t)
			}
			clean := naming.BeautifyAndStore(reqSchemaName, tctx.Names)
			args[clean] = &graphql.ArgumentConfig{Type: t}
		}
	}

	return args, nil
}
