// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package assemble

import (
	"fmt"
	"strings"

	"github.com/graphql-go/graphql"

	"github.com/dacolabs/oasgraph/internal/translate"
)

// DefaultFactory returns a resolver factory that materializes link preset
// arguments from the parent value and merges them with the caller's
// arguments. It performs no I/O; executing the operation against the API
// belongs to the embedding application, which can replace this factory.
func DefaultFactory() translate.ResolverFactory {
	return func(p translate.ResolverParams) graphql.FieldResolveFn {
		return func(rp graphql.ResolveParams) (any, error) {
			args := make(map[string]any, len(rp.Args)+len(p.PresetArgs))
			for k, v := range rp.Args {
				args[k] = v
			}
			for name, expr := range p.PresetArgs {
				v, err := evalExpression(expr, rp.Source)
				if err != nil {
					return nil, err
				}
				args[name] = v
			}
			return map[string]any{
				"operation": p.Operation.ID,
				"args":      args,
			}, nil
		}
	}
}

// evalExpression resolves a link runtime expression against the parent
// response value. Only "$response.body#/..." pointers are evaluated; any
// other value is passed through as a literal.
func evalExpression(expr, source any) (any, error) {
	s, ok := expr.(string)
	if !ok {
		return expr, nil
	}
	frag, ok := strings.CutPrefix(s, "$response.body#/")
	if !ok {
		return s, nil
	}

	v := source
	for _, token := range strings.Split(frag, "/") {
		token = strings.ReplaceAll(token, "~1", "/")
		token = strings.ReplaceAll(token, "~0", "~")
		m, isMap := v.(map[string]any)
		if !isMap {
			return nil, fmt.Errorf("cannot evaluate %q against parent response", s)
		}
		child, found := m[token]
		if !found {
			return nil, fmt.Errorf("parent response has no field %q for expression %q", token, s)
		}
		v = child
	}
	return v, nil
}
