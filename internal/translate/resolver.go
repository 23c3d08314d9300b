// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"strings"

	"github.com/graphql-go/graphql"

	"github.com/dacolabs/oasgraph/internal/oas"
)

// resolveRef returns the type for a symbolically referenced schema name,
// translating its definition on first access. The namespace is selected by
// isMutation: output types resolve through OutputDefs/OutputTypes, input
// types through the Input-suffixed entries of InputDefs/InputTypes.
// A definition yielding no usable type is cached as nil so later references
// neither re-translate it nor repeat its advisory warning.
func resolveRef(name string, tctx *Context, isMutation bool, iteration int) (graphql.Output, error) {
	if isMutation {
		key := name
		if !strings.HasSuffix(key, oas.InputSuffix) {
			key += oas.InputSuffix
		}
		if cached, ok := tctx.InputTypes[key]; ok {
			return cached, nil
		}
		def, ok := tctx.InputDefs[key]
		if !ok {
			return nil, fmt.Errorf("%w: %q in input namespace", ErrNoDefinition, key)
		}
		built, err := TranslateType(key, def, tctx, nil, iteration+1, true)
		if err != nil {
			return nil, err
		}
		tctx.InputTypes[key] = built
		return built, nil
	}

	if cached, ok := tctx.OutputTypes[name]; ok {
		return cached, nil
	}
	def, ok := tctx.OutputDefs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in output namespace", ErrNoDefinition, name)
	}
	built, err := TranslateType(name, def, tctx, nil, iteration+1, false)
	if err != nil {
		return nil, err
	}
	tctx.OutputTypes[name] = built
	return built, nil
}
