// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/dacolabs/oasgraph/internal/naming"
)

// resolveEnum returns the cached enum for a schema name or builds and caches a
// new one. Enums live in the output namespace only, keyed by the raw schema
// name like objects; the sanitized form is only the GraphQL type name. Member
// keys are the sanitized literals, member values the original literals,
// numeric and boolean ones included.
func resolveEnum(name string, tctx *Context, values []any) *graphql.Enum {
	if cached, ok := tctx.OutputTypes[name]; ok {
		if enum, isEnum := cached.(*graphql.Enum); isEnum {
			return enum
		}
	}
	clean := naming.BeautifyAndStore(name, tctx.Names)

	members := graphql.EnumValueConfigMap{}
	for _, v := range values {
		key := naming.Beautify(fmt.Sprintf("%v", v))
		if _, taken := members[key]; taken {
			continue
		}
		members[key] = &graphql.EnumValueConfig{Value: v}
	}

	enum := graphql.NewEnum(graphql.EnumConfig{
		Name:   clean,
		Values: members,
	})
	tctx.OutputTypes[name] = enum
	return enum
}
