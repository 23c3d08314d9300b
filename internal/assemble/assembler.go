// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package assemble builds a complete GraphQL schema from a preprocessed
// OpenAPI document: one Query or Mutation field per operation, wired to the
// translated type graph.
package assemble

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/graphql-go/graphql"

	"github.com/dacolabs/oasgraph/internal/config"
	"github.com/dacolabs/oasgraph/internal/naming"
	"github.com/dacolabs/oasgraph/internal/oas"
	"github.com/dacolabs/oasgraph/internal/translate"
)

// ErrNoQueryFields is returned when no operation yields a usable query field;
// a GraphQL schema cannot exist without a Query root.
var ErrNoQueryFields = errors.New("no operations produced query fields")

// Schema assembles the full GraphQL schema for a document. GET operations
// become Query fields with their response links attached; all other methods
// become Mutation fields built through the input namespace for their request
// bodies. The returned context carries the run's caches and name registry.
func Schema(d *oas.Document, opts *config.Options, factory translate.ResolverFactory, logger *slog.Logger) (graphql.Schema, *translate.Context, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tctx := translate.NewContext(d, opts, factory, logger)

	queryFields := graphql.Fields{}
	mutationFields := graphql.Fields{}

	// Query operations build first so that a response type shared with a
	// mutation is constructed with its links attached.
	for _, pass := range []bool{true, false} {
		for _, id := range sortedOperationIDs(d.Operations) {
			op := d.Operations[id]
			if op.IsQuery() != pass {
				continue
			}
			field, err := operationField(op, d, tctx, factory)
			if err != nil {
				return graphql.Schema{}, nil, fmt.Errorf("operation %q: %w", op.ID, err)
			}
			if field == nil {
				logger.Warn("operation yields no usable type, skipping", "operation", op.ID)
				continue
			}
			name := naming.BeautifyAndStore(op.ID, tctx.Names)
			if op.IsQuery() {
				queryFields[name] = field
			} else {
				mutationFields[name] = field
			}
		}
	}

	if len(queryFields) == 0 {
		return graphql.Schema{}, nil, ErrNoQueryFields
	}

	cfg := graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: queryFields}),
	}
	if len(mutationFields) > 0 {
		cfg.Mutation = graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: mutationFields})
	}

	// Building the schema forces every lazy field thunk; only afterwards is
	// the context's deferred error meaningful.
	schema, err := graphql.NewSchema(cfg)
	if err != nil {
		// A deferred structural error can be the root cause, e.g. when it
		// emptied a type's field set; report it over graphql-go's own error.
		if terr := tctx.Err(); terr != nil {
			return graphql.Schema{}, nil, terr
		}
		return graphql.Schema{}, nil, err
	}
	if err := tctx.Err(); err != nil {
		return graphql.Schema{}, nil, err
	}
	return schema, tctx, nil
}

func operationField(op *oas.Operation, d *oas.Document, tctx *translate.Context, factory translate.ResolverFactory) (*graphql.Field, error) {
	if op.ResponseName == "" {
		return nil, nil
	}
	def, ok := d.OutputDefs[op.ResponseName]
	if !ok {
		return nil, fmt.Errorf("%w: response schema %q", translate.ErrNoDefinition, op.ResponseName)
	}

	var links map[string]*openapi3.Link
	if op.IsQuery() {
		links = op.Links
	}

	fieldType, err := translate.TranslateType(op.ResponseName, def, tctx, links, 0, false)
	if err != nil {
		return nil, err
	}
	if fieldType == nil {
		return nil, nil
	}

	args, err := translate.BuildArgs(op.Parameters, op.RequestName, op.RequestRequired, tctx)
	if err != nil {
		return nil, err
	}

	var resolveFn graphql.FieldResolveFn
	if factory != nil {
		resolveFn = factory(translate.ResolverParams{Operation: op, Doc: d.Doc})
	}

	return &graphql.Field{
		Type:        fieldType,
		Args:        args,
		Resolve:     resolveFn,
		Description: op.Description,
	}, nil
}

func sortedOperationIDs(ops map[string]*oas.Operation) []string {
	ids := make([]string, 0, len(ops))
	for id := range ops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
