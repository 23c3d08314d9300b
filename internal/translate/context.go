// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate converts OpenAPI schema nodes into a deduplicated graph of
// GraphQL types: objects, input objects, lists, enums and scalars, wired
// together with arguments and cross-resource link fields.
package translate

import (
	"log/slog"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/graphql-go/graphql"

	"github.com/dacolabs/oasgraph/internal/config"
	"github.com/dacolabs/oasgraph/internal/naming"
	"github.com/dacolabs/oasgraph/internal/oas"
)

// ResolverParams carries what a resolver factory needs to build one field
// resolver for an operation.
type ResolverParams struct {
	Operation *oas.Operation
	Doc       *openapi3.T

	// PresetArgs maps argument names to runtime expressions into the parent
	// response body. These arguments are supplied automatically, not by the
	// caller of the field.
	PresetArgs map[string]any
}

// ResolverFactory builds the resolver attached to an operation-backed field.
// The translator treats the returned value opaquely.
type ResolverFactory func(ResolverParams) graphql.FieldResolveFn

// Context owns the mutable state of one translation run. It is created once
// per full-schema build, threaded by reference through every recursive call,
// and must not be shared between concurrent builds.
type Context struct {
	// OutputTypes and InputTypes cache built types by schema name, one map per
	// namespace. The same schema name may have one entry in each; the two are
	// never interchangeable.
	OutputTypes map[string]graphql.Output
	InputTypes  map[string]graphql.Input

	// OutputDefs and InputDefs hold the raw schema definitions the reference
	// resolver materializes on first access. InputDefs keys carry the
	// oas.InputSuffix.
	OutputDefs map[string]*openapi3.SchemaRef
	InputDefs  map[string]*openapi3.SchemaRef

	// Names records every sanitized identifier of the run, reversibly.
	Names *naming.Registry

	// Operations by operation id, for link-field resolution.
	Operations map[string]*oas.Operation

	// RefLookup resolves operationRef links; may be nil.
	RefLookup func(opRef string) (*oas.Operation, bool)

	Options   *config.Options
	Resolvers ResolverFactory
	Doc       *openapi3.T
	Logger    *slog.Logger

	deferred error
}

// NewContext creates the context for one translation run over a preprocessed
// document. A nil logger falls back to slog.Default.
func NewContext(d *oas.Document, opts *config.Options, factory ResolverFactory, logger *slog.Logger) *Context {
	return &Context{
		OutputTypes: make(map[string]graphql.Output),
		InputTypes:  make(map[string]graphql.Input),
		OutputDefs:  d.OutputDefs,
		InputDefs:   d.InputDefs,
		Names:       naming.NewRegistry(),
		Operations:  d.Operations,
		RefLookup:   d.ByRef,
		Options:     opts,
		Resolvers:   factory,
		Doc:         d.Doc,
		Logger:      logger,
	}
}

func (c *Context) log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// deferErr records a structural error raised while a lazy field thunk was
// running. Thunks cannot return errors, so the first one is kept here and
// surfaced through Err once all fields have been forced.
func (c *Context) deferErr(err error) {
	if c.deferred == nil {
		c.deferred = err
	}
}

// Err returns the first structural error recorded during lazy field
// evaluation, nil if none. Callers must check it after forcing the type
// graph's fields (building a schema forces all of them).
func (c *Context) Err() error {
	return c.deferred
}
