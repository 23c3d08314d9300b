// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/graphql-go/graphql"

	"github.com/dacolabs/oasgraph/internal/naming"
	"github.com/dacolabs/oasgraph/internal/oas"
)

// maxIterations bounds nested schema translation. The counter increases on
// every non-cached recursion step; exceeding the ceiling aborts the build.
const maxIterations = 20

// shape is the closed set of translatable schema shapes.
type shape int

const (
	shapeUnknown shape = iota
	shapeObject
	shapeEmptyObject
	shapeEnum
	shapeArray
	shapeScalar
)

// shapeOf classifies a schema node. Enum markers win over type tags; a node
// with properties counts as an object even without an explicit type tag.
func shapeOf(s *openapi3.Schema) shape {
	switch {
	case len(s.Enum) > 0:
		return shapeEnum
	case typeTag(s) == "array":
		return shapeArray
	case typeTag(s) == "object" || len(s.Properties) > 0:
		if len(s.Properties) == 0 {
			return shapeEmptyObject
		}
		return shapeObject
	case typeTag(s) != "":
		return shapeScalar
	}
	return shapeUnknown
}

// TranslateType converts one schema node into its GraphQL type, recursing into
// properties and array items with memoized caching on the context. A nil type
// with a nil error means the node yields no usable type and the caller must
// omit the field or operation.
//
// Link descriptors apply only to the top-level field set of this build
// (iteration 0); nested object shapes never receive link fields.
func TranslateType(name string, ref *openapi3.SchemaRef, tctx *Context, links map[string]*openapi3.Link, iteration int, isMutation bool) (graphql.Output, error) {
	if iteration >= maxIterations {
		return nil, fmt.Errorf("%w for schema %q", ErrIterations, name)
	}
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoSchema, name)
	}
	schema := ref.Value

	switch shapeOf(schema) {
	case shapeObject:
		return translateObject(name, schema, tctx, links, iteration, isMutation), nil
	case shapeEnum:
		return resolveEnum(name, tctx, schema.Enum), nil
	case shapeEmptyObject:
		tctx.log().Warn("object schema has no properties, omitting", "schema", name)
		return nil, nil
	case shapeArray:
		return translateArray(name, schema, tctx, iteration, isMutation)
	case shapeScalar:
		return scalarType(typeTag(schema)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
}

// translateObject returns the cached type for (name, namespace) or constructs
// a new one. The instance is stored in the cache before its lazy field thunk
// can run, so self-referential schemas resolve through the cache instead of
// recursing without bound.
func translateObject(name string, schema *openapi3.Schema, tctx *Context, links map[string]*openapi3.Link, iteration int, isMutation bool) graphql.Output {
	if isMutation {
		if cached, ok := tctx.InputTypes[name]; ok {
			return cached
		}
		clean := naming.BeautifyAndStore(name, tctx.Names)
		obj := graphql.NewInputObject(graphql.InputObjectConfig{
			Name:        clean,
			Description: schema.Description,
			Fields: graphql.InputObjectConfigFieldMapThunk(func() graphql.InputObjectConfigFieldMap {
				return inputFields(schema, tctx, iteration)
			}),
		})
		tctx.InputTypes[name] = obj
		return obj
	}

	if cached, ok := tctx.OutputTypes[name]; ok {
		return cached
	}
	clean := naming.BeautifyAndStore(name, tctx.Names)
	obj := graphql.NewObject(graphql.ObjectConfig{
		Name:        clean,
		Description: schema.Description,
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return outputFields(schema, tctx, links, iteration)
		}),
	})
	tctx.OutputTypes[name] = obj
	return obj
}

// outputFields builds the field set of an output object type. Properties
// resolving to no usable type are omitted; required-ness never wraps output
// fields. Link fields are attached only at iteration 0.
func outputFields(schema *openapi3.Schema, tctx *Context, links map[string]*openapi3.Link, iteration int) graphql.Fields {
	fields := graphql.Fields{}

	for _, propName := range sortedPropNames(schema.Properties) {
		prop := schema.Properties[propName]
		fieldType, err := propertyType(propName, prop, tctx, iteration, false)
		if err != nil {
			tctx.deferErr(err)
			continue
		}
		if fieldType == nil {
			continue
		}
		clean := naming.BeautifyAndStore(propName, tctx.Names)
		fields[clean] = &graphql.Field{
			Type:        fieldType,
			Description: propDescription(prop),
		}
	}

	if iteration == 0 {
		for _, linkName := range sortedLinkNames(links) {
			if err := attachLink(fields, linkName, links[linkName], tctx); err != nil {
				tctx.deferErr(err)
			}
		}
	}

	return fields
}

// inputFields builds the field set of an input object type. A property listed
// in the schema's required set is wrapped non-null; this wrapping exists in
// the input namespace only.
func inputFields(schema *openapi3.Schema, tctx *Context, iteration int) graphql.InputObjectConfigFieldMap {
	required := make(map[string]bool, len(schema.Required))
	for _, r := range schema.Required {
		required[r] = true
	}

	fields := graphql.InputObjectConfigFieldMap{}
	for _, propName := range sortedPropNames(schema.Properties) {
		prop := schema.Properties[propName]
		fieldType, err := propertyType(propName, prop, tctx, iteration, true)
		if err != nil {
			tctx.deferErr(err)
			continue
		}
		if fieldType == nil {
			continue
		}
		var t graphql.Input = fieldType
		if required[propName] {
			t = graphql.NewNonNull(t)
		}
		clean := naming.BeautifyAndStore(propName, tctx.Names)
		fields[clean] = &graphql.InputObjectFieldConfig{
			Type:        t,
			Description: propDescription(prop),
		}
	}
	return fields
}

// propertyType resolves the type of one declared property: symbolic
// references go through the reference resolver, inline subschemas recurse into
// the translator under the property's own name.
func propertyType(propName string, prop *openapi3.SchemaRef, tctx *Context, iteration int, isMutation bool) (graphql.Output, error) {
	if rn := localRefName(prop); rn != "" {
		return resolveRef(rn, tctx, isMutation, iteration)
	}

	// Inline subschemas register a cache entry under the property's own name,
	// which can alias an unrelated top-level schema sharing that name.
	tctx.warnCollision(propName, isMutation)
	return TranslateType(propName, prop, tctx, nil, iteration+1, isMutation)
}

// translateArray resolves the items node and wraps the result in a list.
func translateArray(name string, schema *openapi3.Schema, tctx *Context, iteration int, isMutation bool) (graphql.Output, error) {
	items := schema.Items
	if items == nil || (items.Ref == "" && items.Value == nil) {
		return nil, fmt.Errorf("%w: %q", ErrNoItems, name)
	}

	if rn := localRefName(items); rn != "" {
		inner, err := resolveRef(rn, tctx, isMutation, iteration)
		if err != nil {
			return nil, err
		}
		if inner == nil {
			return nil, nil
		}
		return graphql.NewList(inner), nil
	}

	if st := scalarType(typeTag(items.Value)); st != nil {
		return graphql.NewList(st), nil
	}

	itemName := items.Value.Title
	if itemName == "" {
		itemName = name + "Items"
	}
	inner, err := TranslateType(itemName, items, tctx, nil, iteration+1, isMutation)
	if err != nil {
		return nil, err
	}
	if inner == nil {
		return nil, nil
	}
	return graphql.NewList(inner), nil
}

// attachLink adds one resolver-backed navigation field for a link descriptor.
// The link's declared parameter bindings are supplied automatically from the
// parent response; the target operation's remaining parameters become the
// field's arguments. The target's response type must already be present in
// the output cache.
func attachLink(fields graphql.Fields, linkName string, link *openapi3.Link, tctx *Context) error {
	op, err := tctx.linkOperation(link)
	if err != nil {
		return err
	}

	var remaining []*openapi3.Parameter
	for _, p := range op.Parameters {
		if p == nil {
			continue
		}
		if _, preset := link.Parameters[p.Name]; preset {
			continue
		}
		remaining = append(remaining, p)
	}

	var resolveFn graphql.FieldResolveFn
	if tctx.Resolvers != nil {
		resolveFn = tctx.Resolvers(ResolverParams{
			Operation:  op,
			Doc:        tctx.Doc,
			PresetArgs: link.Parameters,
		})
	}

	args, err := BuildArgs(remaining, "", false, tctx)
	if err != nil {
		return err
	}

	resType, ok := tctx.OutputTypes[op.ResponseName]
	if !ok || resType == nil {
		return fmt.Errorf("%w: response type %q of operation %q not built", ErrNoDefinition, op.ResponseName, op.ID)
	}

	clean := naming.BeautifyAndStore(linkName, tctx.Names)
	fields[clean] = &graphql.Field{
		Type:        resType,
		Args:        args,
		Resolve:     resolveFn,
		Description: link.Description,
	}
	return nil
}

// linkOperation looks up the operation a link points at, by id or by
// same-document operationRef.
func (c *Context) linkOperation(link *openapi3.Link) (*oas.Operation, error) {
	switch {
	case link.OperationID != "":
		if op, ok := c.Operations[link.OperationID]; ok {
			return op, nil
		}
		return nil, fmt.Errorf("%w: operation id %q", ErrLinkOperation, link.OperationID)
	case link.OperationRef != "":
		if c.RefLookup != nil {
			if op, ok := c.RefLookup(link.OperationRef); ok {
				return op, nil
			}
		}
		return nil, fmt.Errorf("%w: operation ref %q", ErrLinkOperation, link.OperationRef)
	default:
		return nil, fmt.Errorf("%w: link names neither an operation id nor a reference", ErrLinkOperation)
	}
}

func (c *Context) warnCollision(propName string, isMutation bool) {
	if isMutation {
		if _, exists := c.InputDefs[propName+oas.InputSuffix]; exists {
			c.log().Warn("inline property name collides with top-level schema", "property", propName)
		}
		return
	}
	if _, exists := c.OutputDefs[propName]; exists {
		c.log().Warn("inline property name collides with top-level schema", "property", propName)
	}
}

// localRefName extracts the component name from a reference, "" for inline
// nodes.
func localRefName(ref *openapi3.SchemaRef) string {
	if ref == nil || ref.Ref == "" {
		return ""
	}
	parts := strings.Split(ref.Ref, "/")
	return parts[len(parts)-1]
}

func propDescription(ref *openapi3.SchemaRef) string {
	if ref == nil || ref.Value == nil {
		return ""
	}
	return ref.Value.Description
}

func sortedPropNames(props openapi3.Schemas) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedLinkNames(links map[string]*openapi3.Link) []string {
	names := make([]string, 0, len(links))
	for name := range links {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
