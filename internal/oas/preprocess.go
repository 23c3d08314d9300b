// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package oas

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// InputSuffix is appended to a schema name to key its input-namespace entry.
const InputSuffix = "Input"

// Document is the preprocessed form of an OpenAPI document: operations indexed
// for lookup plus the raw schema definitions of both type namespaces.
type Document struct {
	Doc *openapi3.T

	// Operations by operation id.
	Operations map[string]*Operation

	// OutputDefs and InputDefs map schema names to their raw definitions.
	// InputDefs keys carry the InputSuffix.
	OutputDefs map[string]*openapi3.SchemaRef
	InputDefs  map[string]*openapi3.SchemaRef

	byPointer map[string]*Operation
}

// Preprocess walks a dereferenced OpenAPI document and extracts operation
// descriptors and schema definitions. The document is not validated here
// beyond what extraction itself requires.
func Preprocess(doc *openapi3.T) (*Document, error) {
	d := &Document{
		Doc:        doc,
		Operations: make(map[string]*Operation),
		OutputDefs: make(map[string]*openapi3.SchemaRef),
		InputDefs:  make(map[string]*openapi3.SchemaRef),
		byPointer:  make(map[string]*Operation),
	}

	if doc.Components != nil {
		for name, ref := range doc.Components.Schemas {
			d.OutputDefs[name] = ref
			d.InputDefs[name+InputSuffix] = ref
		}
	}

	if doc.Paths == nil {
		return d, nil
	}

	for _, pathName := range sortedKeys(doc.Paths.Map()) {
		pathItem := doc.Paths.Map()[pathName]
		ops := pathItem.Operations()
		for _, method := range sortedKeys(ops) {
			op, err := d.extractOperation(pathName, method, pathItem, ops[method])
			if err != nil {
				return nil, err
			}
			if _, dup := d.Operations[op.ID]; dup {
				return nil, fmt.Errorf("duplicate operation id %q (%s %s)", op.ID, method, pathName)
			}
			d.Operations[op.ID] = op
			d.byPointer[pointerKey(pathName, method)] = op
		}
	}

	return d, nil
}

// ByRef resolves a same-document operationRef of the form
// "#/paths/<escaped path>/<method>" to its operation descriptor.
func (d *Document) ByRef(opRef string) (*Operation, bool) {
	rest, ok := strings.CutPrefix(opRef, "#/paths/")
	if !ok {
		return nil, false
	}
	i := strings.LastIndex(rest, "/")
	if i < 0 {
		return nil, false
	}
	path := unescapePointer(rest[:i])
	method := rest[i+1:]
	op, ok := d.byPointer[pointerKey(path, method)]
	return op, ok
}

func (d *Document) extractOperation(pathName, method string, pathItem *openapi3.PathItem, src *openapi3.Operation) (*Operation, error) {
	op := &Operation{
		ID:          src.OperationID,
		Method:      strings.ToUpper(method),
		Path:        pathName,
		Description: src.Description,
	}
	if op.Description == "" {
		op.Description = src.Summary
	}
	if op.ID == "" {
		op.ID = strings.ToLower(method) + pathName
	}

	for _, ref := range pathItem.Parameters {
		if ref.Value != nil {
			op.Parameters = append(op.Parameters, ref.Value)
		}
	}
	for _, ref := range src.Parameters {
		if ref.Value != nil {
			op.Parameters = append(op.Parameters, ref.Value)
		}
	}

	if src.RequestBody != nil && src.RequestBody.Value != nil {
		if media := src.RequestBody.Value.Content.Get("application/json"); media != nil && media.Schema != nil {
			op.RequestName = d.registerInput(op.ID, media.Schema)
			op.RequestRequired = src.RequestBody.Value.Required
		}
	}

	if src.Responses != nil {
		if resp := successResponse(src.Responses); resp != nil {
			if media := resp.Content.Get("application/json"); media != nil && media.Schema != nil {
				op.ResponseName = d.registerOutput(op.ID, media.Schema)
			}
			if len(resp.Links) > 0 {
				op.Links = make(map[string]*openapi3.Link, len(resp.Links))
				for name, linkRef := range resp.Links {
					if linkRef.Value != nil {
						op.Links[name] = linkRef.Value
					}
				}
			}
		}
	}

	return op, nil
}

// registerOutput names a response schema and records its definition in the
// output namespace. Referenced component schemas keep their component name;
// inline schemas are named after their title or the operation id.
func (d *Document) registerOutput(opID string, ref *openapi3.SchemaRef) string {
	name := refName(ref)
	if name == "" {
		if ref.Value != nil && ref.Value.Title != "" {
			name = ref.Value.Title
		} else {
			name = opID + "Response"
		}
		if _, exists := d.OutputDefs[name]; !exists {
			d.OutputDefs[name] = ref
			d.InputDefs[name+InputSuffix] = ref
		}
	}
	return name
}

// registerInput names a request-body schema and records its definition in the
// input namespace.
func (d *Document) registerInput(opID string, ref *openapi3.SchemaRef) string {
	name := refName(ref)
	if name == "" {
		if ref.Value != nil && ref.Value.Title != "" {
			name = ref.Value.Title
		} else {
			name = opID + "Request"
		}
		if _, exists := d.InputDefs[name+InputSuffix]; !exists {
			d.InputDefs[name+InputSuffix] = ref
		}
	}
	return name
}

// successResponse picks the lowest 2xx response, falling back to "2XX".
func successResponse(responses *openapi3.Responses) *openapi3.Response {
	m := responses.Map()
	for _, status := range sortedKeys(m) {
		if strings.HasPrefix(status, "2") && m[status].Value != nil {
			return m[status].Value
		}
	}
	return nil
}

// refName extracts the component name from a schema reference, "" for inline
// schemas.
func refName(ref *openapi3.SchemaRef) string {
	if ref == nil || ref.Ref == "" {
		return ""
	}
	parts := strings.Split(ref.Ref, "/")
	return parts[len(parts)-1]
}

func sortedKeys[M map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
