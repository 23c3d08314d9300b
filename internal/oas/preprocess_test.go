// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package oas

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func petSchema() *openapi3.SchemaRef {
	return &openapi3.SchemaRef{
		Value: &openapi3.Schema{
			Type: &openapi3.Types{"object"},
			Properties: openapi3.Schemas{
				"id":   {Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}}},
				"name": {Value: &openapi3.Schema{Type: &openapi3.Types{"string"}}},
			},
		},
	}
}

func petstoreDoc() *openapi3.T {
	petRef := &openapi3.SchemaRef{Ref: "#/components/schemas/Pet", Value: petSchema().Value}

	okDesc := "OK"
	getPet := &openapi3.Operation{
		OperationID: "getPet",
		Summary:     "Fetch a pet by id",
		Parameters: openapi3.Parameters{
			{Value: &openapi3.Parameter{
				Name: "petId", In: "path", Required: true,
				Schema: &openapi3.SchemaRef{Value: &openapi3.Schema{Type: &openapi3.Types{"integer"}}},
			}},
		},
		Responses: openapi3.NewResponses(openapi3.WithStatus(200, &openapi3.ResponseRef{
			Value: &openapi3.Response{
				Description: &okDesc,
				Content:     openapi3.NewContentWithJSONSchemaRef(petRef),
			},
		})),
	}

	createdDesc := "Created"
	addPet := &openapi3.Operation{
		OperationID: "addPet",
		RequestBody: &openapi3.RequestBodyRef{
			Value: &openapi3.RequestBody{
				Required: true,
				Content:  openapi3.NewContentWithJSONSchemaRef(petRef),
			},
		},
		Responses: openapi3.NewResponses(openapi3.WithStatus(201, &openapi3.ResponseRef{
			Value: &openapi3.Response{
				Description: &createdDesc,
				Content:     openapi3.NewContentWithJSONSchemaRef(petRef),
			},
		})),
	}

	components := openapi3.NewComponents()
	components.Schemas = openapi3.Schemas{"Pet": petSchema()}

	doc := &openapi3.T{
		OpenAPI:    "3.0.3",
		Info:       &openapi3.Info{Title: "Petstore", Version: "1.0.0"},
		Components: &components,
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/pets/{petId}", &openapi3.PathItem{Get: getPet}),
			openapi3.WithPath("/pets", &openapi3.PathItem{Post: addPet}),
		),
	}
	return doc
}

func TestPreprocess_Operations(t *testing.T) {
	d, err := Preprocess(petstoreDoc())
	require.NoError(t, err)

	require.Len(t, d.Operations, 2)

	get := d.Operations["getPet"]
	require.NotNil(t, get)
	assert.Equal(t, "GET", get.Method)
	assert.Equal(t, "/pets/{petId}", get.Path)
	assert.Equal(t, "Fetch a pet by id", get.Description)
	assert.Equal(t, "Pet", get.ResponseName)
	assert.True(t, get.IsQuery())
	require.Len(t, get.Parameters, 1)
	assert.Equal(t, "petId", get.Parameters[0].Name)

	add := d.Operations["addPet"]
	require.NotNil(t, add)
	assert.Equal(t, "Pet", add.RequestName)
	assert.True(t, add.RequestRequired)
	assert.False(t, add.IsQuery())
}

func TestPreprocess_Definitions(t *testing.T) {
	d, err := Preprocess(petstoreDoc())
	require.NoError(t, err)

	require.Contains(t, d.OutputDefs, "Pet")
	require.Contains(t, d.InputDefs, "Pet"+InputSuffix)
	assert.NotContains(t, d.OutputDefs, "Pet"+InputSuffix)
}

func TestPreprocess_SynthesizedNames(t *testing.T) {
	okDesc := "OK"
	inline := &openapi3.Operation{
		// no operationId, inline response schema
		Responses: openapi3.NewResponses(openapi3.WithStatus(200, &openapi3.ResponseRef{
			Value: &openapi3.Response{
				Description: &okDesc,
				Content: openapi3.NewContentWithJSONSchemaRef(&openapi3.SchemaRef{
					Value: &openapi3.Schema{
						Type: &openapi3.Types{"object"},
						Properties: openapi3.Schemas{
							"ok": {Value: &openapi3.Schema{Type: &openapi3.Types{"boolean"}}},
						},
					},
				}),
			},
		})),
	}
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: "t", Version: "1"},
		Paths:   openapi3.NewPaths(openapi3.WithPath("/status", &openapi3.PathItem{Get: inline})),
	}

	d, err := Preprocess(doc)
	require.NoError(t, err)

	op := d.Operations["get/status"]
	require.NotNil(t, op)
	assert.Equal(t, "get/statusResponse", op.ResponseName)
	assert.Contains(t, d.OutputDefs, "get/statusResponse")
}

func TestPreprocess_DuplicateOperationID(t *testing.T) {
	okDesc := "OK"
	mk := func() *openapi3.Operation {
		return &openapi3.Operation{
			OperationID: "same",
			Responses: openapi3.NewResponses(openapi3.WithStatus(200, &openapi3.ResponseRef{
				Value: &openapi3.Response{Description: &okDesc},
			})),
		}
	}
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: "t", Version: "1"},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/a", &openapi3.PathItem{Get: mk()}),
			openapi3.WithPath("/b", &openapi3.PathItem{Get: mk()}),
		),
	}

	_, err := Preprocess(doc)
	assert.ErrorContains(t, err, "duplicate operation id")
}

func TestByRef(t *testing.T) {
	d, err := Preprocess(petstoreDoc())
	require.NoError(t, err)

	op, ok := d.ByRef("#/paths/~1pets~1{petId}/get")
	require.True(t, ok)
	assert.Equal(t, "getPet", op.ID)

	_, ok = d.ByRef("#/paths/~1missing/get")
	assert.False(t, ok)

	_, ok = d.ByRef("external.yaml#/paths/~1pets/get")
	assert.False(t, ok)
}
