// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreJSON = `{
  "openapi": "3.0.0",
  "info": {"title": "Petstore", "version": "1.0.0"},
  "paths": {
    "/pets/{petId}": {
      "get": {
        "operationId": "getPet",
        "parameters": [
          {"name": "petId", "in": "path", "required": true, "schema": {"type": "integer"}}
        ],
        "responses": {
          "200": {
            "description": "A pet",
            "content": {
              "application/json": {
                "schema": {"$ref": "#/components/schemas/Pet"}
              }
            }
          }
        }
      }
    },
    "/pets": {
      "post": {
        "operationId": "addPet",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/Pet"}
            }
          }
        },
        "responses": {
          "200": {
            "description": "The created pet",
            "content": {
              "application/json": {
                "schema": {"$ref": "#/components/schemas/Pet"}
              }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Pet": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": "integer"},
          "name": {"type": "string"},
          "status": {"type": "string", "enum": ["available", "pending", "sold"]}
        }
      }
    }
  }
}`

func writeSpec(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "petstore.json")
	require.NoError(t, os.WriteFile(path, []byte(petstoreJSON), 0o600))
	return path
}

func TestTranslateCmd_PrintsSchema(t *testing.T) {
	spec := writeSpec(t)

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"translate", "--spec", spec})

	require.NoError(t, cmd.Execute())

	sdl := out.String()
	assert.Contains(t, sdl, "type Query {")
	assert.Contains(t, sdl, "type Mutation {")
	assert.Contains(t, sdl, "getPet(petId: Int!): Pet")
	assert.Contains(t, sdl, "addPet(Pet: PetInput!): Pet")
	assert.Contains(t, sdl, "type Pet {")
	assert.Contains(t, sdl, "input PetInput {")
}

func TestTranslateCmd_WritesOutputFile(t *testing.T) {
	spec := writeSpec(t)
	outPath := filepath.Join(t.TempDir(), "schema.graphql")

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"translate", "--spec", spec, "--output", outPath})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "type Query {")
	assert.Contains(t, out.String(), outPath)
}

func TestTranslateCmd_OptionsFile(t *testing.T) {
	spec := writeSpec(t)
	optsPath := filepath.Join(t.TempDir(), "oasgraph.yaml")
	require.NoError(t, os.WriteFile(optsPath, []byte("version: 1\nheaders:\n  Authorization: token\n"), 0o600))

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"translate", "--spec", spec, "--options", optsPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "type Query {")
}

func TestTranslateCmd_MissingSpecFile(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"translate", "--spec", "does-not-exist.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load OpenAPI description")
}

func TestVersionCmd(t *testing.T) {
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "oasgraph version")
}
