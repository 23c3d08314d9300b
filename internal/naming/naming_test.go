// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeautify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already valid", "Pet", "Pet"},
		{"dashes to camel", "pet-store-order", "petStoreOrder"},
		{"dots and slashes", "user.profile/avatar", "userProfileAvatar"},
		{"leading digit", "1password", "_1password"},
		{"underscores kept", "snake_case_name", "snake_case_name"},
		{"spaces", "my schema name", "mySchemaName"},
		{"only punctuation", "!!!", "_"},
		{"mixed", "application/json; charset=utf-8", "applicationJsonCharsetUtf8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Beautify(tt.input))
		})
	}
}

func TestBeautifyAndStore_RoundTrip(t *testing.T) {
	reg := NewRegistry()

	clean := BeautifyAndStore("pet-store-order", reg)
	require.Equal(t, "petStoreOrder", clean)

	orig, ok := reg.Original(clean)
	require.True(t, ok)
	assert.Equal(t, "pet-store-order", orig)
}

func TestBeautifyAndStore_Idempotent(t *testing.T) {
	reg := NewRegistry()

	first := BeautifyAndStore("x-api-key", reg)
	second := BeautifyAndStore("x-api-key", reg)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, reg.Len())
}

func TestBeautifyAndStore_CollisionReconciled(t *testing.T) {
	reg := NewRegistry()

	first := BeautifyAndStore("pet-store", reg)
	second := BeautifyAndStore("pet store", reg)
	third := BeautifyAndStore("pet.store", reg)

	require.Equal(t, "petStore", first)
	assert.Equal(t, "petStore2", second)
	assert.Equal(t, "petStore3", third)

	// Each sanitized form still resolves to its own original.
	orig, ok := reg.Original("petStore2")
	require.True(t, ok)
	assert.Equal(t, "pet store", orig)
}
