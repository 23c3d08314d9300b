// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "oasgraph.yaml")

	opts := &Options{
		Version: CurrentOptionsVersion,
		Headers: map[string]string{
			"X-API-Key": "secret",
		},
		QueryParams: map[string]string{
			"limit": "100",
		},
	}
	require.NoError(t, opts.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, opts, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [p"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := &Options{Version: CurrentOptionsVersion}
	assert.NoError(t, valid.Validate())

	stale := &Options{Version: 99}
	assert.Error(t, stale.Validate())
}

func TestSkipOverrides(t *testing.T) {
	opts := &Options{
		Version:     CurrentOptionsVersion,
		Headers:     map[string]string{"X-API-Key": "secret"},
		QueryParams: map[string]string{"limit": "100"},
	}

	assert.True(t, opts.SkipHeader("X-API-Key"))
	assert.False(t, opts.SkipHeader("limit"))
	assert.True(t, opts.SkipQueryParam("limit"))
	assert.False(t, opts.SkipQueryParam("offset"))

	var nilOpts *Options
	assert.False(t, nilOpts.SkipHeader("X-API-Key"))
	assert.False(t, nilOpts.SkipQueryParam("limit"))
}
