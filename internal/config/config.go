// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles oasgraph translation options.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentOptionsVersion is the current version of the options file format.
const CurrentOptionsVersion = 1

// Options represents the oasgraph.yaml options file.
// Headers and QueryParams carry preset values injected at request time by the
// caller; their names are excluded from generated field arguments.
type Options struct {
	Version     int               `yaml:"version"`
	Headers     map[string]string `yaml:"headers,omitempty"`
	QueryParams map[string]string `yaml:"qs,omitempty"`
}

// Load reads Options from a file path.
func Load(path string) (*Options, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var opts Options
	if err := yaml.NewDecoder(f).Decode(&opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

// Save writes the Options to a file path.
func (o *Options) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(o)
}

// Validate checks the options for required fields and valid values.
func (o *Options) Validate() error {
	if o.Version != CurrentOptionsVersion {
		return errors.New("unsupported options version")
	}
	return nil
}

// SkipHeader reports whether a parameter name is overridden by a preset header.
func (o *Options) SkipHeader(name string) bool {
	if o == nil {
		return false
	}
	_, ok := o.Headers[name]
	return ok
}

// SkipQueryParam reports whether a parameter name is overridden by a preset
// query-string value.
func (o *Options) SkipQueryParam(name string) bool {
	if o == nil {
		return false
	}
	_, ok := o.QueryParams[name]
	return ok
}
