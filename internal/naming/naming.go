// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package naming rewrites arbitrary API identifiers into valid GraphQL names
// and keeps a reversible registry of every rewrite.
package naming

import (
	"fmt"
	"strings"
)

// Registry records sanitized-to-original name mappings for one translation run.
// It is append-only: entries are never removed or rewritten.
type Registry struct {
	original  map[string]string // sanitized -> original
	sanitized map[string]string // original -> sanitized
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		original:  make(map[string]string),
		sanitized: make(map[string]string),
	}
}

// Original returns the original identifier that produced the given sanitized name.
func (r *Registry) Original(sanitized string) (string, bool) {
	orig, ok := r.original[sanitized]
	return orig, ok
}

// Sanitized returns the sanitized form previously registered for an original name.
func (r *Registry) Sanitized(original string) (string, bool) {
	s, ok := r.sanitized[original]
	return s, ok
}

// Len returns the number of registered names.
func (r *Registry) Len() int {
	return len(r.original)
}

// Beautify rewrites a string into a valid GraphQL name: parts are split on
// characters outside [_0-9A-Za-z], joined in camelCase, and the result is
// prefixed with an underscore when it would start with a digit.
// Beautify is pure; it does not touch any registry.
func Beautify(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9')
	})

	var sb strings.Builder
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 0 || sb.Len() == 0 {
			sb.WriteString(part)
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}

	result := sb.String()
	if result == "" {
		return "_"
	}
	if result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result
}

// BeautifyAndStore sanitizes a name and registers the mapping.
// Repeated calls with the same original return the same sanitized name.
// When two different originals sanitize to the same form, the later one is
// reconciled with a numeric suffix so no registration silently collides.
func BeautifyAndStore(original string, r *Registry) string {
	if s, ok := r.sanitized[original]; ok {
		return s
	}

	clean := Beautify(original)
	if prev, taken := r.original[clean]; taken && prev != original {
		base := clean
		for n := 2; ; n++ {
			clean = fmt.Sprintf("%s%d", base, n)
			if _, taken := r.original[clean]; !taken {
				break
			}
		}
	}

	r.original[clean] = original
	r.sanitized[original] = clean
	return clean
}
