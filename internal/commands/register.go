// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oasgraph",
		Short: "Translate OpenAPI descriptions into GraphQL schemas",
	}

	registerTranslateCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
