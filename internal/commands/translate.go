// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cobra"

	"github.com/dacolabs/oasgraph/internal/assemble"
	"github.com/dacolabs/oasgraph/internal/config"
	"github.com/dacolabs/oasgraph/internal/oas"
)

type translateOptions struct {
	spec    string
	options string
	output  string
	verbose bool
}

func registerTranslateCmd(parent *cobra.Command) {
	opts := &translateOptions{}

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate an OpenAPI description to a GraphQL schema",
		Long: `Translate an OpenAPI description to a GraphQL schema.

GET operations become fields on the Query root and all other
operations become fields on the Mutation root. Component schemas
are translated into output and input object types, and response
links become nested fields on the linked types.`,
		Example: `  # Print the schema to stdout
  oasgraph translate --spec petstore.json

  # Write the schema to a file
  oasgraph translate --spec petstore.yaml --output schema.graphql

  # Skip authentication headers declared in an options file
  oasgraph translate --spec petstore.json --options oasgraph.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.spec, "spec", "s", "", "Path to the OpenAPI description (JSON or YAML)")
	cmd.Flags().StringVar(&opts.options, "options", "", "Path to a translation options file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the schema to this file instead of stdout")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	_ = cmd.MarkFlagRequired("spec")

	parent.AddCommand(cmd)
}

func runTranslate(cmd *cobra.Command, opts *translateOptions) error {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	translateOpts := &config.Options{}
	if opts.options != "" {
		loaded, err := config.Load(opts.options)
		if err != nil {
			return fmt.Errorf("failed to load options: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid options: %w", err)
		}
		translateOpts = loaded
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(opts.spec)
	if err != nil {
		return fmt.Errorf("failed to load OpenAPI description: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return fmt.Errorf("invalid OpenAPI description: %w", err)
	}

	document, err := oas.Preprocess(doc)
	if err != nil {
		return fmt.Errorf("failed to preprocess OpenAPI description: %w", err)
	}

	schema, _, err := assemble.Schema(document, translateOpts, assemble.DefaultFactory(), logger)
	if err != nil {
		return fmt.Errorf("failed to build schema: %w", err)
	}

	sdl := assemble.Print(schema)

	if opts.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), sdl)
		return nil
	}

	if err := os.WriteFile(opts.output, []byte(sdl), 0o600); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema written to %s\n", opts.output)

	return nil
}
