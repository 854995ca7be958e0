// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary provides a YAML grammar inspection tool: it parses YAML
// from stdin or from files and prints the resulting token tree, either
// as an indented tree or as JSON. It performs no tag resolution and no
// construction; what it shows is exactly what the grammar produced.

package main

import (
	"fmt"
	"io"
	"os"

	"charm.land/log/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.yaml.in/grammar"
)

// version is the current version of the yaml-grammar CLI tool.
const version = "0.1.0"

// outputFormat is a flag value restricted to the known output formats.
type outputFormat string

// String returns the current value for the [pflag.Value] interface.
func (f *outputFormat) String() string { return string(*f) }

// Set validates and stores a value for the [pflag.Value] interface.
func (f *outputFormat) Set(value string) error {
	switch value {
	case "tree", "json":
		*f = outputFormat(value)
		return nil
	}
	return fmt.Errorf("unknown output format %q (want tree or json)", value)
}

// Type names the value in help output for the [pflag.Value] interface.
func (f *outputFormat) Type() string { return "format" }

var _ pflag.Value = (*outputFormat)(nil)

type options struct {
	output   outputFormat
	warnings bool
	single   bool
}

func main() {
	logger := log.New(os.Stderr)
	opts := &options{output: "tree"}

	rootCmd := &cobra.Command{
		Use:   "yaml-grammar [flags] [file ...]",
		Short: "Parse YAML streams and print their token trees",
		Long: `yaml-grammar parses YAML 1.2 streams and prints the serialization-level
token tree: documents, directives, nodes, anchors, aliases, tags, and
scalar styles. With no file arguments it reads from stdin.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(opts, args, os.Stdout, logger)
		},
	}

	rootCmd.Flags().VarP(&opts.output, "output", "o", "output format: tree or json")
	rootCmd.Flags().BoolVar(&opts.warnings, "warnings", false, "print document warnings to stderr")
	rootCmd.Flags().BoolVar(&opts.single, "single", false, "fail when a stream holds more than one document")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("parse failed", "err", err)
		os.Exit(1)
	}
}

func run(opts *options, args []string, out io.Writer, logger *log.Logger) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		data, err := readInput(arg)
		if err != nil {
			return err
		}
		var parseOpts []grammar.Option
		if opts.single {
			parseOpts = append(parseOpts, grammar.WithSingleDocument())
		}
		stream, err := grammar.Parse(data, parseOpts...)
		if err != nil {
			return err
		}
		if opts.warnings {
			for _, doc := range stream.Documents {
				for _, w := range doc.Warnings {
					logger.Warn(w.Message, "line", w.Mark.Line, "column", w.Mark.Column)
				}
			}
		}
		if err := render(out, stream, string(opts.output)); err != nil {
			return err
		}
	}
	return nil
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", arg, err)
	}
	return data, nil
}
