// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package datatest loads YAML-driven test cases from fixture files.
//
// The fixtures are decoded with an independent YAML implementation so
// the test suite never bootstraps on the parser under test.
package datatest

import (
	"os"
	"testing"

	yaml "github.com/goccy/go-yaml"
)

// Case is one data-driven test case.
type Case struct {
	// Name identifies the case in test output.
	Name string `yaml:"name"`

	// YAML is the input stream handed to the parser.
	YAML string `yaml:"yaml"`

	// Want is the expected rendering of the parse result; its format is
	// up to the test that runs the cases.
	Want string `yaml:"want"`

	// Fail marks cases whose input must not parse. Error, when set, is
	// a substring the reported error must contain.
	Fail  bool   `yaml:"fail"`
	Error string `yaml:"error"`
}

// Load reads the cases from a fixture file.
func Load(tb testing.TB, path string) []Case {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("reading fixture %s: %v", path, err)
	}
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		tb.Fatalf("decoding fixture %s: %v", path, err)
	}
	if len(cases) == 0 {
		tb.Fatalf("fixture %s holds no cases", path)
	}
	return cases
}

// Run loads a fixture file and runs fn as a subtest for every case.
func Run(t *testing.T, path string, fn func(t *testing.T, tc Case)) {
	t.Helper()
	for _, tc := range Load(t, path) {
		t.Run(tc.Name, func(t *testing.T) {
			fn(t, tc)
		})
	}
}
