// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package grammar_test

import (
	"strings"
	"testing"

	"go.yaml.in/grammar"
)

// FuzzParse checks that arbitrary input never panics the parser and
// that every successfully parsed tree honors the scalar normalization
// invariant: no carriage returns survive into scalar values.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"key: value\n",
		"- a\n- b\n",
		"%YAML 1.2\n---\nfoo: |\n  bar\n",
		"[ one, {two: three}, 'four' ]\n",
		"\"esc \\x41 \\u263A\"\n",
		"&a x\n...\n*a\n",
		"? key\n: value\n",
		"a: |+\n  keep\n\n\n",
		"--- >\n folded\n text\n",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		stream, err := grammar.ParseString(s)
		if err != nil {
			return
		}
		for _, doc := range stream.Documents {
			checkNoCR(t, doc.Root)
		}
	})
}

func checkNoCR(t *testing.T, node *grammar.Node) {
	t.Helper()
	if node == nil {
		return
	}
	if node.Kind == grammar.ScalarNode && strings.ContainsRune(node.Value, '\r') {
		t.Errorf("scalar value %q contains a carriage return", node.Value)
	}
	for _, item := range node.Items {
		checkNoCR(t, item)
	}
	for _, pair := range node.Pairs {
		checkNoCR(t, pair.Key)
		checkNoCR(t, pair.Value)
	}
}
