// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Shared helpers for the core tests: parsing with failure reporting and
// a compact rendering of token trees that the data-driven fixtures
// compare against.

package core

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// mustParse parses src and fails the test on error.
func mustParse(t *testing.T, src string, opts ...Option) *Stream {
	t.Helper()
	stream, err := ParseString(src, opts...)
	require.NoError(t, err, "input:\n%s", src)
	return stream
}

// mustParseDoc parses src and returns the root of its only document.
func mustParseDoc(t *testing.T, src string, opts ...Option) *Node {
	t.Helper()
	stream := mustParse(t, src, opts...)
	require.Len(t, stream.Documents, 1, "input:\n%s", src)
	return stream.Documents[0].Root
}

// mustFail parses src and requires a *ParseError.
func mustFail(t *testing.T, src string) *ParseError {
	t.Helper()
	_, err := ParseString(src)
	require.Error(t, err, "input:\n%s", src)
	pe, ok := err.(*ParseError)
	require.True(t, ok, "error is %T, want *ParseError", err)
	return pe
}

// renderNode renders a node in the compact form the fixtures use:
// scalars as quoted strings with a style prefix (plain scalars have
// none), sequences as [a, b], mappings as {k: v}, aliases as *name,
// empty nodes as ~, with &anchor and tag prefixes where present.
func renderNode(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	if n.Anchor != "" {
		b.WriteString("&" + n.Anchor + " ")
	}
	if !n.Tag.IsZero() {
		b.WriteString(n.Tag.String() + " ")
	}
	switch n.Kind {
	case ScalarNode:
		switch n.Style {
		case SingleQuotedStyle:
			b.WriteString("sq")
		case DoubleQuotedStyle:
			b.WriteString("dq")
		case LiteralStyle:
			b.WriteString("lit")
		case FoldedStyle:
			b.WriteString("fold")
		}
		b.WriteString(strconv.Quote(n.Value))
	case AliasNode:
		b.WriteString("*" + n.Value)
	case EmptyNode:
		b.WriteString("~")
	case SequenceNode:
		parts := make([]string, 0, len(n.Items))
		for _, item := range n.Items {
			parts = append(parts, renderNode(item))
		}
		b.WriteString("[" + strings.Join(parts, ", ") + "]")
	case MappingNode:
		parts := make([]string, 0, len(n.Pairs))
		for _, pair := range n.Pairs {
			parts = append(parts, renderNode(pair.Key)+": "+renderNode(pair.Value))
		}
		b.WriteString("{" + strings.Join(parts, ", ") + "}")
	}
	return b.String()
}

// renderStream renders every document root, separated by " | ".
func renderStream(s *Stream) string {
	parts := make([]string, 0, len(s.Documents))
	for _, doc := range s.Documents {
		parts = append(parts, renderNode(doc.Root))
	}
	return strings.Join(parts, " | ")
}
