// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tests for directives, node properties, and tag resolution.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLDirective(t *testing.T) {
	stream := mustParse(t, "%YAML 1.2\n---\na\n")
	doc := stream.Documents[0]
	assert.Equal(t, DirectiveDocument, doc.Kind)
	require.Len(t, doc.Directives, 1)
	assert.Equal(t, VersionDirective, doc.Directives[0].Kind)
	assert.Equal(t, 1, doc.Directives[0].Major)
	assert.Equal(t, 2, doc.Directives[0].Minor)
	assert.Empty(t, doc.Warnings)
}

func TestYAMLDirectiveFutureVersion(t *testing.T) {
	// A newer version is preserved in the directive record; parsing
	// proceeds under the 1.2 rules with a warning.
	stream := mustParse(t, "%YAML 1.3\n---\na\n")
	doc := stream.Documents[0]
	require.Len(t, doc.Directives, 1)
	assert.Equal(t, 1, doc.Directives[0].Major)
	assert.Equal(t, 3, doc.Directives[0].Minor)
	require.Len(t, doc.Warnings, 1)
	assert.Contains(t, doc.Warnings[0].Message, "unsupported YAML version 1.3")

	stream = mustParse(t, "%YAML 2.0\n---\na\n")
	assert.NotEmpty(t, stream.Documents[0].Warnings)
}

func TestYAMLDirectiveOlderVersion(t *testing.T) {
	stream := mustParse(t, "%YAML 1.1\n---\na\n")
	assert.Empty(t, stream.Documents[0].Warnings)
}

func TestDuplicateYAMLDirective(t *testing.T) {
	err := mustFail(t, "%YAML 1.2\n%YAML 1.2\n---\na\n")
	assert.Contains(t, err.Message, "duplicate %YAML directive")
}

func TestDirectiveWithoutDocument(t *testing.T) {
	err := mustFail(t, "%YAML 1.2\na\n")
	assert.Contains(t, err.Message, "expected '---'")
}

func TestReservedDirective(t *testing.T) {
	stream := mustParse(t, "%FOO bar baz\n---\na\n")
	doc := stream.Documents[0]
	require.Len(t, doc.Directives, 1)
	d := doc.Directives[0]
	assert.Equal(t, ReservedDirective, d.Kind)
	assert.Equal(t, "FOO", d.Name)
	assert.Equal(t, []string{"bar", "baz"}, d.Params)
	require.Len(t, doc.Warnings, 1)
	assert.Contains(t, doc.Warnings[0].Message, "unknown directive %FOO")
}

func TestTagDirective(t *testing.T) {
	stream := mustParse(t, "%TAG !e! tag:example.com,2000:app/\n---\n!e!foo bar\n")
	doc := stream.Documents[0]
	require.Len(t, doc.Directives, 1)
	assert.Equal(t, TagDirective, doc.Directives[0].Kind)
	assert.Equal(t, "!e!", doc.Directives[0].Handle)
	assert.Equal(t, "tag:example.com,2000:app/", doc.Directives[0].Prefix)

	tag := doc.Root.Tag
	assert.Equal(t, ShorthandTag, tag.Kind)
	assert.Equal(t, "!e!", tag.Handle)
	assert.Equal(t, "foo", tag.Suffix)
	assert.Equal(t, "tag:example.com,2000:app/foo", tag.Resolved())
}

func TestDuplicateTagHandleWarning(t *testing.T) {
	stream := mustParse(t, "%TAG !e! !one-\n%TAG !e! !two-\n---\n!e!x v\n")
	doc := stream.Documents[0]
	require.Len(t, doc.Warnings, 1)
	assert.Contains(t, doc.Warnings[0].Message, `duplicate %TAG directive for handle "!e!"`)
	// The later binding wins.
	assert.Equal(t, "!two-x", doc.Root.Tag.Resolved())
}

func TestTagHandleStatePerDocument(t *testing.T) {
	err := mustFail(t, "%TAG !e! !p-\n---\n!e!x a\n...\n---\n!e!y b\n")
	assert.Contains(t, err.Message, `tag handle "!e!" is not declared`)
}

func TestDefaultTagHandles(t *testing.T) {
	node := mustParseDoc(t, "!!str text\n")
	assert.Equal(t, "tag:yaml.org,2002:str", node.Tag.Resolved())

	node = mustParseDoc(t, "!local text\n")
	assert.Equal(t, "!local", node.Tag.Resolved())

	node = mustParseDoc(t, "! text\n")
	assert.Equal(t, NonSpecificTag, node.Tag.Kind)
}

func TestVerbatimTags(t *testing.T) {
	node := mustParseDoc(t, "!<tag:yaml.org,2002:str> text\n")
	assert.Equal(t, VerbatimTag, node.Tag.Kind)
	assert.Equal(t, "tag:yaml.org,2002:str", node.Tag.URI)

	node = mustParseDoc(t, "!<!local> text\n")
	assert.Equal(t, "!local", node.Tag.URI)

	err := mustFail(t, "!<!> text\n")
	assert.Contains(t, err.Message, "verbatim tag")

	err = mustFail(t, "!<not a uri\n")
	assert.Contains(t, err.Message, "verbatim tag")

	err = mustFail(t, "!<notauri> text\n")
	assert.Contains(t, err.Message, "neither a local tag nor an absolute URI")
}

func TestTagNormalized(t *testing.T) {
	node := mustParseDoc(t, "!e%c3%a9 x\n")
	assert.Equal(t, "!e%c3%a9", node.Tag.Resolved())
	assert.Equal(t, "!e%C3%A9", node.Tag.Normalized())

	node = mustParseDoc(t, "!!str x\n")
	assert.Equal(t, "tag:yaml.org,2002:str", node.Tag.Normalized())
}

func TestNodeProperties(t *testing.T) {
	node := mustParseDoc(t, "&a !!str value\n")
	assert.Equal(t, "a", node.Anchor)
	assert.Equal(t, "tag:yaml.org,2002:str", node.Tag.Resolved())

	// Either order is accepted.
	node = mustParseDoc(t, "!!str &a value\n")
	assert.Equal(t, "a", node.Anchor)
	assert.Equal(t, "tag:yaml.org,2002:str", node.Tag.Resolved())
}

func TestAnchorAndAlias(t *testing.T) {
	node := mustParseDoc(t, "- &x one\n- *x\n")
	require.Len(t, node.Items, 2)
	assert.Equal(t, "x", node.Items[0].Anchor)
	assert.Equal(t, "one", node.Items[0].Value)
	assert.Equal(t, AliasNode, node.Items[1].Kind)
	assert.Equal(t, "x", node.Items[1].Value)
}

func TestAnchoredEmptyNode(t *testing.T) {
	// An empty node may carry properties.
	node := mustParseDoc(t, "a: &anchor\nb: c\n")
	require.Len(t, node.Pairs, 2)
	assert.Equal(t, EmptyNode, node.Pairs[0].Value.Kind)
	assert.Equal(t, "anchor", node.Pairs[0].Value.Anchor)
}

func TestPropertiesOnCollections(t *testing.T) {
	node := mustParseDoc(t, "&seq\n- a\n- b\n")
	assert.Equal(t, SequenceNode, node.Kind)
	assert.Equal(t, "seq", node.Anchor)

	node = mustParseDoc(t, "key: &m\n  a: b\n")
	assert.Equal(t, "m", node.Pairs[0].Value.Anchor)
	assert.Equal(t, MappingNode, node.Pairs[0].Value.Kind)
}

func TestAnchorNameCharacters(t *testing.T) {
	err := mustFail(t, "& x\n")
	assert.Contains(t, err.Message, "anchor name")

	node := mustParseDoc(t, "[&a x, *a]\n")
	assert.Equal(t, "a", node.Items[0].Anchor)
	assert.Equal(t, "a", node.Items[1].Value)
}
