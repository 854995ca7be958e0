// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package grammar

import "go.yaml.in/grammar/internal/core"

// -----------------------------------------------------------------------------
// Token tree type aliases and constants
// -----------------------------------------------------------------------------

// Re-export the token tree types from internal/core.
type (
	// Stream is the root of the token tree: the documents of one YAML
	// character stream, in source order.
	Stream = core.Stream

	// Document is one document of a stream: its directives, its
	// top-level node, and any warnings collected while parsing it.
	Document = core.Document

	// DocumentKind records how a document was introduced in the stream.
	DocumentKind = core.DocumentKind

	// Directive is a %YAML, %TAG, or reserved directive.
	Directive = core.Directive

	// DirectiveKind discriminates the recognized directive forms.
	DirectiveKind = core.DirectiveKind

	// Node is an element of the token tree: a scalar, sequence,
	// mapping, alias, or empty node, together with its optional anchor
	// and tag properties and its position in the source.
	Node = core.Node

	// NodeKind represents the type of a node in the token tree.
	NodeKind = core.NodeKind

	// Pair is a single mapping entry.
	Pair = core.Pair

	// Style represents the presentation style a node had in the source.
	Style = core.Style

	// Tag is a tag property attached to a node.
	Tag = core.Tag

	// TagKind discriminates the forms a tag property can take.
	TagKind = core.TagKind

	// Mark holds a position within the source stream.
	Mark = core.Mark

	// ParseError reports a hard violation of the YAML grammar.
	ParseError = core.ParseError

	// Warning records a non-fatal diagnostic attached to a document.
	Warning = core.Warning
)

// Re-export NodeKind constants.
const (
	// ScalarNode holds normalized scalar content.
	ScalarNode = core.ScalarNode

	// SequenceNode holds an ordered list of child nodes.
	SequenceNode = core.SequenceNode

	// MappingNode holds an ordered list of key/value pairs.
	MappingNode = core.MappingNode

	// AliasNode references a previously anchored node by name.
	AliasNode = core.AliasNode

	// EmptyNode stands for an omitted node.
	EmptyNode = core.EmptyNode
)

// Re-export Style constants.
const (
	// PlainStyle is an unquoted flow scalar.
	PlainStyle = core.PlainStyle

	// SingleQuotedStyle uses single quotes with doubled-quote escapes.
	SingleQuotedStyle = core.SingleQuotedStyle

	// DoubleQuotedStyle uses double quotes with backslash escapes.
	DoubleQuotedStyle = core.DoubleQuotedStyle

	// LiteralStyle is a "|" block scalar.
	LiteralStyle = core.LiteralStyle

	// FoldedStyle is a ">" block scalar.
	FoldedStyle = core.FoldedStyle

	// FlowStyle marks a bracketed collection.
	FlowStyle = core.FlowStyle

	// BlockStyle marks an indentation-delimited collection.
	BlockStyle = core.BlockStyle
)

// Re-export TagKind constants.
const (
	// NoTag marks a node without a tag property.
	NoTag = core.NoTag

	// VerbatimTag is a "!<uri>" property.
	VerbatimTag = core.VerbatimTag

	// ShorthandTag is a handle plus suffix, such as "!!str".
	ShorthandTag = core.ShorthandTag

	// NonSpecificTag is a bare "!".
	NonSpecificTag = core.NonSpecificTag
)

// Re-export DocumentKind constants.
const (
	// BareDocument has neither directives nor a "---" marker.
	BareDocument = core.BareDocument

	// ExplicitDocument begins with "---".
	ExplicitDocument = core.ExplicitDocument

	// DirectiveDocument begins with one or more directives.
	DirectiveDocument = core.DirectiveDocument
)

// Re-export DirectiveKind constants.
const (
	// VersionDirective is a %YAML directive.
	VersionDirective = core.VersionDirective

	// TagDirective is a %TAG directive.
	TagDirective = core.TagDirective

	// ReservedDirective is any other directive.
	ReservedDirective = core.ReservedDirective
)
