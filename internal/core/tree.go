// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Token tree entities.
// The parser produces a single immutable tree rooted at Stream. Scalar
// values are owned strings holding the normalized content; the tree keeps
// no references into the source buffer.

package core

import "go.yaml.in/grammar/internal/uriutil"

// NodeKind represents the type of a node in the token tree.
type NodeKind int

// Node kinds.
const (
	// ScalarNode holds normalized scalar content.
	ScalarNode NodeKind = iota + 1

	// SequenceNode holds an ordered list of child nodes.
	SequenceNode

	// MappingNode holds an ordered list of key/value pairs.
	MappingNode

	// AliasNode references a previously anchored node by name.
	AliasNode

	// EmptyNode stands for an omitted node; it may carry properties.
	EmptyNode
)

// String returns the kind name.
func (k NodeKind) String() string {
	switch k {
	case ScalarNode:
		return "scalar"
	case SequenceNode:
		return "sequence"
	case MappingNode:
		return "mapping"
	case AliasNode:
		return "alias"
	case EmptyNode:
		return "empty"
	}
	return "<unknown node kind>"
}

// Style represents the presentation style a node had in the source.
type Style int

// Node styles.
const (
	PlainStyle Style = iota + 1
	SingleQuotedStyle
	DoubleQuotedStyle
	LiteralStyle
	FoldedStyle
	FlowStyle
	BlockStyle
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case PlainStyle:
		return "plain"
	case SingleQuotedStyle:
		return "single-quoted"
	case DoubleQuotedStyle:
		return "double-quoted"
	case LiteralStyle:
		return "literal"
	case FoldedStyle:
		return "folded"
	case FlowStyle:
		return "flow"
	case BlockStyle:
		return "block"
	}
	return "<unknown style>"
}

// TagKind discriminates the forms a tag property can take.
type TagKind int

// Tag kinds.
const (
	// NoTag marks a node without a tag property.
	NoTag TagKind = iota

	// VerbatimTag is a "!<uri>" property.
	VerbatimTag

	// ShorthandTag is a handle plus suffix, such as "!!str" or "!e!tag".
	ShorthandTag

	// NonSpecificTag is a bare "!".
	NonSpecificTag
)

// Tag is a tag property attached to a node.
type Tag struct {
	Kind TagKind

	// URI is the verbatim tag content, without the "!<" and ">".
	URI string

	// Handle and Suffix hold the two parts of a shorthand tag. Prefix is
	// the expansion the handle was bound to when the tag was parsed.
	Handle string
	Suffix string
	Prefix string
}

// IsZero reports whether the node carried no tag property.
func (t Tag) IsZero() bool {
	return t.Kind == NoTag
}

// Resolved returns the full tag: the verbatim URI, or the bound prefix
// concatenated with the suffix. Non-specific tags resolve to "!".
func (t Tag) Resolved() string {
	switch t.Kind {
	case VerbatimTag:
		return t.URI
	case ShorthandTag:
		return t.Prefix + t.Suffix
	case NonSpecificTag:
		return "!"
	}
	return ""
}

// Normalized returns the resolved tag with its percent escapes in
// canonical form, suitable for comparing two tags for identity.
func (t Tag) Normalized() string {
	decoded, err := uriutil.PercentDecode(t.Resolved())
	if err != nil {
		return t.Resolved()
	}
	return uriutil.PercentEncode(decoded)
}

// String returns the tag as it appeared in the source.
func (t Tag) String() string {
	switch t.Kind {
	case VerbatimTag:
		return "!<" + t.URI + ">"
	case ShorthandTag:
		return t.Handle + t.Suffix
	case NonSpecificTag:
		return "!"
	}
	return ""
}

// Pair is a single mapping entry. Keys may be any node, including
// collections.
type Pair struct {
	Key   *Node
	Value *Node
}

// Node is an element of the token tree: a scalar, sequence, mapping,
// alias, or empty node, together with its optional anchor and tag
// properties and its position in the source.
type Node struct {
	Kind  NodeKind
	Style Style

	// Value holds normalized scalar content, with every line break
	// encoded as a single U+000A. For alias nodes it holds the
	// referenced anchor name.
	Value string

	// Items holds sequence entries, in source order.
	Items []*Node

	// Pairs holds mapping entries, in source order.
	Pairs []Pair

	// Anchor is the node's anchor name, if any.
	Anchor string

	// Tag is the node's tag property, if any.
	Tag Tag

	Mark Mark
}

// DirectiveKind discriminates the recognized directive forms.
type DirectiveKind int

// Directive kinds.
const (
	// VersionDirective is a %YAML directive.
	VersionDirective DirectiveKind = iota + 1

	// TagDirective is a %TAG directive.
	TagDirective

	// ReservedDirective is any other directive; it is recorded and
	// reported as a warning.
	ReservedDirective
)

// String returns the directive kind name.
func (k DirectiveKind) String() string {
	switch k {
	case VersionDirective:
		return "YAML"
	case TagDirective:
		return "TAG"
	case ReservedDirective:
		return "reserved"
	}
	return "<unknown directive kind>"
}

// Directive is a %YAML, %TAG, or reserved directive. The declared version
// of a %YAML directive is preserved verbatim even when it is newer than
// the version this parser implements.
type Directive struct {
	Kind DirectiveKind

	// Major and Minor hold the declared version of a %YAML directive.
	Major int
	Minor int

	// Handle and Prefix hold the binding of a %TAG directive.
	Handle string
	Prefix string

	// Name and Params hold a reserved directive.
	Name   string
	Params []string

	Mark Mark
}

// DocumentKind records how a document was introduced in the stream.
type DocumentKind int

// Document kinds.
const (
	// BareDocument has neither directives nor a "---" marker.
	BareDocument DocumentKind = iota + 1

	// ExplicitDocument begins with "---".
	ExplicitDocument

	// DirectiveDocument begins with one or more directives.
	DirectiveDocument
)

// String returns the document kind name.
func (k DocumentKind) String() string {
	switch k {
	case BareDocument:
		return "bare"
	case ExplicitDocument:
		return "explicit"
	case DirectiveDocument:
		return "directive"
	}
	return "<unknown document kind>"
}

// Document is one document of a stream: its directives, its top-level
// node, and any warnings collected while parsing it.
type Document struct {
	Kind       DocumentKind
	Directives []Directive
	Root       *Node
	Warnings   []Warning
	Mark       Mark
}

// Stream is the root of the token tree: the documents of one YAML
// character stream, in source order.
type Stream struct {
	Documents []*Document
}
