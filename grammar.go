// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package grammar implements the YAML 1.2 core grammar for the Go
// language: it parses a Unicode character stream into a serialization
// level token tree of documents, nodes, anchors, aliases, tags, scalar
// styles, and block/flow structure.
//
// The package covers the grammar engine only. Byte decoding and BOM
// handling, tag resolution against a schema, construction into native Go
// values, and emission are the business of other packages; the input
// here is a finite, well-formed UTF-8 character sequence and the output
// is the token tree rooted at [Stream].
//
// Parsing one stream:
//
//	stream, err := grammar.Parse(data)
//	if err != nil {
//		var pe *grammar.ParseError
//		if errors.As(err, &pe) {
//			// pe.Mark points at the offending character.
//		}
//	}
//
// Anchors and aliases are names, not references: the tree never contains
// cycles, and resolving an alias against the most recent anchor of the
// same name is left to a downstream composer.
package grammar

import "go.yaml.in/grammar/internal/core"

// Parse parses a complete YAML character stream into its token tree.
//
// The input must be well-formed UTF-8 with any byte order mark already
// stripped by the reader layer, though a single leading BOM is
// tolerated. Empty input and input holding only comments produce a
// stream with zero documents.
//
// The first hard grammar violation aborts the whole stream: Parse
// returns a *ParseError carrying the position, the message, and the
// index of the document that failed, and no partial results.
func Parse(data []byte, opts ...Option) (*Stream, error) {
	return core.Parse(data, opts...)
}

// ParseString is like [Parse] but takes the stream as a string.
func ParseString(src string, opts ...Option) (*Stream, error) {
	return core.ParseString(src, opts...)
}
