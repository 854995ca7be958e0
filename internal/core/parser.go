// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package core implements the YAML 1.2 core grammar: a recursive descent
// evaluator over an immutable input cursor, producing a serialization
// level token tree of documents, nodes, anchors, aliases, tags, scalar
// styles, and block/flow structure.
//
// Each parsing function corresponds to one or more productions of the
// YAML 1.2 grammar and is annotated with the rule numbers it implements.
// A function either succeeds and returns the next cursor, returns a
// failure that ordered choice recovers from, or returns a *ParseError
// that aborts the stream. Whitespace is never skipped implicitly.
package core

import "fmt"

type parser struct {
	cfg config

	// Per-document state, reset by resetDocument.
	docIndex   int
	directives []Directive
	warnings   []Warning
	tagHandles map[string]string
	yamlSeen   bool

	// inDocument enables the c-forbidden [206] check while the top-level
	// node of a document is being parsed.
	inDocument bool

	depth int
}

// Parse parses a complete YAML character stream into its token tree.
// The input must be UTF-8; byte order mark stripping and transcoding are
// the caller's responsibility, though a single leading BOM is tolerated.
func Parse(data []byte, opts ...Option) (*Stream, error) {
	return ParseString(string(data), opts...)
}

// ParseString is like Parse but takes the stream as a string.
func ParseString(src string, opts ...Option) (*Stream, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	p := &parser{cfg: cfg}
	stream, err := p.stream(newCursor(src))
	if err != nil {
		return nil, err
	}
	if cfg.singleDocument && len(stream.Documents) > 1 {
		return nil, &ParseError{
			Mark:          stream.Documents[1].Mark,
			Message:       "expected a single document in the stream",
			DocumentIndex: 1,
		}
	}
	return stream, nil
}

func (p *parser) resetDocument() {
	p.directives = nil
	p.warnings = nil
	p.yamlSeen = false
	p.tagHandles = map[string]string{
		"!":  "!",
		"!!": "tag:yaml.org,2002:",
	}
}

// failf returns a backtrackable non-match.
func (p *parser) failf(cu cursor, format string, args ...any) error {
	return &failure{msg: fmt.Sprintf(format, args...), mark: cu.mark()}
}

// errorf returns a hard grammar violation that aborts the stream.
func (p *parser) errorf(cu cursor, format string, args ...any) error {
	return &ParseError{
		Mark:          cu.mark(),
		Message:       fmt.Sprintf(format, args...),
		DocumentIndex: p.docIndex,
	}
}

// warnf attaches a non-fatal diagnostic to the current document.
func (p *parser) warnf(cu cursor, format string, args ...any) {
	p.warnings = append(p.warnings, Warning{
		Mark:    cu.mark(),
		Message: fmt.Sprintf(format, args...),
	})
}

// enter guards against pathological nesting; every node production calls
// it and pairs it with leave.
func (p *parser) enter(cu cursor) error {
	p.depth++
	if p.depth > p.cfg.maxDepth {
		return p.errorf(cu, "exceeded maximum node nesting depth of %d", p.cfg.maxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// forbidden implements the c-forbidden [206] exclusion: while a document
// body is being parsed, a line beginning with "---" or "..." followed by
// whitespace or end of input belongs to the stream, not to the document.
func (p *parser) forbidden(cu cursor) bool {
	if !p.inDocument || !cu.startOfLine() {
		return false
	}
	rest := cu.src[cu.off:]
	if len(rest) < 3 {
		return false
	}
	if rest[:3] != "---" && rest[:3] != "..." {
		return false
	}
	r := cu.peekAt(3)
	return r == eofRune || isWhite(r) || isBreak(r)
}

// emptyNode produces an e-node [106] at the given position.
func emptyNode(cu cursor) *Node {
	return &Node{Kind: EmptyNode, Mark: cu.mark()}
}
