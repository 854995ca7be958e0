// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Documents [202]-[210]: prefixes, suffixes, and the bare, explicit,
// and directive document forms.

package core

import "strings"

// documentPrefix consumes l-document-prefix [202]: an optional byte
// order mark and any number of comment or blank lines.
func (p *parser) documentPrefix(cu cursor) cursor {
	if cu.peek() == 0xFEFF {
		cu = cu.advance()
	}
	for {
		next, err := p.lComment(cu)
		if err != nil || next.off == cu.off {
			return cu
		}
		cu = next
	}
}

// atMarker reports whether the cursor sits at the start of a line on the
// given three-character marker followed by whitespace, a break, or the
// end of input.
func atMarker(cu cursor, marker string) bool {
	if !cu.startOfLine() || !strings.HasPrefix(cu.src[cu.off:], marker) {
		return false
	}
	r := cu.peekAt(3)
	return r == eofRune || isWhite(r) || isBreak(r)
}

// documentSuffix consumes l-document-suffix [205]: "..." and its
// trailing comments.
func (p *parser) documentSuffix(cu cursor) (cursor, error) {
	if !atMarker(cu, "...") {
		return cu, p.failf(cu, "expected '...'")
	}
	cu2 := cu.advance().advance().advance()
	cu3, err := p.sLComments(cu2)
	if err != nil {
		return cu, p.errorf(cu2, "did not find expected comment or line break after '...'")
	}
	return cu3, nil
}

// bareDocument parses l-bare-document [207]: a top-level block node at
// indentation -1 in block-in context, with the c-forbidden exclusion
// active.
func (p *parser) bareDocument(cu cursor) (*Document, cursor, error) {
	mark := cu.mark()
	p.inDocument = true
	defer func() { p.inDocument = false }()
	if p.forbidden(cu) {
		return nil, cu, p.failf(cu, "expected document content")
	}
	node, cu2, err := p.blockNode(cu, -1, blockIn)
	if err != nil {
		return nil, cu, err
	}
	return &Document{Kind: BareDocument, Root: node, Mark: mark}, cu2, nil
}

// explicitDocument parses l-explicit-document [208]: "---" followed by
// a bare document or by nothing.
func (p *parser) explicitDocument(cu cursor) (*Document, cursor, error) {
	if !cu.startOfLine() || !strings.HasPrefix(cu.src[cu.off:], "---") {
		return nil, cu, p.failf(cu, "expected '---'")
	}
	mark := cu.mark()
	cu2 := cu.advance().advance().advance()
	if doc, cu3, err := p.bareDocument(cu2); err == nil {
		doc.Kind = ExplicitDocument
		doc.Mark = mark
		return doc, cu3, nil
	} else if !isFailure(err) {
		return nil, cu, err
	}
	node := emptyNode(cu2)
	cu3, err := p.sLComments(cu2)
	if err != nil {
		return nil, cu, err
	}
	return &Document{Kind: ExplicitDocument, Root: node, Mark: mark}, cu3, nil
}

// directiveDocument parses l-directive-document [209]: one or more
// directives, then an explicit document. Directives commit: a stream
// position starting with "%" cannot be anything else.
func (p *parser) directiveDocument(cu cursor) (*Document, cursor, error) {
	if cu.peek() != '%' {
		return nil, cu, p.failf(cu, "expected a directive")
	}
	mark := cu.mark()
	start := cu
	for {
		_, cu2, err := p.directiveLine(cu)
		if err != nil {
			if !isFailure(err) {
				return nil, cu, err
			}
			break
		}
		cu = cu2
	}
	doc, cu2, err := p.explicitDocument(cu)
	if err != nil {
		if !isFailure(err) {
			return nil, cu, err
		}
		return nil, start, p.errorf(cu, "expected '---' after the document directives")
	}
	doc.Kind = DirectiveDocument
	doc.Mark = mark
	return doc, cu2, nil
}

// anyDocument parses l-any-document [210]. Per-document state is reset
// before the attempt; collected directives and warnings are attached to
// the produced document.
func (p *parser) anyDocument(cu cursor, allowBare bool) (*Document, cursor, error) {
	p.resetDocument()
	var (
		doc *Document
		cu2 cursor
		err error
	)
	switch {
	case cu.peek() == '%':
		doc, cu2, err = p.directiveDocument(cu)
	case strings.HasPrefix(cu.src[cu.off:], "---"):
		doc, cu2, err = p.explicitDocument(cu)
		if err != nil && isFailure(err) && allowBare {
			doc, cu2, err = p.bareDocument(cu)
		}
	case allowBare:
		doc, cu2, err = p.bareDocument(cu)
	default:
		return nil, cu, p.failf(cu, "expected a document")
	}
	if err != nil {
		return nil, cu, err
	}
	doc.Directives = p.directives
	doc.Warnings = p.warnings
	return doc, cu2, nil
}
