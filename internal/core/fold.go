// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Line prefixes, empty lines, and folding.
// These productions turn the raw breaks of a multi-line scalar into its
// normalized content: interior breaks fold to a single space, empty lines
// are kept as line feeds, and the indentation of continuation lines is
// discarded.

package core

import "strings"

// linePrefix consumes s-line-prefix(n,c) [67].
func (p *parser) linePrefix(cu cursor, n int, c context) (cursor, error) {
	switch c {
	case blockOut, blockIn:
		return p.indent(cu, n)
	default:
		return p.flowLinePrefix(cu, n)
	}
}

// flowLinePrefix consumes s-flow-line-prefix(n) [69]: the indentation
// plus any additional blanks on a flow continuation line.
func (p *parser) flowLinePrefix(cu cursor, n int) (cursor, error) {
	cu, err := p.indent(cu, n)
	if err != nil {
		return cu, err
	}
	if next, err := p.separateInLine(cu); err == nil {
		cu = next
	}
	return cu, nil
}

// emptyLine consumes l-empty(n,c) [70]: a line holding nothing beyond
// its prefix. It contributes one line feed to scalar content.
func (p *parser) emptyLine(cu cursor, n int, c context) (cursor, error) {
	next, err := p.linePrefix(cu, n, c)
	if err != nil {
		next, err = p.indentLess(cu, n)
		if err != nil {
			return cu, err
		}
	}
	after, err := p.lineBreak(next)
	if err != nil {
		return cu, p.failf(next, "expected an empty line")
	}
	return after, nil
}

// trimmed consumes b-l-trimmed(n,c) [71]: a break followed by one or
// more empty lines. The first break is discarded and every empty line
// becomes a line feed.
func (p *parser) trimmed(cu cursor, n int, c context) (string, cursor, error) {
	cu2, err := p.lineBreak(cu)
	if err != nil {
		return "", cu, err
	}
	var b strings.Builder
	count := 0
	for {
		next, err := p.emptyLine(cu2, n, c)
		if err != nil {
			break
		}
		b.WriteByte('\n')
		count++
		cu2 = next
	}
	if count == 0 {
		return "", cu, p.failf(cu2, "expected an empty line")
	}
	return b.String(), cu2, nil
}

// folded consumes b-l-folded(n,c) [73]: trimmed empty lines, or a single
// break folded to a space.
func (p *parser) folded(cu cursor, n int, c context) (string, cursor, error) {
	if s, next, err := p.trimmed(cu, n, c); err == nil {
		return s, next, nil
	}
	next, err := p.lineBreak(cu)
	if err != nil {
		return "", cu, err
	}
	return " ", next, nil
}

// flowFolded consumes s-flow-folded(n) [74]: folding as it applies
// inside flow scalars, ending past the prefix of the continuation line.
func (p *parser) flowFolded(cu cursor, n int) (string, cursor, error) {
	if next, err := p.separateInLine(cu); err == nil {
		cu = next
	}
	s, cu, err := p.folded(cu, n, flowIn)
	if err != nil {
		return "", cu, err
	}
	if p.forbidden(cu) {
		return "", cu, p.failf(cu, "document marker terminates the scalar")
	}
	cu, err = p.flowLinePrefix(cu, n)
	if err != nil {
		return "", cu, err
	}
	return s, cu, nil
}
