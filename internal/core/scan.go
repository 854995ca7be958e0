// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Low-level scanners: line breaks, indentation counters, and separation.

package core

// lineBreak consumes b-break [28]: CR LF, CR, or LF. When a break
// contributes to scalar content it is always normalized to a single LF.
func (p *parser) lineBreak(cu cursor) (cursor, error) {
	switch cu.peek() {
	case '\r':
		cu = cu.advance()
		if cu.peek() == '\n' {
			cu = cu.advance()
		}
		return cu, nil
	case '\n':
		return cu.advance(), nil
	}
	return cu, p.failf(cu, "expected a line break")
}

// indent consumes s-indent(n) [63]: exactly n spaces. Tabs never count
// as indentation.
func (p *parser) indent(cu cursor, n int) (cursor, error) {
	for i := 0; i < n; i++ {
		if cu.peek() != ' ' {
			return cu, p.failf(cu, "expected %d spaces of indentation", n)
		}
		cu = cu.advance()
	}
	return cu, nil
}

// indentLess consumes s-indent(<n) [64]: a full run of spaces shorter
// than n.
func (p *parser) indentLess(cu cursor, n int) (cursor, error) {
	if countSpaces(cu) >= n {
		return cu, p.failf(cu, "expected fewer than %d spaces of indentation", n)
	}
	for cu.peek() == ' ' {
		cu = cu.advance()
	}
	return cu, nil
}

// indentLessEq consumes s-indent(≤n) [65]: a full run of at most n
// spaces.
func (p *parser) indentLessEq(cu cursor, n int) (cursor, error) {
	if countSpaces(cu) > n {
		return cu, p.failf(cu, "expected at most %d spaces of indentation", n)
	}
	for cu.peek() == ' ' {
		cu = cu.advance()
	}
	return cu, nil
}

// separateInLine consumes s-separate-in-line [66]: one or more blanks,
// or a zero-width match at the start of a line.
func (p *parser) separateInLine(cu cursor) (cursor, error) {
	if isWhite(cu.peek()) {
		for isWhite(cu.peek()) {
			cu = cu.advance()
		}
		return cu, nil
	}
	if cu.startOfLine() {
		return cu, nil
	}
	return cu, p.failf(cu, "expected whitespace")
}

// separate consumes s-separate(n,c) [80]: in key contexts separation is
// confined to the line; elsewhere it may span comment lines and resume
// at the flow line prefix.
func (p *parser) separate(cu cursor, n int, c context) (cursor, error) {
	switch c {
	case blockKey, flowKey:
		return p.separateInLine(cu)
	}
	// s-separate-lines(n) [81]
	if next, err := p.sLComments(cu); err == nil {
		if !p.forbidden(next) {
			if next, err := p.flowLinePrefix(next, n); err == nil {
				return next, nil
			}
		}
	}
	return p.separateInLine(cu)
}

// skipSeparate consumes an optional s-separate(n,c).
func (p *parser) skipSeparate(cu cursor, n int, c context) cursor {
	next, err := p.separate(cu, n, c)
	if err != nil {
		return cu
	}
	return next
}
