// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Comments. Comment content is discarded; only structure is preserved.

package core

// commentText consumes c-nb-comment-text [75] if the cursor sits on "#".
func (p *parser) commentText(cu cursor) cursor {
	if cu.peek() != '#' {
		return cu
	}
	cu = cu.advance()
	for isNBChar(cu.peek()) {
		cu = cu.advance()
	}
	return cu
}

// bComment consumes b-comment [76]: a break or the end of input.
func (p *parser) bComment(cu cursor) (cursor, error) {
	if cu.eof() {
		return cu, nil
	}
	return p.lineBreak(cu)
}

// sBComment consumes s-b-comment [77]: an optional separated comment,
// then the end of the line.
func (p *parser) sBComment(cu cursor) (cursor, error) {
	if next, err := p.separateInLine(cu); err == nil {
		cu = p.commentText(next)
	}
	return p.bComment(cu)
}

// lComment consumes l-comment [78]: a full comment line, which may be
// blank.
func (p *parser) lComment(cu cursor) (cursor, error) {
	cu, err := p.separateInLine(cu)
	if err != nil {
		return cu, err
	}
	cu = p.commentText(cu)
	return p.bComment(cu)
}

// sLComments consumes s-l-comments [79]: the rest of the current line if
// it holds only a comment, plus any number of following comment or blank
// lines. At the start of a line the leading part matches zero-width.
func (p *parser) sLComments(cu cursor) (cursor, error) {
	next, err := p.sBComment(cu)
	if err != nil {
		if !cu.startOfLine() {
			return cu, p.failf(cu, "expected a comment or a line break")
		}
		next = cu
	}
	for {
		after, err := p.lComment(next)
		if err != nil || after.off == next.off {
			break
		}
		next = after
	}
	return next, nil
}
