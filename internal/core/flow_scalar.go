// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Flow scalar styles: double-quoted [107]-[116], single-quoted
// [117]-[125], and plain [126]-[135].
//
// All three share the same shape: characters accumulate into an owned
// buffer, blanks are held back until a following content character
// commits them, and line breaks go through folding. In key contexts the
// scalars are confined to a single line.

package core

import "strings"

// doubleQuoted parses c-double-quoted(n,c) [109].
func (p *parser) doubleQuoted(cu cursor, n int, c context) (*Node, cursor, error) {
	if cu.peek() != '"' {
		return nil, cu, p.failf(cu, "expected '\"'")
	}
	mark := cu.mark()
	oneLine := c == blockKey || c == flowKey
	start := cu
	cu = cu.advance()
	var b, pending strings.Builder
	for {
		r := cu.peek()
		switch {
		case r == eofRune:
			return nil, cu, p.errorf(cu, "unterminated double-quoted scalar")
		case r == '"':
			b.WriteString(pending.String())
			return &Node{Kind: ScalarNode, Style: DoubleQuotedStyle, Value: b.String(), Mark: mark}, cu.advance(), nil
		case r == '\\' && isBreak(cu.peekAt(1)):
			// s-double-escaped(n) [112]: the break is suppressed and the
			// blanks before the backslash are kept as content.
			if oneLine {
				return nil, start, p.failf(cu, "line break inside a single-line double-quoted scalar")
			}
			b.WriteString(pending.String())
			pending.Reset()
			cu2, _ := p.lineBreak(cu.advance())
			for {
				next, err := p.emptyLine(cu2, n, flowIn)
				if err != nil {
					break
				}
				b.WriteByte('\n')
				cu2 = next
			}
			if p.forbidden(cu2) {
				return nil, cu2, p.errorf(cu2, "document marker inside double-quoted scalar")
			}
			cu2, err := p.flowLinePrefix(cu2, n)
			if err != nil {
				return nil, cu2, p.errorf(cu2, "invalid indentation of a double-quoted scalar continuation line")
			}
			cu = cu2
		case r == '\\':
			esc, cu2, err := p.escapedChar(cu.advance())
			if err != nil {
				return nil, cu, err
			}
			b.WriteString(pending.String())
			pending.Reset()
			b.WriteRune(esc)
			cu = cu2
		case isBreak(r):
			if oneLine {
				return nil, start, p.failf(cu, "line break inside a single-line double-quoted scalar")
			}
			pending.Reset()
			s, cu2, err := p.folded(cu, n, flowIn)
			if err != nil {
				return nil, cu, err
			}
			if p.forbidden(cu2) {
				return nil, cu2, p.errorf(cu2, "document marker inside double-quoted scalar")
			}
			cu2, err = p.flowLinePrefix(cu2, n)
			if err != nil {
				return nil, cu2, p.errorf(cu2, "invalid indentation of a double-quoted scalar continuation line")
			}
			b.WriteString(s)
			cu = cu2
		case isWhite(r):
			pending.WriteRune(r)
			cu = cu.advance()
		default:
			if !isJSONChar(r) || !isPrintable(r) {
				return nil, cu, p.errorf(cu, "invalid character %#U inside a double-quoted scalar", r)
			}
			b.WriteString(pending.String())
			pending.Reset()
			b.WriteRune(r)
			cu = cu.advance()
		}
	}
}

// singleQuoted parses c-single-quoted(n,c) [120]. The only escape is the
// doubled quote [43].
func (p *parser) singleQuoted(cu cursor, n int, c context) (*Node, cursor, error) {
	if cu.peek() != '\'' {
		return nil, cu, p.failf(cu, "expected \"'\"")
	}
	mark := cu.mark()
	oneLine := c == blockKey || c == flowKey
	start := cu
	cu = cu.advance()
	var b, pending strings.Builder
	for {
		r := cu.peek()
		switch {
		case r == eofRune:
			return nil, cu, p.errorf(cu, "unterminated single-quoted scalar")
		case r == '\'':
			if cu.peekAt(1) == '\'' {
				b.WriteString(pending.String())
				pending.Reset()
				b.WriteByte('\'')
				cu = cu.advance().advance()
				continue
			}
			b.WriteString(pending.String())
			return &Node{Kind: ScalarNode, Style: SingleQuotedStyle, Value: b.String(), Mark: mark}, cu.advance(), nil
		case isBreak(r):
			if oneLine {
				return nil, start, p.failf(cu, "line break inside a single-line single-quoted scalar")
			}
			pending.Reset()
			s, cu2, err := p.folded(cu, n, flowIn)
			if err != nil {
				return nil, cu, err
			}
			if p.forbidden(cu2) {
				return nil, cu2, p.errorf(cu2, "document marker inside single-quoted scalar")
			}
			cu2, err = p.flowLinePrefix(cu2, n)
			if err != nil {
				return nil, cu2, p.errorf(cu2, "invalid indentation of a single-quoted scalar continuation line")
			}
			b.WriteString(s)
			cu = cu2
		case isWhite(r):
			pending.WriteRune(r)
			cu = cu.advance()
		default:
			if !isJSONChar(r) || !isPrintable(r) {
				return nil, cu, p.errorf(cu, "invalid character %#U inside a single-quoted scalar", r)
			}
			b.WriteString(pending.String())
			pending.Reset()
			b.WriteRune(r)
			cu = cu.advance()
		}
	}
}

// plainSafe implements ns-plain-safe(c) [127]: inside flow collections
// and flow keys the flow indicators end a plain scalar.
func (p *parser) plainSafe(r rune, c context) bool {
	switch c {
	case flowIn, flowKey:
		return isNSChar(r) && !isFlowIndicator(r)
	default:
		return isNSChar(r)
	}
}

// plainFirstOK implements ns-plain-first(c) [126]: a plain scalar never
// starts with an indicator, except for "-", "?", and ":" when the next
// character is safe.
func (p *parser) plainFirstOK(cu cursor, c context) bool {
	r := cu.peek()
	if isNSChar(r) && !isIndicator(r) {
		return true
	}
	if r == '-' || r == '?' || r == ':' {
		return p.plainSafe(cu.peekAt(1), c)
	}
	return false
}

// plainInLine consumes nb-ns-plain-in-line(c) [132], appending to b.
// Blanks are committed only when a further plain character follows, so
// trailing whitespace never enters the value. A "#" continues the scalar
// only when attached to the preceding character, and a ":" only when the
// next character is safe.
func (p *parser) plainInLine(cu cursor, c context, b *strings.Builder) cursor {
	for {
		white := cu
		for isWhite(white.peek()) {
			white = white.advance()
		}
		r := white.peek()
		ok := false
		switch r {
		case ':':
			ok = p.plainSafe(white.peekAt(1), c)
		case '#':
			ok = white.off == cu.off
		default:
			ok = p.plainSafe(r, c)
		}
		if !ok {
			return cu
		}
		b.WriteString(cu.between(white))
		b.WriteRune(r)
		cu = white.advance()
	}
}

// plain parses ns-plain(n,c) [131]. In flow-out and flow-in contexts the
// scalar may continue over folded lines [135]; in key contexts it is a
// single line [133].
func (p *parser) plain(cu cursor, n int, c context) (*Node, cursor, error) {
	if !p.plainFirstOK(cu, c) {
		return nil, cu, p.failf(cu, "expected a plain scalar")
	}
	mark := cu.mark()
	var b strings.Builder
	b.WriteRune(cu.peek())
	cu = p.plainInLine(cu.advance(), c, &b)
	for c == flowOut || c == flowIn {
		// s-ns-plain-next-line(n,c) [134]
		s, cu2, err := p.flowFolded(cu, n)
		if err != nil {
			break
		}
		r := cu2.peek()
		ok := false
		switch r {
		case ':':
			ok = p.plainSafe(cu2.peekAt(1), c)
		case '#':
			ok = false
		default:
			ok = p.plainSafe(r, c)
		}
		if !ok {
			break
		}
		b.WriteString(s)
		b.WriteRune(r)
		cu = p.plainInLine(cu2.advance(), c, &b)
	}
	return &Node{Kind: ScalarNode, Style: PlainStyle, Value: b.String(), Mark: mark}, cu, nil
}
