// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Block scalars [162]-[182]: the "|" literal and ">" folded styles, with
// their header indicators, indentation detection, and chomping.
//
// The content is gathered line by line: each line is classified as empty
// or content relative to the content indentation, then the value is
// assembled under the folding and chomping rules. Auto-detected
// indentation comes from the first non-empty line, and a leading empty
// line that is more indented than that is an error.

package core

import "strings"

// blockHeader is the parsed c-b-block-header [162].
type blockHeader struct {
	indicator int // 1..9, or 0 when the indentation is auto-detected
	chomp     chomping
}

// blockScalarHeader parses the indicators after "|" or ">" in either
// order [162]-[164], then the trailing comment and break.
func (p *parser) blockScalarHeader(cu cursor) (blockHeader, cursor, error) {
	h := blockHeader{}
	readIndicator := func() error {
		r := cu.peek()
		if !isDecDigit(r) {
			return nil
		}
		if r == '0' {
			return p.errorf(cu, "block scalar indentation indicator must be between 1 and 9")
		}
		h.indicator = int(r - '0')
		cu = cu.advance()
		return nil
	}
	readChomping := func() {
		switch cu.peek() {
		case '-':
			h.chomp = chompStrip
			cu = cu.advance()
		case '+':
			h.chomp = chompKeep
			cu = cu.advance()
		}
	}
	if err := readIndicator(); err != nil {
		return h, cu, err
	}
	if h.indicator != 0 {
		readChomping()
	} else {
		readChomping()
		if err := readIndicator(); err != nil {
			return h, cu, err
		}
	}
	cu2, err := p.sBComment(cu)
	if err != nil {
		return h, cu, p.errorf(cu, "did not find expected comment or line break after block scalar header")
	}
	return h, cu2, nil
}

// scalarLine is one raw line of block scalar content.
type scalarLine struct {
	spaces   int    // absolute count of leading spaces
	text     string // content past the content indentation
	empty    bool
	hadBreak bool // false only for a final line terminated by EOF
}

// blockScalarLines collects the lines belonging to a block scalar and
// resolves the content indentation. The cursor must sit at the start of
// the first line after the header; n is the parent indentation.
func (p *parser) blockScalarLines(cu cursor, n int, h blockHeader) ([]scalarLine, int, cursor, error) {
	contentIndent := -1
	if h.indicator > 0 {
		contentIndent = n + h.indicator
		if contentIndent < 0 {
			contentIndent = 0
		}
	}
	var lines []scalarLine
	maxEmpty := 0
	for !cu.eof() {
		if p.forbidden(cu) {
			break
		}
		spaces := countSpaces(cu)
		// Look past the spaces to classify the line.
		probe := cu
		for i := 0; i < spaces; i++ {
			probe = probe.advance()
		}
		r := probe.peek()
		if r == eofRune || isBreak(r) {
			// A line of nothing but spaces: empty when it does not
			// exceed the content indentation, content otherwise.
			if contentIndent >= 0 && spaces > contentIndent {
				cu, lines = p.takeScalarText(probe, cu, contentIndent, spaces, lines)
				continue
			}
			if contentIndent < 0 && spaces > maxEmpty {
				maxEmpty = spaces
			}
			next := probe
			if r != eofRune {
				next, _ = p.lineBreak(probe)
			}
			lines = append(lines, scalarLine{spaces: spaces, empty: true, hadBreak: r != eofRune})
			cu = next
			continue
		}
		if contentIndent < 0 {
			// First non-empty line: detect the indentation [163].
			if spaces <= n {
				break
			}
			contentIndent = spaces
			if maxEmpty > contentIndent {
				return nil, 0, cu, p.errorf(cu, "a leading empty line is more indented than the first non-empty line of the block scalar")
			}
		}
		if spaces < contentIndent {
			if r == '\t' && spaces > n {
				return nil, 0, cu, p.errorf(probe, "found a tab character where an indentation space is expected")
			}
			break
		}
		cu, lines = p.takeScalarText(probe, cu, contentIndent, spaces, lines)
	}
	if contentIndent < 0 {
		contentIndent = n + 1
		if contentIndent < 0 {
			contentIndent = 0
		}
	}
	return lines, contentIndent, cu, nil
}

// takeScalarText consumes the remainder of a content line, starting from
// probe (just past the leading spaces), and appends it as a line with
// everything beyond the content indentation kept verbatim.
func (p *parser) takeScalarText(probe, lineStart cursor, contentIndent, spaces int, lines []scalarLine) (cursor, []scalarLine) {
	begin := lineStart
	for i := 0; i < contentIndent; i++ {
		begin = begin.advance()
	}
	end := probe
	for isNBChar(end.peek()) {
		end = end.advance()
	}
	text := begin.between(end)
	hadBreak := !end.eof()
	next := end
	if hadBreak {
		next, _ = p.lineBreak(end)
	}
	return next, append(lines, scalarLine{spaces: spaces, text: text, hadBreak: hadBreak})
}

// trailComments consumes l-trail-comments(n) [169] and any further
// comment lines after the end of a block scalar.
func (p *parser) trailComments(cu cursor, contentIndent int) cursor {
	spaces := countSpaces(cu)
	if spaces >= contentIndent {
		return cu
	}
	probe := cu
	for i := 0; i < spaces; i++ {
		probe = probe.advance()
	}
	if probe.peek() != '#' {
		return cu
	}
	next, err := p.sLComments(probe)
	if err != nil {
		return cu
	}
	return next
}

// chompedValue assembles the scalar value from its lines under the
// chomping method [165]-[168]. sep decides the separator between two
// adjacent content lines with empties blank lines between them, which is
// where the literal and folded styles differ.
func chompedValue(lines []scalarLine, chomp chomping, sep func(prev, next scalarLine, empties int) string) string {
	last := -1
	for i, ln := range lines {
		if !ln.empty {
			last = i
		}
	}
	var b strings.Builder
	if last == -1 {
		if chomp == chompKeep {
			for range lines {
				b.WriteByte('\n')
			}
		}
		return b.String()
	}
	prev := -1
	pendingEmpty := 0
	for i := 0; i <= last; i++ {
		ln := lines[i]
		if ln.empty {
			pendingEmpty++
			continue
		}
		if prev == -1 {
			// Leading empty lines each contribute a line feed.
			for j := 0; j < pendingEmpty; j++ {
				b.WriteByte('\n')
			}
		} else {
			b.WriteString(sep(lines[prev], ln, pendingEmpty))
		}
		b.WriteString(ln.text)
		prev = i
		pendingEmpty = 0
	}
	switch chomp {
	case chompStrip:
	case chompClip:
		if lines[last].hadBreak {
			b.WriteByte('\n')
		}
	case chompKeep:
		if lines[last].hadBreak {
			b.WriteByte('\n')
			for i := last + 1; i < len(lines); i++ {
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

// foldable reports whether a folded-style content line takes part in
// folding: more-indented lines, which start with whitespace, do not.
func foldable(ln scalarLine) bool {
	return ln.text == "" || !isWhite(rune(ln.text[0]))
}

// literalScalar parses c-l+literal(n) [170].
func (p *parser) literalScalar(cu cursor, n int) (*Node, cursor, error) {
	if cu.peek() != '|' {
		return nil, cu, p.failf(cu, "expected '|'")
	}
	mark := cu.mark()
	h, cu2, err := p.blockScalarHeader(cu.advance())
	if err != nil {
		return nil, cu, err
	}
	lines, contentIndent, cu3, err := p.blockScalarLines(cu2, n, h)
	if err != nil {
		return nil, cu, err
	}
	value := chompedValue(lines, h.chomp, func(prev, next scalarLine, empties int) string {
		return strings.Repeat("\n", empties+1)
	})
	cu3 = p.trailComments(cu3, contentIndent)
	return &Node{Kind: ScalarNode, Style: LiteralStyle, Value: value, Mark: mark}, cu3, nil
}

// foldedScalar parses c-l+folded(n) [174]. A break between two lines
// that both start with a non-space character folds to a space; breaks
// next to more-indented lines stay literal.
func (p *parser) foldedScalar(cu cursor, n int) (*Node, cursor, error) {
	if cu.peek() != '>' {
		return nil, cu, p.failf(cu, "expected '>'")
	}
	mark := cu.mark()
	h, cu2, err := p.blockScalarHeader(cu.advance())
	if err != nil {
		return nil, cu, err
	}
	lines, contentIndent, cu3, err := p.blockScalarLines(cu2, n, h)
	if err != nil {
		return nil, cu, err
	}
	value := chompedValue(lines, h.chomp, func(prev, next scalarLine, empties int) string {
		if foldable(prev) && foldable(next) {
			if empties == 0 {
				return " "
			}
			return strings.Repeat("\n", empties)
		}
		return strings.Repeat("\n", empties+1)
	})
	cu3 = p.trailComments(cu3, contentIndent)
	return &Node{Kind: ScalarNode, Style: FoldedStyle, Value: value, Mark: mark}, cu3, nil
}
