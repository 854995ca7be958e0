// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorAdvance(t *testing.T) {
	cu := newCursor("ab\ncd")
	assert.Equal(t, Mark{Index: 0, Line: 1, Column: 1}, cu.mark())
	assert.True(t, cu.startOfLine())
	assert.Equal(t, 'a', cu.peek())
	assert.Equal(t, 'b', cu.peekAt(1))
	assert.Equal(t, '\n', cu.peekAt(2))

	cu = cu.advance()
	assert.Equal(t, Mark{Index: 1, Line: 1, Column: 2}, cu.mark())
	assert.False(t, cu.startOfLine())

	cu = cu.advance().advance() // past 'b' and the break
	assert.Equal(t, Mark{Index: 3, Line: 2, Column: 1}, cu.mark())
	assert.True(t, cu.startOfLine())
}

func TestCursorCRLF(t *testing.T) {
	cu := newCursor("a\r\nb")
	cu = cu.advance() // 'a'
	cu = cu.advance() // CR of a CR LF pair: not yet a new line
	assert.Equal(t, 1, cu.line)
	cu = cu.advance() // LF
	assert.Equal(t, 2, cu.line)
	assert.Equal(t, 1, cu.col)
	assert.Equal(t, 'b', cu.peek())

	// A lone CR is a line break of its own.
	cu = newCursor("a\rb").advance().advance()
	assert.Equal(t, 2, cu.line)
	assert.Equal(t, 'b', cu.peek())
}

func TestCursorUnicode(t *testing.T) {
	cu := newCursor("é☺x")
	cu = cu.advance()
	assert.Equal(t, 2, cu.col, "columns count code points")
	assert.Equal(t, '☺', cu.peek())
	cu = cu.advance()
	assert.Equal(t, 'x', cu.peek())
	assert.Equal(t, 2, newCursor("é☺x").runesTo(cu))
}

func TestCursorEOF(t *testing.T) {
	cu := newCursor("")
	assert.True(t, cu.eof())
	assert.Equal(t, eofRune, cu.peek())
	assert.Equal(t, eofRune, cu.peekAt(3))
	assert.Equal(t, cu, cu.advance())
}

func TestCountSpaces(t *testing.T) {
	assert.Equal(t, 0, countSpaces(newCursor("a")))
	assert.Equal(t, 3, countSpaces(newCursor("   a")))
	assert.Equal(t, 1, countSpaces(newCursor(" \ta")))
}
