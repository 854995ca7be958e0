// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// White-box tests for the low-level scanners and folding primitives.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParser() *parser {
	p := &parser{cfg: defaultConfig()}
	p.resetDocument()
	return p
}

func TestIndent(t *testing.T) {
	p := testParser()

	cu, err := p.indent(newCursor("   x"), 3)
	require.NoError(t, err)
	assert.Equal(t, 'x', cu.peek())

	_, err = p.indent(newCursor("  x"), 3)
	assert.True(t, isFailure(err))

	// Tabs never satisfy indentation.
	_, err = p.indent(newCursor("\t\tx"), 1)
	assert.True(t, isFailure(err))

	// Zero and negative counts match without consuming.
	cu, err = p.indent(newCursor("x"), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, cu.off)
	_, err = p.indent(newCursor("x"), -1)
	require.NoError(t, err)
}

func TestIndentBounds(t *testing.T) {
	p := testParser()

	cu, err := p.indentLess(newCursor("  x"), 3)
	require.NoError(t, err)
	assert.Equal(t, 'x', cu.peek())

	_, err = p.indentLess(newCursor("   x"), 3)
	assert.True(t, isFailure(err))

	cu, err = p.indentLessEq(newCursor("   x"), 3)
	require.NoError(t, err)
	assert.Equal(t, 'x', cu.peek())

	_, err = p.indentLessEq(newCursor("    x"), 3)
	assert.True(t, isFailure(err))
}

func TestSeparateInLine(t *testing.T) {
	p := testParser()

	cu, err := p.separateInLine(newCursor(" \t x"))
	require.NoError(t, err)
	assert.Equal(t, 'x', cu.peek())

	// Start of line matches zero-width.
	cu, err = p.separateInLine(newCursor("x"))
	require.NoError(t, err)
	assert.Equal(t, 0, cu.off)

	// Mid-line without whitespace fails.
	mid := newCursor("xy").advance()
	_, err = p.separateInLine(mid)
	assert.True(t, isFailure(err))
}

func TestLineBreak(t *testing.T) {
	p := testParser()
	for _, src := range []string{"\nx", "\r\nx", "\rx"} {
		cu, err := p.lineBreak(newCursor(src))
		require.NoError(t, err, "input %q", src)
		assert.Equal(t, 'x', cu.peek(), "input %q", src)
		assert.Equal(t, 2, cu.line)
	}
	_, err := p.lineBreak(newCursor("x"))
	assert.True(t, isFailure(err))
}

func TestFolded(t *testing.T) {
	p := testParser()

	// A single break folds to a space.
	s, cu, err := p.folded(newCursor("\nnext"), 0, flowIn)
	require.NoError(t, err)
	assert.Equal(t, " ", s)
	assert.Equal(t, 'n', cu.peek())

	// Empty lines are kept as line feeds, one per empty line.
	s, _, err = p.folded(newCursor("\n\n\nnext"), 0, flowIn)
	require.NoError(t, err)
	assert.Equal(t, "\n\n", s)
}

func TestFlowFolded(t *testing.T) {
	p := testParser()

	s, cu, err := p.flowFolded(newCursor("  \n   next"), 1)
	require.NoError(t, err)
	assert.Equal(t, " ", s)
	assert.Equal(t, 'n', cu.peek(), "the continuation prefix is consumed")
}
