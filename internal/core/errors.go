// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Error types for the grammar core.
// A ParseError is a hard grammar violation that aborts the stream; a
// failure is a backtrackable non-match that never escapes Parse.

package core

import (
	"errors"
	"fmt"
)

// Mark holds a position within the source stream.
type Mark struct {
	Index  int // byte offset into the source
	Line   int // 1-based line number
	Column int // 1-based column, counted in code points
}

// String returns the position in a human-readable form.
func (m Mark) String() string {
	return fmt.Sprintf("line %d, column %d", m.Line, m.Column)
}

// ParseError reports a hard violation of the YAML grammar. Alternatives
// never recover from a ParseError; it surfaces at the enclosing document
// and aborts the whole stream.
type ParseError struct {
	Mark          Mark
	Message       string
	DocumentIndex int
}

// Error returns the error message with position information.
func (e *ParseError) Error() string {
	return fmt.Sprintf("yaml: %s: %s", e.Mark, e.Message)
}

// Warning records a non-fatal diagnostic attached to a document, such as
// an unsupported %YAML version or an unknown directive name.
type Warning struct {
	Mark    Mark
	Message string
}

// String returns the warning message with position information.
func (w Warning) String() string {
	return fmt.Sprintf("yaml: %s: warning: %s", w.Mark, w.Message)
}

// failure marks a backtrackable non-match. Ordered choice recovers from
// a failure by trying the next alternative.
type failure struct {
	msg  string
	mark Mark
}

// Error returns the failure message.
func (f *failure) Error() string {
	return f.msg
}

// isFailure reports whether err is a backtrackable non-match rather than
// a hard ParseError.
func isFailure(err error) bool {
	var f *failure
	return errors.As(err, &f)
}
