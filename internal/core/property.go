// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Node properties [96]-[104]: anchors and tags, including validation of
// tag URIs, plus alias nodes.

package core

import (
	"strings"

	"go.yaml.in/grammar/internal/uriutil"
)

// scanURIChars consumes a run of ns-uri-char [39], validating percent
// escapes as it goes. When tagOnly is set the run is restricted to
// ns-tag-char [40].
func (p *parser) scanURIChars(cu cursor, tagOnly bool) (string, cursor, error) {
	start := cu
	for {
		r := cu.peek()
		if tagOnly && !isTagChar(r) {
			break
		}
		if !tagOnly && !isURIChar(r) {
			break
		}
		if r == '%' {
			if !isHexDigit(cu.peekAt(1)) || !isHexDigit(cu.peekAt(2)) {
				return "", cu, p.errorf(cu, "invalid percent escape in tag URI")
			}
			cu = cu.advance().advance().advance()
			continue
		}
		cu = cu.advance()
	}
	return start.between(cu), cu, nil
}

// isAbsoluteURI reports whether s has the shape of an RFC 2396 absolute
// URI: a scheme followed by ":" and a non-empty remainder of URI
// characters.
func isAbsoluteURI(s string) bool {
	colon := strings.IndexByte(s, ':')
	if colon <= 0 || colon == len(s)-1 {
		return false
	}
	scheme := s[:colon]
	if !isASCIILetter(rune(scheme[0])) {
		return false
	}
	for _, r := range scheme[1:] {
		if !isASCIILetter(r) && !isDecDigit(r) && r != '+' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// validTagURI reports whether a resolved tag is a local tag or an
// absolute URI. The percent escapes must also decode cleanly.
func validTagURI(s string) bool {
	if _, err := uriutil.PercentDecode(s); err != nil {
		return false
	}
	if strings.HasPrefix(s, "!") {
		return len(s) > 1
	}
	return isAbsoluteURI(s)
}

// tagHandle consumes c-tag-handle [89]: "!", "!!", or "!name!".
func (p *parser) tagHandle(cu cursor) (string, cursor, error) {
	if cu.peek() != '!' {
		return "", cu, p.failf(cu, "expected '!'")
	}
	start := cu
	cu = cu.advance()
	word := cu
	for isWordChar(word.peek()) {
		word = word.advance()
	}
	if word.peek() == '!' {
		word = word.advance()
		return start.between(word), word, nil
	}
	return "!", cu, nil
}

// tagProperty parses c-ns-tag-property [97]: a verbatim tag, a shorthand
// tag, or the non-specific "!".
func (p *parser) tagProperty(cu cursor) (Tag, cursor, error) {
	if cu.peek() != '!' {
		return Tag{}, cu, p.failf(cu, "expected a tag property")
	}
	start := cu
	if cu.peekAt(1) == '<' {
		// c-verbatim-tag [97]
		cu2 := cu.advance().advance()
		uri, cu2, err := p.scanURIChars(cu2, false)
		if err != nil {
			return Tag{}, cu, err
		}
		if uri == "" {
			return Tag{}, cu, p.errorf(cu2, "verbatim tag must contain at least one character")
		}
		if cu2.peek() != '>' {
			return Tag{}, cu, p.errorf(cu2, "did not find expected '>' closing a verbatim tag")
		}
		cu2 = cu2.advance()
		if !validTagURI(uri) {
			return Tag{}, cu, p.errorf(start, "verbatim tag %q is neither a local tag nor an absolute URI", uri)
		}
		return Tag{Kind: VerbatimTag, URI: uri}, cu2, nil
	}

	handle, cu2, err := p.tagHandle(cu)
	if err != nil {
		return Tag{}, cu, err
	}
	suffix, cu3, err := p.scanURIChars(cu2, true)
	if err != nil {
		return Tag{}, cu, err
	}
	if suffix == "" {
		if handle != "!" {
			return Tag{}, cu, p.errorf(cu3, "expected a tag suffix after %q", handle)
		}
		// c-non-specific-tag [100]
		return Tag{Kind: NonSpecificTag}, cu.advance(), nil
	}
	prefix, ok := p.tagHandles[handle]
	if !ok {
		return Tag{}, cu, p.errorf(start, "tag handle %q is not declared by a %%TAG directive", handle)
	}
	if !validTagURI(prefix + suffix) {
		return Tag{}, cu, p.errorf(start, "tag %q resolves to %q, which is neither a local tag nor an absolute URI",
			handle+suffix, prefix+suffix)
	}
	return Tag{Kind: ShorthandTag, Handle: handle, Suffix: suffix, Prefix: prefix}, cu3, nil
}

// anchorName consumes ns-anchor-name [103].
func (p *parser) anchorName(cu cursor) (string, cursor, error) {
	start := cu
	for isAnchorChar(cu.peek()) {
		cu = cu.advance()
	}
	if cu.off == start.off {
		return "", cu, p.errorf(cu, "expected an anchor name")
	}
	return start.between(cu), cu, nil
}

// anchorProperty parses c-ns-anchor-property [101].
func (p *parser) anchorProperty(cu cursor) (string, cursor, error) {
	if cu.peek() != '&' {
		return "", cu, p.failf(cu, "expected an anchor property")
	}
	return p.anchorName(cu.advance())
}

// nodeProperties parses c-ns-properties(n,c) [96]: at most one tag and
// one anchor, in either order.
func (p *parser) nodeProperties(cu cursor, n int, c context) (string, Tag, cursor, error) {
	switch cu.peek() {
	case '!':
		tag, cu2, err := p.tagProperty(cu)
		if err != nil {
			return "", Tag{}, cu, err
		}
		if next, err := p.separate(cu2, n, c); err == nil {
			if anchor, cu3, err := p.anchorProperty(next); err == nil {
				return anchor, tag, cu3, nil
			} else if !isFailure(err) {
				return "", Tag{}, cu, err
			}
		}
		return "", tag, cu2, nil
	case '&':
		anchor, cu2, err := p.anchorProperty(cu)
		if err != nil {
			return "", Tag{}, cu, err
		}
		if next, err := p.separate(cu2, n, c); err == nil {
			if tag, cu3, err := p.tagProperty(next); err == nil {
				return anchor, tag, cu3, nil
			} else if !isFailure(err) {
				return "", Tag{}, cu, err
			}
		}
		return anchor, Tag{}, cu2, nil
	}
	return "", Tag{}, cu, p.failf(cu, "expected node properties")
}

// aliasNode parses c-ns-alias-node [104]. The alias records the name
// only; resolution against the most recent anchor of that name is the
// composer's job.
func (p *parser) aliasNode(cu cursor) (*Node, cursor, error) {
	if cu.peek() != '*' {
		return nil, cu, p.failf(cu, "expected an alias node")
	}
	mark := cu.mark()
	name, cu2, err := p.anchorName(cu.advance())
	if err != nil {
		return nil, cu, err
	}
	return &Node{Kind: AliasNode, Value: name, Mark: mark}, cu2, nil
}
