// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Stream composition [211]. A document that does not follow a "..."
// suffix must announce itself: only explicit and directive documents may
// follow an unterminated document. The first hard error aborts the whole
// stream; documents parsed before it are discarded.

package core

// stream parses l-yaml-stream [211].
func (p *parser) stream(cu cursor) (*Stream, error) {
	stream := &Stream{}
	cu = p.documentPrefix(cu)
	allowBare := true
	for !cu.eof() {
		if atMarker(cu, "...") {
			cu2, err := p.documentSuffix(cu)
			if err != nil {
				return nil, p.hardError(err)
			}
			cu = p.documentPrefix(cu2)
			allowBare = true
			continue
		}
		if !allowBare && !atMarker(cu, "---") && cu.peek() != '%' {
			return nil, p.hardError(p.errorf(cu, "did not find expected document start '---'"))
		}
		p.docIndex = len(stream.Documents)
		doc, cu2, err := p.anyDocument(cu, allowBare)
		if err != nil {
			return nil, p.hardError(err)
		}
		stream.Documents = append(stream.Documents, doc)
		cu = p.documentPrefix(cu2)
		allowBare = false
	}
	return stream, nil
}

// hardError converts any leftover backtrackable failure into a
// ParseError at the failure position.
func (p *parser) hardError(err error) error {
	if f, ok := err.(*failure); ok {
		return &ParseError{Mark: f.mark, Message: f.msg, DocumentIndex: p.docIndex}
	}
	return err
}
