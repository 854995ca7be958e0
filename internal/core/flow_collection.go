// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Flow collections [137]-[153]: bracketed sequences, braced mappings,
// and the single-pair mappings that may appear as sequence entries.

package core

// flowSequence parses c-flow-sequence(n,c) [137]. A trailing "," before
// the closing bracket is allowed.
func (p *parser) flowSequence(cu cursor, n int, c context) (*Node, cursor, error) {
	if cu.peek() != '[' {
		return nil, cu, p.failf(cu, "expected '['")
	}
	if err := p.enter(cu); err != nil {
		return nil, cu, err
	}
	defer p.leave()
	mark := cu.mark()
	// In key contexts the sequence is confined to one line; a mismatch
	// there is a non-match, so the caller can try a non-key reading.
	oneLine := c == blockKey || c == flowKey
	cu = p.skipSeparate(cu.advance(), n, c)
	inC := inFlow(c)
	node := &Node{Kind: SequenceNode, Style: FlowStyle, Mark: mark}
	for {
		if cu.peek() == ']' {
			return node, cu.advance(), nil
		}
		entry, cu2, err := p.flowSeqEntry(cu, n, inC)
		if err != nil {
			if !isFailure(err) {
				return nil, cu, err
			}
			if oneLine {
				return nil, cu, p.failf(cu, "did not find expected ',' or ']' in a single-line flow sequence")
			}
			return nil, cu, p.errorf(cu, "did not find expected ',' or ']' in flow sequence")
		}
		node.Items = append(node.Items, entry)
		cu = p.skipSeparate(cu2, n, c)
		switch cu.peek() {
		case ',':
			cu = p.skipSeparate(cu.advance(), n, c)
		case ']':
			return node, cu.advance(), nil
		default:
			if oneLine {
				return nil, cu, p.failf(cu, "did not find expected ',' or ']' in a single-line flow sequence")
			}
			return nil, cu, p.errorf(cu, "did not find expected ',' or ']' in flow sequence")
		}
	}
}

// flowSeqEntry parses ns-flow-seq-entry(n,c) [139]: a single-pair
// mapping or a flow node.
func (p *parser) flowSeqEntry(cu cursor, n int, c context) (*Node, cursor, error) {
	if node, cu2, err := p.flowPair(cu, n, c); err == nil {
		return node, cu2, nil
	} else if !isFailure(err) {
		return nil, cu, err
	}
	return p.flowNode(cu, n, c)
}

// flowMapping parses c-flow-mapping(n,c) [140].
func (p *parser) flowMapping(cu cursor, n int, c context) (*Node, cursor, error) {
	if cu.peek() != '{' {
		return nil, cu, p.failf(cu, "expected '{'")
	}
	if err := p.enter(cu); err != nil {
		return nil, cu, err
	}
	defer p.leave()
	mark := cu.mark()
	cu = p.skipSeparate(cu.advance(), n, c)
	inC := inFlow(c)
	node := &Node{Kind: MappingNode, Style: FlowStyle, Mark: mark}
	for {
		if cu.peek() == '}' {
			return node, cu.advance(), nil
		}
		entry, cu2, err := p.flowMapEntry(cu, n, inC)
		if err != nil {
			if !isFailure(err) {
				return nil, cu, err
			}
			return nil, cu, p.errorf(cu, "did not find expected ',' or '}' in flow mapping")
		}
		node.Pairs = append(node.Pairs, entry)
		cu = p.skipSeparate(cu2, n, c)
		switch cu.peek() {
		case ',':
			cu = p.skipSeparate(cu.advance(), n, c)
		case '}':
			return node, cu.advance(), nil
		default:
			return nil, cu, p.errorf(cu, "did not find expected ',' or '}' in flow mapping")
		}
	}
}

// flowMapEntry parses ns-flow-map-entry(n,c) [142].
func (p *parser) flowMapEntry(cu cursor, n int, c context) (Pair, cursor, error) {
	if cu.peek() == '?' {
		if next, err := p.separate(cu.advance(), n, c); err == nil {
			return p.flowMapExplicitEntry(next, n, c)
		}
	}
	return p.flowMapImplicitEntry(cu, n, c)
}

// flowMapExplicitEntry parses ns-flow-map-explicit-entry(n,c) [143]:
// after "? " an implicit entry, or nothing at all.
func (p *parser) flowMapExplicitEntry(cu cursor, n int, c context) (Pair, cursor, error) {
	if pair, cu2, err := p.flowMapImplicitEntry(cu, n, c); err == nil {
		return pair, cu2, nil
	} else if !isFailure(err) {
		return Pair{}, cu, err
	}
	return Pair{Key: emptyNode(cu), Value: emptyNode(cu)}, cu, nil
}

// flowMapImplicitEntry parses ns-flow-map-implicit-entry(n,c) [144].
func (p *parser) flowMapImplicitEntry(cu cursor, n int, c context) (Pair, cursor, error) {
	// ns-flow-map-yaml-key-entry [145]
	if key, cu2, err := p.flowYAMLNode(cu, n, c); err == nil {
		after := p.skipSeparate(cu2, n, c)
		if value, cu3, err := p.flowMapSeparateValue(after, n, c); err == nil {
			return Pair{Key: key, Value: value}, cu3, nil
		} else if !isFailure(err) {
			return Pair{}, cu, err
		}
		return Pair{Key: key, Value: emptyNode(cu2)}, cu2, nil
	} else if !isFailure(err) {
		return Pair{}, cu, err
	}
	// c-ns-flow-map-empty-key-entry [146]
	if value, cu2, err := p.flowMapSeparateValue(cu, n, c); err == nil {
		return Pair{Key: emptyNode(cu), Value: value}, cu2, nil
	} else if !isFailure(err) {
		return Pair{}, cu, err
	}
	// c-ns-flow-map-json-key-entry [148]
	key, cu2, err := p.flowJSONNode(cu, n, c)
	if err != nil {
		return Pair{}, cu, err
	}
	after := p.skipSeparate(cu2, n, c)
	if value, cu3, err := p.flowMapAdjacentValue(after, n, c); err == nil {
		return Pair{Key: key, Value: value}, cu3, nil
	} else if !isFailure(err) {
		return Pair{}, cu, err
	}
	return Pair{Key: key, Value: emptyNode(cu2)}, cu2, nil
}

// flowMapSeparateValue parses c-ns-flow-map-separate-value(n,c) [147]:
// a ":" that is not the start of a plain scalar, then a separated value
// or nothing.
func (p *parser) flowMapSeparateValue(cu cursor, n int, c context) (*Node, cursor, error) {
	if cu.peek() != ':' {
		return nil, cu, p.failf(cu, "expected ':'")
	}
	if p.plainSafe(cu.peekAt(1), c) {
		return nil, cu, p.failf(cu, "':' starts a plain scalar here")
	}
	cu = cu.advance()
	if next, err := p.separate(cu, n, c); err == nil {
		if value, cu2, err := p.flowNode(next, n, c); err == nil {
			return value, cu2, nil
		} else if !isFailure(err) {
			return nil, cu, err
		}
	}
	return emptyNode(cu), cu, nil
}

// flowMapAdjacentValue parses c-ns-flow-map-adjacent-value(n,c) [149]:
// after a JSON-like key the ":" may be adjacent to the value.
func (p *parser) flowMapAdjacentValue(cu cursor, n int, c context) (*Node, cursor, error) {
	if cu.peek() != ':' {
		return nil, cu, p.failf(cu, "expected ':'")
	}
	cu = cu.advance()
	after := p.skipSeparate(cu, n, c)
	if value, cu2, err := p.flowNode(after, n, c); err == nil {
		return value, cu2, nil
	} else if !isFailure(err) {
		return nil, cu, err
	}
	return emptyNode(cu), cu, nil
}

// flowPair parses ns-flow-pair(n,c) [150]: a mapping of exactly one
// entry appearing as a flow sequence entry.
func (p *parser) flowPair(cu cursor, n int, c context) (*Node, cursor, error) {
	mark := cu.mark()
	if cu.peek() == '?' {
		if next, err := p.separate(cu.advance(), n, c); err == nil {
			pair, cu2, err := p.flowMapExplicitEntry(next, n, c)
			if err != nil {
				return nil, cu, err
			}
			return &Node{Kind: MappingNode, Style: FlowStyle, Pairs: []Pair{pair}, Mark: mark}, cu2, nil
		}
	}
	pair, cu2, err := p.flowPairEntry(cu, n, c)
	if err != nil {
		return nil, cu, err
	}
	return &Node{Kind: MappingNode, Style: FlowStyle, Pairs: []Pair{pair}, Mark: mark}, cu2, nil
}

// flowPairEntry parses ns-flow-pair-entry(n,c) [151]. Unlike entries of
// a braced mapping, the keys here are implicit and length-bounded.
func (p *parser) flowPairEntry(cu cursor, n int, c context) (Pair, cursor, error) {
	// ns-flow-pair-yaml-key-entry [152]
	if key, cu2, span, err := p.implicitYAMLKey(cu, flowKey); err == nil {
		if value, cu3, err := p.flowMapSeparateValue(cu2, n, c); err == nil {
			if err := p.checkKeyLimit(cu, span); err != nil {
				return Pair{}, cu, err
			}
			return Pair{Key: key, Value: value}, cu3, nil
		} else if !isFailure(err) {
			return Pair{}, cu, err
		}
	} else if !isFailure(err) {
		return Pair{}, cu, err
	}
	// c-ns-flow-map-empty-key-entry [146]
	if value, cu2, err := p.flowMapSeparateValue(cu, n, c); err == nil {
		return Pair{Key: emptyNode(cu), Value: value}, cu2, nil
	} else if !isFailure(err) {
		return Pair{}, cu, err
	}
	// c-ns-flow-pair-json-key-entry [153]
	key, cu2, span, err := p.implicitJSONKey(cu, flowKey)
	if err != nil {
		return Pair{}, cu, err
	}
	value, cu3, err := p.flowMapAdjacentValue(cu2, n, c)
	if err != nil {
		return Pair{}, cu, err
	}
	if err := p.checkKeyLimit(cu, span); err != nil {
		return Pair{}, cu, err
	}
	return Pair{Key: key, Value: value}, cu3, nil
}
