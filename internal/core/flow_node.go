// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Flow node composition [156]-[161] and the length-bounded implicit
// keys [154]-[155].

package core

// flowYAMLContent parses ns-flow-yaml-content(n,c) [156].
func (p *parser) flowYAMLContent(cu cursor, n int, c context) (*Node, cursor, error) {
	return p.plain(cu, n, c)
}

// flowJSONContent parses c-flow-json-content(n,c) [157]: the four styles
// with an unambiguous first indicator.
func (p *parser) flowJSONContent(cu cursor, n int, c context) (*Node, cursor, error) {
	switch cu.peek() {
	case '[':
		return p.flowSequence(cu, n, c)
	case '{':
		return p.flowMapping(cu, n, c)
	case '\'':
		return p.singleQuoted(cu, n, c)
	case '"':
		return p.doubleQuoted(cu, n, c)
	}
	return nil, cu, p.failf(cu, "expected a flow sequence, flow mapping, or quoted scalar")
}

// flowContent parses ns-flow-content(n,c) [158].
func (p *parser) flowContent(cu cursor, n int, c context) (*Node, cursor, error) {
	if node, cu2, err := p.flowYAMLContent(cu, n, c); err == nil {
		return node, cu2, nil
	} else if !isFailure(err) {
		return nil, cu, err
	}
	return p.flowJSONContent(cu, n, c)
}

// withProperties attaches an anchor and tag to a node.
func withProperties(node *Node, anchor string, tag Tag, mark Mark) *Node {
	node.Anchor = anchor
	node.Tag = tag
	if anchor != "" || !tag.IsZero() {
		node.Mark = mark
	}
	return node
}

// flowYAMLNode parses ns-flow-yaml-node(n,c) [159]: an alias, a plain
// scalar, or properties followed by a plain scalar or nothing.
func (p *parser) flowYAMLNode(cu cursor, n int, c context) (*Node, cursor, error) {
	if node, cu2, err := p.aliasNode(cu); err == nil {
		return node, cu2, nil
	} else if !isFailure(err) {
		return nil, cu, err
	}
	if node, cu2, err := p.flowYAMLContent(cu, n, c); err == nil {
		return node, cu2, nil
	} else if !isFailure(err) {
		return nil, cu, err
	}
	mark := cu.mark()
	anchor, tag, cu2, err := p.nodeProperties(cu, n, c)
	if err != nil {
		return nil, cu, err
	}
	if next, err := p.separate(cu2, n, c); err == nil {
		if node, cu3, err := p.flowYAMLContent(next, n, c); err == nil {
			return withProperties(node, anchor, tag, mark), cu3, nil
		} else if !isFailure(err) {
			return nil, cu, err
		}
	}
	return withProperties(emptyNode(cu2), anchor, tag, mark), cu2, nil
}

// flowJSONNode parses c-flow-json-node(n,c) [160].
func (p *parser) flowJSONNode(cu cursor, n int, c context) (*Node, cursor, error) {
	mark := cu.mark()
	var anchor string
	var tag Tag
	after := cu
	if a, t, cu2, err := p.nodeProperties(cu, n, c); err == nil {
		if next, err := p.separate(cu2, n, c); err == nil {
			anchor, tag = a, t
			after = next
		}
	} else if !isFailure(err) {
		return nil, cu, err
	}
	node, cu3, err := p.flowJSONContent(after, n, c)
	if err != nil {
		return nil, cu, err
	}
	return withProperties(node, anchor, tag, mark), cu3, nil
}

// flowNode parses ns-flow-node(n,c) [161].
func (p *parser) flowNode(cu cursor, n int, c context) (*Node, cursor, error) {
	if err := p.enter(cu); err != nil {
		return nil, cu, err
	}
	defer p.leave()
	if node, cu2, err := p.aliasNode(cu); err == nil {
		return node, cu2, nil
	} else if !isFailure(err) {
		return nil, cu, err
	}
	if node, cu2, err := p.flowContent(cu, n, c); err == nil {
		return node, cu2, nil
	} else if !isFailure(err) {
		return nil, cu, err
	}
	mark := cu.mark()
	anchor, tag, cu2, err := p.nodeProperties(cu, n, c)
	if err != nil {
		return nil, cu, err
	}
	if next, err := p.separate(cu2, n, c); err == nil {
		if node, cu3, err := p.flowContent(next, n, c); err == nil {
			return withProperties(node, anchor, tag, mark), cu3, nil
		} else if !isFailure(err) {
			return nil, cu, err
		}
	}
	return withProperties(emptyNode(cu2), anchor, tag, mark), cu2, nil
}

// implicitYAMLKey parses ns-s-implicit-yaml-key(c) [154]: a single-line
// plain key. The returned span, which includes the trailing separation,
// lets the caller enforce the implicit key limit once a ":" confirms
// that the node really is a key.
func (p *parser) implicitYAMLKey(cu cursor, c context) (*Node, cursor, int, error) {
	start := cu
	node, cu2, err := p.flowYAMLNode(cu, 0, c)
	if err != nil {
		return nil, cu, 0, err
	}
	if next, err := p.separateInLine(cu2); err == nil {
		cu2 = next
	}
	return node, cu2, start.runesTo(cu2), nil
}

// implicitJSONKey parses c-s-implicit-json-key(c) [155].
func (p *parser) implicitJSONKey(cu cursor, c context) (*Node, cursor, int, error) {
	start := cu
	node, cu2, err := p.flowJSONNode(cu, 0, c)
	if err != nil {
		return nil, cu, 0, err
	}
	if next, err := p.separateInLine(cu2); err == nil {
		cu2 = next
	}
	return node, cu2, start.runesTo(cu2), nil
}

// checkKeyLimit enforces the bound on a confirmed implicit key.
func (p *parser) checkKeyLimit(cu cursor, span int) error {
	if span > p.cfg.implicitKeyLimit {
		return p.errorf(cu, "implicit key is %d characters long, limit is %d",
			span, p.cfg.implicitKeyLimit)
	}
	return nil
}
