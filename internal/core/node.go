// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Block node composition [196]-[200]: the dispatch between block
// scalars, block collections, and flow nodes embedded in block context.

package core

// blockNode parses s-l+block-node(n,c) [196].
func (p *parser) blockNode(cu cursor, n int, c context) (*Node, cursor, error) {
	if err := p.enter(cu); err != nil {
		return nil, cu, err
	}
	defer p.leave()
	if node, cu2, err := p.blockInBlock(cu, n, c); err == nil {
		return node, cu2, nil
	} else if !isFailure(err) {
		return nil, cu, err
	}
	return p.flowInBlock(cu, n)
}

// blockInBlock parses s-l+block-in-block(n,c) [198].
func (p *parser) blockInBlock(cu cursor, n int, c context) (*Node, cursor, error) {
	if node, cu2, err := p.blockScalarNode(cu, n, c); err == nil {
		return node, cu2, nil
	} else if !isFailure(err) {
		return nil, cu, err
	}
	return p.blockCollection(cu, n, c)
}

// blockScalarNode parses s-l+block-scalar(n,c) [199]: separation,
// optional properties, then a literal or folded scalar.
func (p *parser) blockScalarNode(cu cursor, n int, c context) (*Node, cursor, error) {
	cu1, err := p.separate(cu, n+1, c)
	if err != nil {
		return nil, cu, err
	}
	mark := cu1.mark()
	var anchor string
	var tag Tag
	after := cu1
	if a, t, cu2, err := p.nodeProperties(cu1, n+1, c); err == nil {
		if next, err := p.separate(cu2, n+1, c); err == nil {
			anchor, tag = a, t
			after = next
		}
	} else if !isFailure(err) {
		return nil, cu, err
	}
	switch after.peek() {
	case '|':
		node, cu2, err := p.literalScalar(after, n)
		if err != nil {
			return nil, cu, err
		}
		return withProperties(node, anchor, tag, mark), cu2, nil
	case '>':
		node, cu2, err := p.foldedScalar(after, n)
		if err != nil {
			return nil, cu, err
		}
		return withProperties(node, anchor, tag, mark), cu2, nil
	}
	return nil, cu, p.failf(after, "expected a block scalar")
}

// blockCollection parses s-l+block-collection(n,c) [200]: optional
// separated properties, the end of the line, then a sequence at the
// seq-spaces indentation or a mapping.
func (p *parser) blockCollection(cu cursor, n int, c context) (*Node, cursor, error) {
	mark := cu.mark()
	var anchor string
	var tag Tag
	after := cu
	if next, err := p.separate(cu, n+1, c); err == nil {
		if a, t, cu2, err := p.nodeProperties(next, n+1, c); err == nil {
			anchor, tag = a, t
			after = cu2
		} else if !isFailure(err) {
			return nil, cu, err
		}
	}
	cu2, err := p.sLComments(after)
	if err != nil {
		// More content on this line: not a block collection; any parsed
		// properties belong to a flow node instead.
		return nil, cu, err
	}
	if node, cu3, err := p.blockSequence(cu2, seqSpaces(n, c)); err == nil {
		return withProperties(node, anchor, tag, mark), cu3, nil
	} else if !isFailure(err) {
		return nil, cu, err
	}
	node, cu3, err := p.blockMapping(cu2, n)
	if err != nil {
		return nil, cu, err
	}
	return withProperties(node, anchor, tag, mark), cu3, nil
}

// flowInBlock parses s-l+flow-in-block(n) [197]: a flow node embedded
// in block context, ending at the line's comment boundary.
func (p *parser) flowInBlock(cu cursor, n int) (*Node, cursor, error) {
	cu1, err := p.separate(cu, n+1, flowOut)
	if err != nil {
		return nil, cu, err
	}
	node, cu2, err := p.flowNode(cu1, n+1, flowOut)
	if err != nil {
		return nil, cu, err
	}
	cu3, err := p.sLComments(cu2)
	if err != nil {
		return nil, cu, p.errorf(cu2, "did not find expected comment or line break")
	}
	return node, cu3, nil
}
