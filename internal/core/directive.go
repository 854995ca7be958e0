// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Directives [82]-[95]. Tag handle bindings are per document and reset
// to the defaults between documents.

package core

import "strconv"

// directiveLine parses l-directive [82]. A "%" at the first column
// commits: anything malformed past it is a hard error.
func (p *parser) directiveLine(cu cursor) (Directive, cursor, error) {
	if cu.peek() != '%' || !cu.startOfLine() {
		return Directive{}, cu, p.failf(cu, "expected a directive")
	}
	mark := cu.mark()
	cu2 := cu.advance()
	name := cu2
	for isNSChar(name.peek()) {
		name = name.advance()
	}
	if name.off == cu2.off {
		return Directive{}, cu, p.errorf(cu2, "expected a directive name after '%%'")
	}
	d := Directive{Mark: mark}
	var err error
	switch cu2.between(name) {
	case "YAML":
		d, cu2, err = p.yamlDirective(name)
	case "TAG":
		d, cu2, err = p.tagDirective(name)
	default:
		d, cu2, err = p.reservedDirective(cu2.between(name), name)
	}
	if err != nil {
		return Directive{}, cu, err
	}
	d.Mark = mark
	cu3, err := p.sLComments(cu2)
	if err != nil {
		return Directive{}, cu, p.errorf(cu2, "did not find expected comment or line break after directive")
	}
	p.directives = append(p.directives, d)
	return d, cu3, nil
}

// yamlDirective parses ns-yaml-directive [86]. The declared version is
// preserved even when it is newer than 1.2; a warning is attached and
// parsing proceeds under the 1.2 rules.
func (p *parser) yamlDirective(cu cursor) (Directive, cursor, error) {
	if p.yamlSeen {
		return Directive{}, cu, p.errorf(cu, "found a duplicate %%YAML directive in one document")
	}
	cu2, err := p.separateInLine(cu)
	if err != nil {
		return Directive{}, cu, p.errorf(cu, "expected a version after the %%YAML directive")
	}
	major, cu3, err := p.decimal(cu2)
	if err != nil {
		return Directive{}, cu, err
	}
	if cu3.peek() != '.' {
		return Directive{}, cu, p.errorf(cu3, "expected '.' in the %%YAML directive version")
	}
	minor, cu4, err := p.decimal(cu3.advance())
	if err != nil {
		return Directive{}, cu, err
	}
	p.yamlSeen = true
	if major > 1 || (major == 1 && minor > 2) {
		p.warnf(cu2, "unsupported YAML version %d.%d, parsing with the 1.2 rules", major, minor)
	}
	return Directive{Kind: VersionDirective, Major: major, Minor: minor}, cu4, nil
}

// decimal consumes ns-dec-digit+ and returns its value.
func (p *parser) decimal(cu cursor) (int, cursor, error) {
	start := cu
	for isDecDigit(cu.peek()) {
		cu = cu.advance()
	}
	if cu.off == start.off {
		return 0, cu, p.errorf(cu, "expected a decimal number in the %%YAML directive version")
	}
	v, err := strconv.Atoi(start.between(cu))
	if err != nil {
		return 0, cu, p.errorf(start, "%%YAML directive version component is out of range")
	}
	return v, cu, nil
}

// tagDirective parses ns-tag-directive [88]: a handle and its prefix.
// A duplicate handle in one document is a warning; the later binding
// wins.
func (p *parser) tagDirective(cu cursor) (Directive, cursor, error) {
	cu2, err := p.separateInLine(cu)
	if err != nil {
		return Directive{}, cu, p.errorf(cu, "expected a tag handle after the %%TAG directive")
	}
	handleMark := cu2
	handle, cu3, err := p.tagHandle(cu2)
	if err != nil {
		return Directive{}, cu, p.errorf(cu2, "expected a tag handle after the %%TAG directive")
	}
	cu4, err := p.separateInLine(cu3)
	if err != nil {
		return Directive{}, cu, p.errorf(cu3, "expected a tag prefix after the %%TAG handle")
	}
	prefix, cu5, err := p.tagPrefix(cu4)
	if err != nil {
		return Directive{}, cu, err
	}
	if _, dup := p.tagHandles[handle]; dup && handle != "!" && handle != "!!" {
		p.warnf(handleMark, "duplicate %%TAG directive for handle %q, the later binding wins", handle)
	} else if dup {
		if bound := p.tagHandles[handle]; (handle == "!" && bound != "!") ||
			(handle == "!!" && bound != "tag:yaml.org,2002:") {
			p.warnf(handleMark, "duplicate %%TAG directive for handle %q, the later binding wins", handle)
		}
	}
	p.tagHandles[handle] = prefix
	return Directive{Kind: TagDirective, Handle: handle, Prefix: prefix}, cu5, nil
}

// tagPrefix parses ns-tag-prefix [93]: a local "!..." prefix or a
// global URI prefix.
func (p *parser) tagPrefix(cu cursor) (string, cursor, error) {
	if cu.peek() == '!' {
		// c-ns-local-tag-prefix [94]
		rest, cu2, err := p.scanURIChars(cu.advance(), false)
		if err != nil {
			return "", cu, err
		}
		return "!" + rest, cu2, nil
	}
	// ns-global-tag-prefix [95]
	if !isTagChar(cu.peek()) {
		return "", cu, p.errorf(cu, "expected a tag prefix after the %%TAG handle")
	}
	prefix, cu2, err := p.scanURIChars(cu, false)
	if err != nil {
		return "", cu, err
	}
	return prefix, cu2, nil
}

// reservedDirective parses ns-reserved-directive [83]. The directive is
// recorded verbatim and reported as a warning.
func (p *parser) reservedDirective(name string, cu cursor) (Directive, cursor, error) {
	d := Directive{Kind: ReservedDirective, Name: name}
	for {
		next, err := p.separateInLine(cu)
		if err != nil {
			break
		}
		param := next
		for isNSChar(param.peek()) {
			param = param.advance()
		}
		if param.off == next.off {
			break
		}
		d.Params = append(d.Params, next.between(param))
		cu = param
	}
	p.warnf(cu, "unknown directive %%%s, ignored", name)
	return d, cu, nil
}
