// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Token tree rendering for the CLI: an indented human-readable tree and
// a JSON conversion built from plain maps so the output stays stable.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/grammar"
)

func render(out io.Writer, stream *grammar.Stream, format string) error {
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(streamToJSON(stream))
	}
	printStream(out, stream)
	return nil
}

func printStream(out io.Writer, stream *grammar.Stream) {
	fmt.Fprintf(out, "stream (%d documents)\n", len(stream.Documents))
	for i, doc := range stream.Documents {
		fmt.Fprintf(out, "document %d (%s)\n", i, doc.Kind)
		for _, d := range doc.Directives {
			fmt.Fprintf(out, "  %%%s\n", directiveString(d))
		}
		printNode(out, doc.Root, 1)
	}
}

func printNode(out io.Writer, node *grammar.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	props := ""
	if node.Anchor != "" {
		props += " &" + node.Anchor
	}
	if !node.Tag.IsZero() {
		props += " " + node.Tag.String()
	}
	switch node.Kind {
	case grammar.ScalarNode:
		fmt.Fprintf(out, "%s%s scalar%s %q\n", indent, node.Style, props, node.Value)
	case grammar.AliasNode:
		fmt.Fprintf(out, "%salias *%s\n", indent, node.Value)
	case grammar.EmptyNode:
		fmt.Fprintf(out, "%sempty%s\n", indent, props)
	case grammar.SequenceNode:
		fmt.Fprintf(out, "%s%s sequence%s (%d items)\n", indent, node.Style, props, len(node.Items))
		for _, item := range node.Items {
			printNode(out, item, depth+1)
		}
	case grammar.MappingNode:
		fmt.Fprintf(out, "%s%s mapping%s (%d pairs)\n", indent, node.Style, props, len(node.Pairs))
		for _, pair := range node.Pairs {
			fmt.Fprintf(out, "%s  key\n", indent)
			printNode(out, pair.Key, depth+2)
			fmt.Fprintf(out, "%s  value\n", indent)
			printNode(out, pair.Value, depth+2)
		}
	}
}

func directiveString(d grammar.Directive) string {
	switch d.Kind {
	case grammar.VersionDirective:
		return fmt.Sprintf("YAML %d.%d", d.Major, d.Minor)
	case grammar.TagDirective:
		return fmt.Sprintf("TAG %s %s", d.Handle, d.Prefix)
	default:
		if len(d.Params) == 0 {
			return d.Name
		}
		return d.Name + " " + strings.Join(d.Params, " ")
	}
}

func streamToJSON(stream *grammar.Stream) any {
	docs := make([]any, 0, len(stream.Documents))
	for _, doc := range stream.Documents {
		docs = append(docs, documentToJSON(doc))
	}
	return map[string]any{"documents": docs}
}

func documentToJSON(doc *grammar.Document) any {
	m := map[string]any{
		"kind": doc.Kind.String(),
		"root": nodeToJSON(doc.Root),
	}
	if len(doc.Directives) > 0 {
		ds := make([]any, 0, len(doc.Directives))
		for _, d := range doc.Directives {
			ds = append(ds, directiveString(d))
		}
		m["directives"] = ds
	}
	if len(doc.Warnings) > 0 {
		ws := make([]any, 0, len(doc.Warnings))
		for _, w := range doc.Warnings {
			ws = append(ws, w.String())
		}
		m["warnings"] = ws
	}
	return m
}

func nodeToJSON(node *grammar.Node) any {
	if node == nil {
		return nil
	}
	m := map[string]any{
		"kind": node.Kind.String(),
		"line": node.Mark.Line,
		"col":  node.Mark.Column,
	}
	if node.Anchor != "" {
		m["anchor"] = node.Anchor
	}
	if !node.Tag.IsZero() {
		m["tag"] = node.Tag.String()
	}
	switch node.Kind {
	case grammar.ScalarNode:
		m["style"] = node.Style.String()
		m["value"] = node.Value
	case grammar.AliasNode:
		m["alias"] = node.Value
	case grammar.SequenceNode:
		m["style"] = node.Style.String()
		items := make([]any, 0, len(node.Items))
		for _, item := range node.Items {
			items = append(items, nodeToJSON(item))
		}
		m["items"] = items
	case grammar.MappingNode:
		m["style"] = node.Style.String()
		pairs := make([]any, 0, len(node.Pairs))
		for _, pair := range node.Pairs {
			pairs = append(pairs, map[string]any{
				"key":   nodeToJSON(pair.Key),
				"value": nodeToJSON(pair.Value),
			})
		}
		m["pairs"] = pairs
	}
	return m
}
