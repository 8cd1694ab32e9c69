// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"github.com/kralicky/kdl/ast"
	"github.com/kralicky/kdl/internal/chars"
)

// parseBaseNode implements `base_node = ty? optional_node_space
// identifier (required_node_space entry)* (optional_node_space
// children)?`. It does not consume the node's own leading line-space or
// its terminator; the caller (parseNodeList / parsePaddedNode) wraps
// that around it.
func (in *input) parseBaseNode() (*ast.Node, bool) {
	start := in.save()

	var typ *ast.Identifier
	var afterTy, beforeTyName string
	if in.hasPrefix("(") {
		typ, afterTy, beforeTyName = in.parseTypeAnnotation()
	}

	afterTyNameStart := in.save()
	in.optionalNodeSpace()
	afterTyName := in.sliceFrom(int(afterTyNameStart))

	name, ok := in.parseIdentifier()
	if !ok {
		in.restore(start)
		return nil, false
	}

	var entries []*ast.Entry
	for {
		checkpoint := in.save()
		leadingStart := in.save()
		if !in.requiredNodeSpace() {
			in.restore(checkpoint)
			break
		}
		leading := in.sliceFrom(int(leadingStart))
		entry, ok := in.parseEntryInner()
		if !ok {
			in.restore(checkpoint)
			break
		}
		entry.Format.Leading = leading
		entries = append(entries, entry)
	}

	var children *ast.Document
	beforeChildrenStart := in.save()
	in.optionalNodeSpace()
	beforeChildren := in.sliceFrom(int(beforeChildrenStart))
	if in.hasPrefix("{") {
		if doc, ok := in.parseChildren(); ok {
			children = doc
		}
	} else {
		in.restore(beforeChildrenStart)
		beforeChildren = ""
	}

	return &ast.Node{
		Type:     typ,
		Name:     name,
		Entries:  entries,
		Children: children,
		Format: ast.NodeFormat{
			AfterTy:        afterTy,
			BeforeTyName:   beforeTyName,
			AfterTyName:    afterTyName,
			BeforeChildren: beforeChildren,
		},
		Span: in.span(int(start)),
	}, true
}

// nodeTerminator implements `node_terminator = EOF | ";" | newline |
// single_line_comment`, reporting false without consuming anything when
// none is present. parseNodeList requires one after every node except
// the last before `}` or EOF; parsePaddedNode treats it as optional.
func (in *input) nodeTerminator() bool {
	if in.atEOF() {
		return true
	}
	if in.eat(';') {
		return true
	}
	if in.newline() {
		return true
	}
	return in.singleLineComment()
}

// resyncToNodeTerminator recovers from a missing node_terminator by
// consuming bytes until one actually appears (or closer/EOF does),
// then consuming it, so the next node in the list starts clean.
func (in *input) resyncToNodeTerminator(closer string) {
	for {
		if in.atEOF() {
			return
		}
		if closer != "" && in.hasPrefix(closer) {
			return
		}
		if in.hasPrefix(";") || chars.IsNewlineAt(in.src, in.pos) > 0 {
			in.nodeTerminator()
			return
		}
		if _, ok := in.advanceRune(); !ok {
			return
		}
	}
}

// parseNodeList implements the `nodes` production shared by both
// `children` and `document`: zero or more nodes, each owning its own
// leading line-space and trailing terminator. closer is "}" inside a
// children block or "" at the top level (where only EOF ends the list).
func (in *input) parseNodeList(closer string) (nodes []*ast.Node, leading, trailing string) {
	first := true
	for {
		trivStart := in.save()
		triv := in.lineSpaceStar()
		if in.atEOF() || (closer != "" && in.hasPrefix(closer)) {
			if first {
				leading = triv
			} else {
				trailing = triv
			}
			return nodes, leading, trailing
		}

		node, ok := in.parseBaseNode()
		if !ok {
			in.restore(trivStart)
			return nodes, leading, trailing
		}
		node.Format.Leading = triv

		trailingStart := in.save()
		in.optionalNodeSpace()
		final := in.atEOF() || (closer != "" && in.hasPrefix(closer))
		if !final && !in.nodeTerminator() {
			termStart := in.save()
			in.report(recoverable(in.span(int(termStart)), "node terminator", "expected a newline, ';', comment, or end of input between nodes"))
			in.resyncToNodeTerminator(closer)
		}
		node.Format.Trailing = in.sliceFrom(int(trailingStart))
		node.Span = ast.Span{Start: int(trivStart), End: in.pos}

		nodes = append(nodes, node)
		first = false
	}
}

// parseChildren implements `children = "{" nodes final_node? "}"`. A
// missing closing brace is unrecoverable: the diagnostic is emitted and
// whatever was parsed is still returned so the caller can decide what to
// do (the overall parse will still fail since the handler now has
// errors).
func (in *input) parseChildren() (*ast.Document, bool) {
	start := in.save()
	if !in.eat('{') {
		return nil, false
	}
	nodes, leading, trailing := in.parseNodeList("}")
	doc := &ast.Document{
		Nodes:  nodes,
		Format: ast.DocumentFormat{Leading: leading, Trailing: trailing},
	}
	if !in.eat('}') {
		in.report(unrecoverable(in.span(int(start)), "closing of children", "expected '}'"))
		doc.Span = in.span(int(start))
		return doc, true
	}
	doc.Span = in.span(int(start))
	return doc, true
}

// parsePaddedNode implements the `padded_node` fragment variant used by
// ParseNode: a single node with the line-space around it folded into
// its own trivia rather than belonging to an enclosing document.
func (in *input) parsePaddedNode() (*ast.Node, bool) {
	start := in.save()
	leading := in.lineSpaceStar()
	node, ok := in.parseBaseNode()
	if !ok {
		in.restore(start)
		return nil, false
	}
	node.Format.Leading = leading
	trailingStart := in.save()
	in.optionalNodeSpace()
	in.nodeTerminator()
	in.lineSpaceStar()
	node.Format.Trailing = in.sliceFrom(int(trailingStart))
	node.Span = ast.Span{Start: int(start), End: in.pos}
	return node, true
}

// parsePaddedEntry implements the `padded_node_entry` fragment variant
// used by ParseEntry: a single entry with the line/node-space before it
// folded into its leading trivia. Space after the entry is consumed but
// not recorded anywhere.
func (in *input) parsePaddedEntry() (*ast.Entry, bool) {
	start := in.save()
	in.lineSpaceStar()
	in.optionalNodeSpace()
	leading := in.sliceFrom(int(start))

	entry, ok := in.parseEntryInner()
	if !ok {
		in.restore(start)
		return nil, false
	}
	entry.Format.Leading = leading
	in.optionalNodeSpace()
	in.lineSpaceStar()
	return entry, true
}
