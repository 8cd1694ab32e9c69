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
	"strings"

	"github.com/kralicky/kdl/ast"
	"github.com/kralicky/kdl/reporter"
)

// Failure is the only non-success return from the public entry points:
// it carries the owned source text and every diagnostic observed during
// the parse, in first-observation order.
type Failure struct {
	Source      string
	Diagnostics []reporter.Diagnostic
}

func (f *Failure) Error() string {
	var b strings.Builder
	for i, d := range f.Diagnostics {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(d.Error())
	}
	return b.String()
}

// ParseDocument parses an entire KDL document. It succeeds only when the
// parse consumed all input and no diagnostic was emitted.
func ParseDocument(src string) (*ast.Document, *Failure) {
	h := reporter.New()
	in := newInput(src, h)
	doc := in.parseTopLevelDocument()
	if !in.atEOF() {
		in.report(unrecoverable(in.span(in.pos), "trailing content", "unexpected content after document"))
	}
	if h.HasErrors() {
		return nil, &Failure{Source: src, Diagnostics: h.Diagnostics()}
	}
	return doc, nil
}

// ParseNode parses a single node, using padded_node so that surrounding
// line/node space is folded into the node's own trivia.
func ParseNode(src string) (*ast.Node, *Failure) {
	h := reporter.New()
	in := newInput(src, h)
	node, ok := in.parsePaddedNode()
	if !ok {
		in.report(unrecoverable(in.span(0), "node", "expected a node"))
	} else if !in.atEOF() {
		in.report(unrecoverable(in.span(in.pos), "trailing content", "unexpected content after node"))
	}
	if h.HasErrors() {
		return nil, &Failure{Source: src, Diagnostics: h.Diagnostics()}
	}
	return node, nil
}

// ParseEntry parses a single node entry (positional argument or
// property), using padded_node_entry.
func ParseEntry(src string) (*ast.Entry, *Failure) {
	h := reporter.New()
	in := newInput(src, h)
	entry, ok := in.parsePaddedEntry()
	if !ok {
		in.report(unrecoverable(in.span(0), "entry", "expected an entry"))
	} else if !in.atEOF() {
		in.report(unrecoverable(in.span(in.pos), "trailing content", "unexpected content after entry"))
	}
	if h.HasErrors() {
		return nil, &Failure{Source: src, Diagnostics: h.Diagnostics()}
	}
	return entry, nil
}

// ParseIdentifier parses any of the three identifier-string shapes, or a
// quoted/raw string used as an identifier.
func ParseIdentifier(src string) (*ast.Identifier, *Failure) {
	h := reporter.New()
	in := newInput(src, h)
	id, ok := in.parseIdentifier()
	if !ok {
		in.report(unrecoverable(in.span(0), "identifier", "expected an identifier"))
	} else if !in.atEOF() {
		in.report(unrecoverable(in.span(in.pos), "trailing content", "unexpected content after identifier"))
	}
	if h.HasErrors() {
		return nil, &Failure{Source: src, Diagnostics: h.Diagnostics()}
	}
	return &id, nil
}

// ParseValue parses a value: `keyword | number | string`, optionally
// preceded by a type annotation, which is accepted but not returned.
func ParseValue(src string) (*ast.Value, *Failure) {
	h := reporter.New()
	in := newInput(src, h)
	pv, ok := in.parseValue()
	if !ok {
		in.report(unrecoverable(in.span(0), "value", "expected a value"))
	} else if !in.atEOF() {
		in.report(unrecoverable(in.span(in.pos), "trailing content", "unexpected content after value"))
	}
	if h.HasErrors() {
		return nil, &Failure{Source: src, Diagnostics: h.Diagnostics()}
	}
	return &pv.Value, nil
}
