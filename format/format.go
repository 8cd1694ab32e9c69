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

// Package format renders a parsed kdl document back to text. Render is
// the round-trip half of the pair: given a tree obtained from
// parser.ParseDocument and never mutated, Render reproduces the original
// source byte-for-byte, since every byte of formatting trivia the parser
// captured is concatenated back in verbatim rather than re-derived from
// any layout policy.
package format

import (
	"strings"

	"github.com/kralicky/kdl/ast"
)

// Render reconstructs the source text of doc.
func Render(doc *ast.Document) string {
	var b strings.Builder
	b.WriteString(doc.Format.BOM)
	b.WriteString(doc.Format.Leading)
	writeNodes(&b, doc.Nodes)
	b.WriteString(doc.Format.Trailing)
	return b.String()
}

func writeNodes(b *strings.Builder, nodes []*ast.Node) {
	for _, n := range nodes {
		writeNode(b, n)
	}
}

func writeNode(b *strings.Builder, n *ast.Node) {
	b.WriteString(n.Format.Leading)
	writeTypeAnnotation(b, n.Type, n.Format.AfterTy, n.Format.BeforeTyName)
	b.WriteString(n.Format.AfterTyName)
	b.WriteString(n.Name.String())
	for _, e := range n.Entries {
		writeEntry(b, e)
	}
	b.WriteString(n.Format.BeforeChildren)
	if n.Children != nil {
		b.WriteByte('{')
		b.WriteString(n.Children.Format.Leading)
		writeNodes(b, n.Children.Nodes)
		b.WriteString(n.Children.Format.Trailing)
		b.WriteByte('}')
	}
	b.WriteString(n.Format.Trailing)
}

func writeEntry(b *strings.Builder, e *ast.Entry) {
	b.WriteString(e.Format.Leading)
	if e.IsProperty() {
		b.WriteString(e.Name.String())
		b.WriteByte('=')
		b.WriteString(e.Format.AfterEq)
	}
	writeTypeAnnotation(b, e.Type, e.Format.AfterTy, e.Format.BeforeTyName)
	b.WriteString(e.Format.AfterTyName)
	b.WriteString(e.Format.ValueRepr)
}

func writeTypeAnnotation(b *strings.Builder, ty *ast.Identifier, afterTy, beforeTyName string) {
	if ty == nil {
		return
	}
	b.WriteByte('(')
	b.WriteString(afterTy)
	b.WriteString(ty.String())
	b.WriteString(beforeTyName)
	b.WriteByte(')')
}
