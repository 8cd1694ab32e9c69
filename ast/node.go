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

package ast

// NodeFormat is the format trivia captured around a node so that an
// unmutated tree can be rendered back to its exact source bytes.
type NodeFormat struct {
	// Leading is the line-space (including any slashdashed nodes)
	// preceding this node.
	Leading string
	// AfterTy is the trivia between `(` and the type identifier.
	AfterTy string
	// BeforeTyName is the trivia between the type identifier and `)`.
	BeforeTyName string
	// AfterTyName is the trivia between the type annotation and the node
	// name (or, with no type annotation, any node-space such as an escline
	// before the name; normally empty).
	AfterTyName string
	// BeforeChildren is the node-space between the last entry (or the
	// name, if there are no entries) and the opening `{` of the children
	// block. Empty when there is no children block.
	BeforeChildren string
	// Trailing is any node-space after the node followed by its
	// terminator exactly as written: `;`, a newline, a line comment, or
	// nothing at EOF or before a closing `}`.
	Trailing string
}

// Node is a named record with typed entries and an optional children
// block.
type Node struct {
	Type     *Identifier
	Name     Identifier
	Entries  []*Entry
	Children *Document
	Format   NodeFormat
	Span     Span
}
