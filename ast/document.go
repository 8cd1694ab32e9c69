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

// DocumentFormat is the format trivia captured around a document: the
// verbatim text before the first node and after the last one.
type DocumentFormat struct {
	// BOM is the verbatim byte-order-mark prefix, if the document started
	// with one. Empty otherwise.
	BOM string
	// Leading is the entire body of a document with no nodes. It is empty
	// otherwise, since the line-space before the first node is that
	// node's own Leading.
	Leading string
	// Trailing is whatever line-space follows the last node's own
	// trailing trivia, normally empty since node trailing already
	// captures up to and including the terminating newline.
	Trailing string
}

// Document is an ordered sequence of nodes.
type Document struct {
	Nodes  []*Node
	Format DocumentFormat
	Span   Span
}
