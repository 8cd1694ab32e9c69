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

import "github.com/kralicky/kdl/internal/chars"

// newline consumes a single newline sequence (CRLF counts as one) at the
// current position, reporting whether it matched.
func (in *input) newline() bool {
	n := chars.IsNewlineAt(in.src, in.pos)
	if n == 0 {
		return false
	}
	in.pos += n
	return true
}

// singleLineComment consumes `//` up to (and including) the terminating
// newline or EOF.
func (in *input) singleLineComment() bool {
	if !in.eatString("//") {
		return false
	}
	for !in.atEOF() {
		if in.newline() {
			return true
		}
		if _, ok := in.advanceRune(); !ok {
			break
		}
	}
	return true
}

// multiLineComment consumes a nestable `/* ... */` block comment,
// iteratively (not recursively) tracking nesting depth so pathological
// input cannot blow the call stack. Reports false if the comment is
// unterminated, having already reported a diagnostic.
func (in *input) multiLineComment() bool {
	start := in.pos
	if !in.eatString("/*") {
		return false
	}
	depth := 1
	for depth > 0 {
		if in.atEOF() {
			in.report(unrecoverable(in.span(start), "closing of multi-line comment", ""))
			return false
		}
		switch {
		case in.eatString("/*"):
			depth++
		case in.eatString("*/"):
			depth--
		default:
			in.advanceRune()
		}
	}
	return true
}

// ws consumes a single Unicode space character or block comment.
func (in *input) ws() bool {
	if r, size := in.peekRune(); size > 0 && chars.IsUnicodeSpace(r) {
		in.pos += size
		return true
	}
	return in.multiLineComment()
}

// wsStar consumes zero or more ws.
func (in *input) wsStar() {
	for in.ws() {
	}
}

// escline consumes `\` ws* (single_line_comment | newline | EOF) ws*.
func (in *input) escline() bool {
	start := in.save()
	if !in.eat('\\') {
		return false
	}
	in.wsStar()
	switch {
	case in.singleLineComment():
	case in.newline():
	case in.atEOF():
	default:
		in.restore(start)
		return false
	}
	in.wsStar()
	return true
}

// plainLineSpace consumes one of: newline, ws, single_line_comment.
func (in *input) plainLineSpace() bool {
	if in.newline() {
		return true
	}
	if in.ws() {
		return true
	}
	return in.singleLineComment()
}

// plainNodeSpace consumes `ws* escline ws*` or `ws+`.
func (in *input) plainNodeSpace() bool {
	start := in.save()
	in.wsStar()
	if in.escline() {
		in.wsStar()
		return true
	}
	if in.save() != start {
		// we consumed some ws but there was no escline: that's still a
		// valid `ws+` match as long as at least one ws was eaten.
		return true
	}
	return false
}

// lineSpace consumes plain_line_space+ or a slashdash node (`/-` then
// plain_node_space* then a full node, discarded semantically but its
// bytes preserved in the caller's leading trivia).
func (in *input) lineSpace() bool {
	matchedAny := false
	for in.plainLineSpace() {
		matchedAny = true
	}
	if matchedAny {
		return true
	}
	return in.slashdashNode()
}

// slashdashNode consumes `/-` plain_node_space* node. The node must parse
// successfully; it is discarded semantically but its source bytes remain
// part of whatever trivia string the caller is building.
func (in *input) slashdashNode() bool {
	start := in.save()
	if !in.eatString("/-") {
		return false
	}
	for in.plainNodeSpace() {
	}
	if _, ok := in.parseBaseNode(); !ok {
		in.restore(start)
		return false
	}
	return true
}

// nodeSpace consumes plain_node_space+, then optionally a slashdashed
// entry or children block (`/-` plain_node_space* (entry | children)),
// parsed and discarded.
func (in *input) nodeSpace() bool {
	matchedAny := false
	for in.plainNodeSpace() {
		matchedAny = true
	}
	if !matchedAny {
		return false
	}
	in.slashdashEntryOrChildren()
	return true
}

func (in *input) slashdashEntryOrChildren() bool {
	start := in.save()
	if !in.eatString("/-") {
		return false
	}
	for in.plainNodeSpace() {
	}
	if in.hasPrefix("{") {
		if _, ok := in.parseChildren(); ok {
			return true
		}
		in.restore(start)
		return false
	}
	if _, ok := in.parseEntryInner(); ok {
		return true
	}
	in.restore(start)
	return false
}

// requiredNodeSpace consumes one or more node_space. Since node_space
// itself always begins with plain_node_space+, matching it at least once
// already satisfies "at least one plain_node_space" — a separate
// trailing plainNodeSpace requirement would have nothing left to match,
// since the preceding node_space greedily consumes all contiguous
// whitespace itself.
func (in *input) requiredNodeSpace() bool {
	matched := false
	for in.nodeSpace() {
		matched = true
	}
	return matched
}

// optionalNodeSpace consumes zero or more node_space.
func (in *input) optionalNodeSpace() {
	for in.nodeSpace() {
	}
}

// lineSpaceStar consumes zero or more line_space, returning the
// accumulated trivia text.
func (in *input) lineSpaceStar() string {
	start := in.save()
	for in.lineSpace() {
	}
	return in.sliceFrom(int(start))
}
