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

// Package parser implements a tokenless recursive-descent parser for the
// KDL document language. There is no separate lexer stage: productions
// read runes directly off a byte-accurate cursor (input) and build typed
// ast nodes with spans and format trivia as they go.
package parser

import (
	"unicode/utf8"

	"github.com/kralicky/kdl/ast"
	"github.com/kralicky/kdl/reporter"
)

// input is a read-only cursor over the source text. It tracks a byte
// offset, supports checkpoint/rewind for backtracking before a cut point,
// and owns the diagnostic handler the whole parse accumulates into.
type input struct {
	src     string
	pos     int
	handler *reporter.Handler
}

func newInput(src string, handler *reporter.Handler) *input {
	return &input{src: src, handler: handler}
}

// checkpoint is an opaque save point for backtracking.
type checkpoint int

func (in *input) save() checkpoint {
	return checkpoint(in.pos)
}

func (in *input) restore(c checkpoint) {
	in.pos = int(c)
}

func (in *input) offset() int {
	return in.pos
}

func (in *input) atEOF() bool {
	return in.pos >= len(in.src)
}

func (in *input) remaining() string {
	return in.src[in.pos:]
}

// peekRune returns the rune at the current position without consuming it,
// along with its encoded byte width. Returns (utf8.RuneError, 0) at EOF.
func (in *input) peekRune() (rune, int) {
	if in.atEOF() {
		return utf8.RuneError, 0
	}
	r, size := utf8.DecodeRuneInString(in.src[in.pos:])
	return r, size
}

// peekRuneAt peeks the rune `ahead` runes past the current position,
// without consuming anything. ahead == 0 is equivalent to peekRune.
func (in *input) peekRuneAt(ahead int) (rune, int) {
	pos := in.pos
	var r rune
	var size int
	for i := 0; i <= ahead; i++ {
		if pos >= len(in.src) {
			return utf8.RuneError, 0
		}
		r, size = utf8.DecodeRuneInString(in.src[pos:])
		if i < ahead {
			pos += size
		}
	}
	return r, size
}

// advanceRune consumes and returns the rune at the current position.
func (in *input) advanceRune() (rune, bool) {
	r, size := in.peekRune()
	if size == 0 {
		return 0, false
	}
	in.pos += size
	return r, true
}

// eat consumes the current rune if it equals r, reporting whether it did.
func (in *input) eat(r rune) bool {
	cur, size := in.peekRune()
	if size == 0 || cur != r {
		return false
	}
	in.pos += size
	return true
}

// eatString consumes s if it is a prefix of the remaining input.
func (in *input) eatString(s string) bool {
	if len(in.src)-in.pos < len(s) {
		return false
	}
	if in.src[in.pos:in.pos+len(s)] != s {
		return false
	}
	in.pos += len(s)
	return true
}

// hasPrefix reports whether s is a prefix of the remaining input, without
// consuming anything.
func (in *input) hasPrefix(s string) bool {
	return len(in.src)-in.pos >= len(s) && in.src[in.pos:in.pos+len(s)] == s
}

// sliceFrom returns the source text between start and the current
// position.
func (in *input) sliceFrom(start int) string {
	return in.src[start:in.pos]
}

// span builds an ast.Span from start to the current position.
func (in *input) span(start int) ast.Span {
	return ast.Span{Start: start, End: in.pos}
}

// report appends a diagnostic to the handler attached to this input.
func (in *input) report(d reporter.Diagnostic) {
	in.handler.Report(d)
}

// peekRuneAtPos decodes the rune at an arbitrary byte offset into s,
// without requiring an input cursor positioned there.
func peekRuneAtPos(s string, pos int) (rune, int) {
	if pos >= len(s) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s[pos:])
}
