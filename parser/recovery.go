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
	"github.com/kralicky/kdl/reporter"
)

// recoverable builds a Diagnostic for a failure discovered after a cut
// point, where the enclosing production can still resynchronize and keep
// parsing.
func recoverable(span ast.Span, label, help string) reporter.Diagnostic {
	return reporter.Diagnostic{
		Span:     span,
		Label:    label,
		Help:     help,
		Context:  label,
		Kind:     reporter.KindContext,
		Severity: reporter.SeverityError,
	}
}

// unrecoverable builds a Diagnostic for a failure with no resync
// boundary available (e.g. a missing closing brace at EOF).
func unrecoverable(span ast.Span, label, help string) reporter.Diagnostic {
	return reporter.Diagnostic{
		Span:     span,
		Label:    label,
		Help:     help,
		Kind:     reporter.KindOther,
		Severity: reporter.SeverityError,
	}
}

// badval consumes bytes until whitespace, a node terminator, `{`, or `}`,
// used to resynchronize after a recoverable failure whose value was not
// a quoted or raw string (so no closing delimiter to hunt for).
func (in *input) badval() {
	for {
		if in.atEOF() {
			return
		}
		if chars.IsNewlineAt(in.src, in.pos) > 0 || in.hasPrefix("//") {
			return
		}
		r, size := in.peekRune()
		if size == 0 {
			return
		}
		if chars.IsUnicodeSpace(r) || r == ';' || r == '{' || r == '}' {
			return
		}
		in.pos += size
	}
}

// quotedStringBadval consumes until a closing `"` followed by
// whitespace/newline/EOF, used to resynchronize after a failure inside a
// quoted string body.
func (in *input) quotedStringBadval() {
	in.closingDelimiterBadval(`"`)
}

// rawStringBadval consumes until `"` followed by a matching `#`-run and
// then whitespace/newline/EOF.
func (in *input) rawStringBadval(hashes int) {
	closer := `"`
	for i := 0; i < hashes; i++ {
		closer += "#"
	}
	in.closingDelimiterBadval(closer)
}

func (in *input) closingDelimiterBadval(closer string) {
	for !in.atEOF() {
		if in.hasPrefix(closer) {
			after := in.pos + len(closer)
			if after >= len(in.src) {
				in.pos = after
				return
			}
			r, size := peekRuneAtPos(in.src, after)
			if size == 0 || chars.IsUnicodeSpace(r) || chars.IsNewlineAt(in.src, after) > 0 {
				in.pos = after
				return
			}
		}
		if _, ok := in.advanceRune(); !ok {
			return
		}
	}
}
