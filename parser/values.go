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
	"math"
	"strings"

	"github.com/kralicky/kdl/ast"
	"github.com/kralicky/kdl/internal/chars"
)

// parsedValue is the result of the `value` production: an optional type
// annotation plus the trivia around it, and the keyword/number/string
// literal itself.
type parsedValue struct {
	Type         *ast.Identifier
	AfterTy      string
	BeforeTyName string
	AfterTyName  string
	Value        ast.Value
	Repr         string
}

// parseTypeAnnotation implements `ty = "(" optional_node_space identifier
// optional_node_space ")"`. The identifier is a cut point: once `(` is
// consumed, a missing identifier is a recoverable "type name" diagnostic
// (resynced by consuming to `)`), and a missing `)` is unrecoverable.
func (in *input) parseTypeAnnotation() (ident *ast.Identifier, afterTy, beforeTyName string) {
	in.eat('(')
	cut := in.save()

	afterTyStart := in.save()
	in.optionalNodeSpace()
	afterTy = in.sliceFrom(int(afterTyStart))

	id, ok := in.parseIdentifier()
	if !ok {
		for !in.atEOF() && !in.hasPrefix(")") && chars.IsNewlineAt(in.src, in.pos) == 0 {
			in.advanceRune()
		}
		in.report(recoverable(in.span(int(cut)), "type name", "expected a type name after '('"))
		if !in.eat(')') {
			in.report(unrecoverable(in.span(int(cut)), "closing of type annotation", "expected ')'"))
		}
		return nil, afterTy, ""
	}

	beforeTyNameStart := in.save()
	in.optionalNodeSpace()
	beforeTyName = in.sliceFrom(int(beforeTyNameStart))

	if !in.eat(')') {
		in.report(unrecoverable(in.span(int(cut)), "closing of type annotation", "expected ')'"))
	}
	return &id, afterTy, beforeTyName
}

// parseKeyword implements `#true`/`#false`/`#null`/`#nan`/`#inf`/`#-inf`,
// case-insensitive. The grammar is kept disjoint from raw strings by
// requiring that `#` not be immediately followed by `#` or `"`.
func (in *input) parseKeyword() (ast.Value, bool) {
	start := in.save()
	if !in.eat('#') {
		return ast.Value{}, false
	}
	if in.hasPrefix("#") || in.hasPrefix(`"`) {
		in.restore(start)
		return ast.Value{}, false
	}

	wordStart := in.save()
	in.eat('-')
	for {
		r, size := in.peekRune()
		if size == 0 || !isASCIILetter(r) {
			break
		}
		in.pos += size
	}
	word := in.sliceFrom(int(wordStart))

	switch strings.ToLower(word) {
	case "true":
		return ast.BoolValue(true), true
	case "false":
		return ast.BoolValue(false), true
	case "null":
		return ast.Null(), true
	case "nan":
		return ast.FloatValue(math.NaN()), true
	case "inf":
		return ast.FloatValue(math.Inf(1)), true
	case "-inf":
		return ast.FloatValue(math.Inf(-1)), true
	default:
		in.report(recoverable(in.span(int(start)), "keyword", "unrecognized keyword"))
		in.badval()
		return ast.Null(), true
	}
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// parseBareValue implements the `keyword | number | string` alternation
// at the heart of the `value` production.
func (in *input) parseBareValue() (ast.Value, string, bool) {
	start := in.save()
	if v, ok := in.parseKeyword(); ok {
		return v, in.sliceFrom(int(start)), true
	}
	if v, ok := in.parseNumber(); ok {
		return v, in.sliceFrom(int(start)), true
	}
	if v, repr, ok := in.parseStringLiteral(); ok {
		return v, repr, true
	}
	return ast.Value{}, "", false
}

// parseValue implements `value = ty? optional_node_space
// (keyword|number|string)`.
func (in *input) parseValue() (parsedValue, bool) {
	var pv parsedValue
	if in.hasPrefix("(") {
		pv.Type, pv.AfterTy, pv.BeforeTyName = in.parseTypeAnnotation()
	}
	afterTyNameStart := in.save()
	in.optionalNodeSpace()
	pv.AfterTyName = in.sliceFrom(int(afterTyNameStart))

	v, repr, ok := in.parseBareValue()
	if !ok {
		return pv, false
	}
	pv.Value = v
	pv.Repr = repr
	return pv, true
}
