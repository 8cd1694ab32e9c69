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
)

// parseEntryInner implements component H without its leading trivia,
// which the caller (the enclosing node) attaches from the node-space it
// already consumed: `prop = identifier optional_node_space "="
// optional_node_space *cut* value`, or a bare positional `value`.
func (in *input) parseEntryInner() (*ast.Entry, bool) {
	start := in.save()

	idCheckpoint := in.save()
	if id, ok := in.parseIdentifier(); ok {
		afterIdent := in.save()
		in.optionalNodeSpace()
		if in.eat('=') {
			afterEqStart := in.save()
			in.optionalNodeSpace()
			afterEq := in.sliceFrom(int(afterEqStart))

			pv, ok := in.parseValue()
			if !ok {
				in.report(recoverable(in.span(int(afterEqStart)), "value", "expected a value after '='"))
				in.badval()
			}
			return &ast.Entry{
				Type:  pv.Type,
				Value: pv.Value,
				Name:  &id,
				Format: ast.EntryFormat{
					AfterTy:      pv.AfterTy,
					BeforeTyName: pv.BeforeTyName,
					AfterTyName:  pv.AfterTyName,
					AfterEq:      afterEq,
					ValueRepr:    pv.Repr,
				},
				Span: in.span(int(start)),
			}, true
		}

		// No '=' follows. A bare identifier is never a valid positional
		// value, so this can only still be an entry if it was actually a
		// quoted/raw string (which doubles as both an identifier shape and
		// a string value) — reuse what was already parsed rather than
		// re-running string parsing and risking a duplicate diagnostic.
		if looksQuoted(id.Repr) {
			in.restore(afterIdent)
			return &ast.Entry{
				Value:  ast.Value{Kind: ast.KindString, String: id.Value},
				Format: ast.EntryFormat{ValueRepr: id.Repr},
				Span:   id.Span,
			}, true
		}
		in.restore(idCheckpoint)
	}

	pv, ok := in.parseValue()
	if !ok {
		in.restore(start)
		return nil, false
	}
	return &ast.Entry{
		Type:  pv.Type,
		Value: pv.Value,
		Format: ast.EntryFormat{
			AfterTy:      pv.AfterTy,
			BeforeTyName: pv.BeforeTyName,
			AfterTyName:  pv.AfterTyName,
			ValueRepr:    pv.Repr,
		},
		Span: in.span(int(start)),
	}, true
}

func looksQuoted(repr string) bool {
	return strings.HasPrefix(repr, `"`) || strings.HasPrefix(repr, "#")
}
