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
	"math/big"
	"strconv"
	"strings"

	"github.com/kralicky/kdl/ast"
	"github.com/kralicky/kdl/reporter"
)

func isDecDigit(r rune) bool { return r >= '0' && r <= '9' }
func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func isOctDigit(r rune) bool { return r >= '0' && r <= '7' }
func isBinDigit(r rune) bool { return r == '0' || r == '1' }

// parseNumber implements spec component E: sign, hex/octal/binary with
// digit separators, float, and decimal integer, attempted in that order.
// It does not handle the `#nan`/`#inf`/`#-inf`/keyword forms; those live
// in the keyword production.
func (in *input) parseNumber() (ast.Value, bool) {
	if v, ok := in.tryRadix("0x", "0X", isHexDigit, 16, "hexadecimal"); ok {
		return v, true
	}
	if v, ok := in.tryRadix("0o", "0O", isOctDigit, 8, "octal"); ok {
		return v, true
	}
	if v, ok := in.tryRadix("0b", "0B", isBinDigit, 2, "binary"); ok {
		return v, true
	}
	if v, ok := in.tryFloat(); ok {
		return v, true
	}
	if v, ok := in.tryDecimalInteger(); ok {
		return v, true
	}
	return ast.Value{}, false
}

// readSign consumes an optional leading `+`/`-`, reporting whether it was
// negative.
func (in *input) readSign() bool {
	if in.eat('-') {
		return true
	}
	in.eat('+')
	return false
}

// digitRun consumes a digit-or-underscore run whose first character must
// satisfy isDigit (never an underscore, per spec: `_` is never allowed
// immediately after a base prefix nor as the first character of any
// digit run; trailing `_` is allowed). Returns the raw text (including
// underscores) and whether anything matched.
func (in *input) digitRun(isDigit func(rune) bool) (string, bool) {
	start := in.save()
	r, size := in.peekRune()
	if size == 0 || !isDigit(r) {
		return "", false
	}
	in.pos += size
	for {
		r, size := in.peekRune()
		if size == 0 {
			break
		}
		if isDigit(r) || r == '_' {
			in.pos += size
			continue
		}
		break
	}
	return in.sliceFrom(int(start)), true
}

func (in *input) tryRadix(prefixUpper, prefixLower string, isDigit func(rune) bool, base int, label string) (ast.Value, bool) {
	start := in.save()
	negative := in.readSign()
	if !in.eatString(prefixUpper) && !in.eatString(prefixLower) {
		in.restore(start)
		return ast.Value{}, false
	}
	digits, ok := in.digitRun(isDigit)
	if !ok {
		in.restore(start)
		return ast.Value{}, false
	}
	cleaned := strings.ReplaceAll(digits, "_", "")
	n, ok := new(big.Int).SetString(cleaned, base)
	if !ok {
		in.restore(start)
		return ast.Value{}, false
	}
	if negative {
		n.Neg(n)
	}
	if !ast.FitsI128(n) {
		d := recoverable(in.span(int(start)), label, "integer literal out of signed 128-bit range")
		d.Kind = reporter.KindParseInt
		in.report(d)
	}
	return ast.Value{Kind: ast.KindInteger, Int: n}, true
}

func (in *input) tryDecimalInteger() (ast.Value, bool) {
	start := in.save()
	negative := in.readSign()
	digits, ok := in.digitRun(isDecDigit)
	if !ok {
		in.restore(start)
		return ast.Value{}, false
	}
	cleaned := strings.ReplaceAll(digits, "_", "")
	n, ok := new(big.Int).SetString(cleaned, 10)
	if !ok {
		in.restore(start)
		return ast.Value{}, false
	}
	if negative {
		n.Neg(n)
	}
	if !ast.FitsI128(n) {
		d := recoverable(in.span(int(start)), "integer", "integer literal out of signed 128-bit range")
		d.Kind = reporter.KindParseInt
		in.report(d)
	}
	return ast.Value{Kind: ast.KindInteger, Int: n}, true
}

// tryFloat matches the three spec shapes (int.int[eE]sign?int,
// int[eE]sign?int, int.int) by parsing an integer part then optionally a
// fractional part and optionally an exponent; it requires at least one
// of the two optional parts to be present, otherwise this isn't a float
// and the caller should fall back to decimal-integer.
func (in *input) tryFloat() (ast.Value, bool) {
	start := in.save()
	in.readSign()
	if _, ok := in.digitRun(isDecDigit); !ok {
		in.restore(start)
		return ast.Value{}, false
	}

	hasFraction := false
	fracCheckpoint := in.save()
	if in.eat('.') {
		if _, ok := in.digitRun(isDecDigit); ok {
			hasFraction = true
		} else {
			in.restore(fracCheckpoint)
		}
	}

	hasExponent := false
	expCheckpoint := in.save()
	if in.eat('e') || in.eat('E') {
		in.readSign()
		if _, ok := in.digitRun(isDecDigit); ok {
			hasExponent = true
		} else {
			in.restore(expCheckpoint)
		}
	}

	if !hasFraction && !hasExponent {
		in.restore(start)
		return ast.Value{}, false
	}

	repr := in.sliceFrom(int(start))
	cleaned := strings.ReplaceAll(repr, "_", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		if _, rangeErr := err.(*strconv.NumError); rangeErr {
			in.report(reporter.Diagnostic{
				Span:     in.span(int(start)),
				Label:    "float",
				Help:     "float literal out of range",
				Kind:     reporter.KindParseFloat,
				Severity: reporter.SeverityError,
			})
		}
	}
	return ast.Value{Kind: ast.KindFloat, Float: f}, true
}
