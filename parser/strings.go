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
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kralicky/kdl/ast"
	"github.com/kralicky/kdl/internal/chars"
)

// escapeError describes why decoding a string body failed; it carries
// only a label/help pair since the caller already knows the span (the
// whole string literal, pinned at its cut point).
type escapeError struct {
	label string
	help  string
}

var reservedWords = map[string]bool{
	"true": true, "false": true, "null": true,
	"inf": true, "-inf": true, "nan": true,
}

// parseIdentifier implements component F as used for node names,
// property names, and type annotations: a quoted string, a raw string,
// or one of the three bare identifier-string shapes.
func (in *input) parseIdentifier() (ast.Identifier, bool) {
	start := in.save()
	if value, repr, ok := in.parseQuotedOrRawString(); ok {
		return ast.Identifier{Value: value, Repr: repr, Span: in.span(int(start))}, true
	}
	if text, ok := in.parseBareIdentifier(); ok {
		return ast.Identifier{Value: text, Repr: text, Span: in.span(int(start))}, true
	}
	return ast.Identifier{}, false
}

// parseStringLiteral implements the `string` alternative of the `value`
// production: a quoted or raw string (bare identifier-strings are only
// valid where an identifier is expected, never as a positional/property
// value).
func (in *input) parseStringLiteral() (ast.Value, string, bool) {
	value, repr, ok := in.parseQuotedOrRawString()
	if !ok {
		return ast.Value{}, "", false
	}
	return ast.Value{Kind: ast.KindString, String: value}, repr, true
}

func (in *input) parseQuotedOrRawString() (string, string, bool) {
	if in.hasPrefix(`"`) {
		return in.parseQuotedString()
	}
	if in.hasPrefix("#") {
		return in.parseRawString()
	}
	return "", "", false
}

// parseBareIdentifier matches unambiguous_ident | signed_ident |
// dotted_ident, rejecting any text equal to a reserved keyword.
func (in *input) parseBareIdentifier() (string, bool) {
	start := in.save()
	text, ok := in.tryUnambiguousIdent()
	if !ok {
		in.restore(start)
		text, ok = in.trySignedIdent()
	}
	if !ok {
		in.restore(start)
		text, ok = in.tryDottedIdent()
	}
	if !ok {
		in.restore(start)
		return "", false
	}
	if reservedWords[text] {
		in.restore(start)
		return "", false
	}
	return text, true
}

func (in *input) tryUnambiguousIdent() (string, bool) {
	start := in.pos
	r, size := in.peekRune()
	if size == 0 || !chars.IsIdentChar(r) || isDecDigit(r) || r == '+' || r == '-' || r == '.' {
		return "", false
	}
	in.pos += size
	in.consumeIdentChars()
	return in.src[start:in.pos], true
}

func (in *input) trySignedIdent() (string, bool) {
	start := in.pos
	r, size := in.peekRune()
	if size == 0 || (r != '+' && r != '-') {
		return "", false
	}
	in.pos += size
	r2, size2 := in.peekRune()
	if size2 == 0 || !chars.IsIdentChar(r2) || isDecDigit(r2) || r2 == '.' {
		in.pos = start
		return "", false
	}
	in.pos += size2
	in.consumeIdentChars()
	return in.src[start:in.pos], true
}

func (in *input) tryDottedIdent() (string, bool) {
	start := in.pos
	if r, size := in.peekRune(); size > 0 && (r == '+' || r == '-') {
		in.pos += size
	}
	if !in.eat('.') {
		in.pos = start
		return "", false
	}
	r, size := in.peekRune()
	if size == 0 || !chars.IsIdentChar(r) || isDecDigit(r) {
		in.pos = start
		return "", false
	}
	in.pos += size
	in.consumeIdentChars()
	return in.src[start:in.pos], true
}

func (in *input) consumeIdentChars() {
	for {
		r, size := in.peekRune()
		if size == 0 || !chars.IsIdentChar(r) {
			return
		}
		in.pos += size
	}
}

// parseQuotedString parses `"…"`, committing at the opening quote. Any
// failure past that point produces exactly one diagnostic and resyncs
// (via quotedStringBadval, or straight to EOF when no closing quote
// exists at all), returning a sentinel empty value so the caller can
// continue (structural continuation).
func (in *input) parseQuotedString() (string, string, bool) {
	start := in.save()
	if !in.eat('"') {
		return "", "", false
	}
	bodyStart := in.pos
	multiline := chars.IsNewlineAt(in.src, bodyStart) > 0

	closeQuotePos, ok := scanQuotedBody(in.src, bodyStart)
	if !ok {
		in.pos = len(in.src)
		in.report(recoverable(in.span(int(start)), "quoted string", "unterminated string"))
		return "", in.sliceFrom(int(start)), true
	}
	rawBody := in.src[bodyStart:closeQuotePos]

	if !multiline && hasUnescapedNewline(rawBody) {
		in.pos = bodyStart
		in.quotedStringBadval()
		in.report(recoverable(in.span(int(start)), "quoted string", "unescaped newline in single-line string"))
		return "", in.sliceFrom(int(start)), true
	}

	body := rawBody
	if multiline {
		normalized, errInfo := stripMultilinePrefix(rawBody)
		if errInfo != nil {
			in.pos = bodyStart
			in.quotedStringBadval()
			in.report(recoverable(in.span(int(start)), errInfo.label, errInfo.help))
			return "", in.sliceFrom(int(start)), true
		}
		body = normalized
	}

	decoded, errInfo := decodeStringBody(body)
	if errInfo != nil {
		in.pos = bodyStart
		in.quotedStringBadval()
		in.report(recoverable(in.span(int(start)), errInfo.label, errInfo.help))
		return "", in.sliceFrom(int(start)), true
	}

	in.pos = closeQuotePos + 1
	return decoded, in.sliceFrom(int(start)), true
}

// parseRawString parses `#…#"…"#…#` with a matching `#`-count, committing
// once the opening quote is consumed.
func (in *input) parseRawString() (string, string, bool) {
	start := in.save()
	hashCount := 0
	for in.eat('#') {
		hashCount++
	}
	if hashCount == 0 || !in.eat('"') {
		in.restore(start)
		return "", "", false
	}
	bodyStart := in.pos
	multiline := chars.IsNewlineAt(in.src, bodyStart) > 0

	closeQuotePos, ok := scanRawBody(in.src, bodyStart, hashCount)
	if !ok {
		in.pos = bodyStart
		in.rawStringBadval(hashCount)
		in.report(recoverable(in.span(int(start)), "raw string", "unterminated raw string"))
		return "", in.sliceFrom(int(start)), true
	}
	rawBody := in.src[bodyStart:closeQuotePos]

	body := rawBody
	if multiline {
		normalized, errInfo := stripMultilinePrefix(rawBody)
		if errInfo != nil {
			in.pos = closeQuotePos + 1 + hashCount
			in.report(recoverable(in.span(int(start)), errInfo.label, errInfo.help))
			return "", in.sliceFrom(int(start)), true
		}
		body = normalized
	}

	in.pos = closeQuotePos + 1 + hashCount
	return body, in.sliceFrom(int(start)), true
}

// scanQuotedBody finds the offset of the unescaped `"` terminating a
// quoted string body starting at pos, skipping one rune after every `\`
// so an escaped quote is never mistaken for the terminator.
func scanQuotedBody(s string, pos int) (int, bool) {
	i := pos
	for i < len(s) {
		if s[i] == '\\' {
			_, size := utf8.DecodeRuneInString(s[i+1:])
			if size == 0 {
				i++
				continue
			}
			i += 1 + size
			continue
		}
		if s[i] == '"' {
			return i, true
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 {
			size = 1
		}
		i += size
	}
	return 0, false
}

// scanRawBody finds the offset of the `"` that begins a closing
// delimiter with at least hashCount immediately following `#` runes.
func scanRawBody(s string, pos, hashCount int) (int, bool) {
	i := pos
	for i < len(s) {
		if s[i] == '"' {
			j := i + 1
			count := 0
			for j < len(s) && s[j] == '#' && count < hashCount {
				j++
				count++
			}
			if count == hashCount {
				return i, true
			}
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 {
			size = 1
		}
		i += size
	}
	return 0, false
}

func hasUnescapedNewline(s string) bool {
	i := 0
	for i < len(s) {
		if s[i] == '\\' {
			if nlSize := chars.IsNewlineAt(s, i+1); nlSize > 0 {
				i += 1 + nlSize
				continue
			}
			_, size := utf8.DecodeRuneInString(s[i+1:])
			if size == 0 {
				i++
				continue
			}
			i += 1 + size
			continue
		}
		if chars.IsNewlineAt(s, i) > 0 {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 {
			size = 1
		}
		i += size
	}
	return false
}

// stripMultilinePrefix implements the two-pass indentation rule: the
// prefix is the Unicode-space run on the closing-delimiter's own line;
// every non-empty interior line must start with that exact prefix, and
// all newline variants normalize to "\n". body is the raw text between
// the opening quote (or raw-string quote) and the closing delimiter,
// starting with the newline that immediately follows the opening quote.
func stripMultilinePrefix(body string) (string, *escapeError) {
	leadNL := chars.IsNewlineAt(body, 0)
	if leadNL == 0 {
		return "", &escapeError{"matching multiline string prefix", "multi-line string must open with a newline"}
	}
	rest := body[leadNL:]

	lastNLStart, lastNLEnd := -1, -1
	i := 0
	for i < len(rest) {
		if n := chars.IsNewlineAt(rest, i); n > 0 {
			lastNLStart, lastNLEnd = i, i+n
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(rest[i:])
		if size == 0 {
			size = 1
		}
		i += size
	}
	if lastNLStart == -1 {
		return "", &escapeError{"matching multiline string prefix", "closing delimiter must be on its own line"}
	}

	interior := rest[:lastNLStart]
	prefix := rest[lastNLEnd:]
	if !isAllUnicodeSpace(prefix) {
		return "", &escapeError{"matching multiline string prefix", "closing delimiter must be on its own line"}
	}

	lines := splitLines(interior)
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isAllUnicodeSpace(line) {
			out = append(out, "")
			continue
		}
		if !strings.HasPrefix(line, prefix) {
			return "", &escapeError{"matching multiline string prefix", "interior line does not start with the closing line's indentation"}
		}
		out = append(out, line[len(prefix):])
	}
	return strings.Join(out, "\n"), nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	i := 0
	for i < len(s) {
		if n := chars.IsNewlineAt(s, i); n > 0 {
			lines = append(lines, s[start:i])
			i += n
			start = i
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		if size == 0 {
			size = 1
		}
		i += size
	}
	lines = append(lines, s[start:])
	return lines
}

func isAllUnicodeSpace(s string) bool {
	for _, r := range s {
		if !chars.IsUnicodeSpace(r) {
			return false
		}
	}
	return true
}

// decodeStringBody processes escapes in an already newline-normalized,
// prefix-stripped (if multi-line) quoted-string body.
func decodeStringBody(body string) (string, *escapeError) {
	var b strings.Builder
	i := 0
	for i < len(body) {
		r, size := utf8.DecodeRuneInString(body[i:])
		if r == '\\' {
			i += size
			if i >= len(body) {
				return "", &escapeError{"escape sequence", "unterminated escape sequence"}
			}
			r2, size2 := utf8.DecodeRuneInString(body[i:])
			switch r2 {
			case '\\':
				b.WriteByte('\\')
				i += size2
			case '"':
				b.WriteByte('"')
				i += size2
			case 'b':
				b.WriteByte(0x08)
				i += size2
			case 'f':
				b.WriteByte(0x0C)
				i += size2
			case 'n':
				b.WriteByte(0x0A)
				i += size2
			case 'r':
				b.WriteByte(0x0D)
				i += size2
			case 't':
				b.WriteByte(0x09)
				i += size2
			case 's':
				b.WriteByte(0x20)
				i += size2
			case 'u':
				i += size2
				if i >= len(body) || body[i] != '{' {
					return "", &escapeError{"unicode escape", "expected '{' after \\u"}
				}
				i++
				hexStart := i
				for i < len(body) && body[i] != '}' && i-hexStart < 6 {
					i++
				}
				if i >= len(body) || body[i] != '}' {
					return "", &escapeError{"unicode escape", "expected closing '}'"}
				}
				hexDigits := body[hexStart:i]
				i++
				if len(hexDigits) == 0 {
					return "", &escapeError{"unicode escape", "empty hex digits"}
				}
				val, err := strconv.ParseUint(hexDigits, 16, 32)
				if err != nil {
					return "", &escapeError{"unicode escape", "invalid hex digits"}
				}
				scalar := rune(val)
				if !utf8.ValidRune(scalar) || (scalar >= 0xD800 && scalar <= 0xDFFF) {
					return "", &escapeError{"unicode escape", "not a valid Unicode scalar"}
				}
				b.WriteRune(scalar)
			default:
				if chars.IsUnicodeSpace(r2) || chars.IsNewlineAt(body, i) > 0 {
					for i < len(body) {
						rr, szz := utf8.DecodeRuneInString(body[i:])
						if chars.IsUnicodeSpace(rr) {
							i += szz
							continue
						}
						if n := chars.IsNewlineAt(body, i); n > 0 {
							i += n
							continue
						}
						break
					}
				} else {
					return "", &escapeError{"escape sequence", "unrecognized escape character"}
				}
			}
			continue
		}
		if chars.IsDisallowed(r) {
			return "", &escapeError{"disallowed codepoint", "codepoint not permitted in a string body"}
		}
		b.WriteRune(r)
		i += size
	}
	return b.String(), nil
}
