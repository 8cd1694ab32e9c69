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

// Package chars holds the read-only Unicode classification tables the KDL
// grammar is defined in terms of: newlines, Unicode space, disallowed
// codepoints, and the identifier-char predicate. Nothing here is mutable;
// these are the static tables the parser's concurrency model promises
// never change during or between parses.
package chars

const (
	runeCR  = 0x0D
	runeLF  = 0x0A
	runeNEL = 0x85
	runeFF  = 0x0C
	runeLS  = 0x2028
	runePS  = 0x2029
	runeBOM = 0xFEFF
	runeBSL = 0x5C // backslash
)

// Newlines lists every byte sequence the grammar treats as a single line
// terminator, longest first so a naive prefix scan finds CRLF before CR.
var Newlines = []string{
	string(rune(runeCR)) + string(rune(runeLF)), // CRLF
	string(rune(runeCR)),                        // CR
	string(rune(runeLF)),                        // LF
	string(rune(runeNEL)),                       // NEL
	string(rune(runeFF)),                        // FF
	string(rune(runeLS)),                        // LS
	string(rune(runePS)),                        // PS
}

// UnicodeSpaces are horizontal whitespace codepoints (not newlines).
var UnicodeSpaces = map[rune]bool{
	0x0009: true,
	0x000B: true,
	0x0020: true,
	0x00A0: true,
	0x1680: true,
	0x2000: true, 0x2001: true, 0x2002: true, 0x2003: true, 0x2004: true,
	0x2005: true, 0x2006: true, 0x2007: true, 0x2008: true, 0x2009: true, 0x200A: true,
	0x202F: true,
	0x205F: true,
	0x3000: true,
}

// IsUnicodeSpace reports whether r is one of UnicodeSpaces.
func IsUnicodeSpace(r rune) bool {
	return UnicodeSpaces[r]
}

// IsNewlineAt reports whether s[pos:] begins with one of Newlines, returning
// the matched string's byte length (0 if no newline matches).
func IsNewlineAt(s string, pos int) int {
	for _, nl := range Newlines {
		if pos+len(nl) <= len(s) && s[pos:pos+len(nl)] == nl {
			return len(nl)
		}
	}
	return 0
}

// IsDisallowed reports whether r is forbidden anywhere in a string body or
// identifier: controls, bidi overrides, and the BOM (which is only
// permitted as the first codepoint of a document, a rule enforced by the
// document parser, not here).
func IsDisallowed(r rune) bool {
	switch {
	case r >= 0x0000 && r <= 0x0008:
		return true
	case r >= 0x000E && r <= 0x001F:
		return true
	case r >= 0x200E && r <= 0x200F:
		return true
	case r >= 0x202A && r <= 0x202E:
		return true
	case r >= 0x2066 && r <= 0x2069:
		return true
	case r == rune(runeBOM):
		return true
	}
	return false
}

// disallowedIdentChars are the extra ASCII punctuation runes forbidden in
// identifiers on top of whitespace/newline/disallowed codepoints.
var disallowedIdentChars = map[rune]bool{
	rune(runeBSL): true,
	'/':           true,
	'(':           true,
	')':           true,
	'{':           true,
	'}':           true,
	'[':           true,
	']':           true,
	';':           true,
	'"':           true,
	'#':           true,
	'=':           true,
}

// isNewlineRune reports whether r is one of the single-rune newlines (CRLF
// is two runes and is handled separately by IsNewlineAt).
func isNewlineRune(r rune) bool {
	switch r {
	case rune(runeCR), rune(runeLF), rune(runeNEL), rune(runeFF), rune(runeLS), rune(runePS):
		return true
	}
	return false
}

// IsIdentChar reports whether r may appear inside a bare identifier-string.
func IsIdentChar(r rune) bool {
	if disallowedIdentChars[r] {
		return false
	}
	if IsUnicodeSpace(r) {
		return false
	}
	if IsDisallowed(r) {
		return false
	}
	if isNewlineRune(r) {
		return false
	}
	return true
}

// BOM is the UTF-8 encoding of the byte-order-mark codepoint, permitted
// only as the very first codepoint of a document.
var BOM = string(rune(runeBOM))
