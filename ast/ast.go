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

// Package ast defines the typed, byte-spanned syntax tree produced by the
// kdl parser. Every node carries a Span into the original source and enough
// formatting trivia (surrounding whitespace, comments, escline markers,
// quoting/numeric representation) that an unmutated tree can be rendered
// back to the exact bytes it was parsed from.
package ast

// Span is a half-open byte range [Start, End) into the document that was
// parsed. An empty Span (Start == End) is zero-width, as for an empty
// document or a diagnostic that points at a single position.
type Span struct {
	Start int
	End   int
}

// Len reports the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Slice returns the substring of src the span covers.
func (s Span) Slice(src string) string {
	return src[s.Start:s.End]
}
