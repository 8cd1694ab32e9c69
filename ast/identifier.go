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

// Identifier is a semantic name plus its optional verbatim source
// representation. Two identifiers are semantically equal iff Value is
// equal; Repr is formatting-only and never participates in equality.
type Identifier struct {
	// Value is the decoded semantic name: unescaped, unquoted.
	Value string
	// Repr is the exact source slice the identifier was parsed from,
	// including surrounding quotes or raw-string hashes if any. Empty when
	// an identifier is synthesized rather than parsed.
	Repr string
	Span Span
}

// Equal reports whether two identifiers denote the same name, ignoring
// their surface representation.
func (id Identifier) Equal(other Identifier) bool {
	return id.Value == other.Value
}

// String returns the identifier's verbatim representation if it has one,
// else its semantic value.
func (id Identifier) String() string {
	if id.Repr != "" {
		return id.Repr
	}
	return id.Value
}
