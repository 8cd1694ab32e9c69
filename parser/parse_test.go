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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/kralicky/kdl/ast"
	"github.com/kralicky/kdl/format"
	"github.com/kralicky/kdl/reporter"
)

// docCmpOpts ignores the byte-span bookkeeping (which legitimately
// differs between two independently-parsed trees of the same shape)
// and teaches go-cmp how to compare math/big.Int, whose fields are
// unexported.
var docCmpOpts = []cmp.Option{
	cmpopts.IgnoreFields(ast.Node{}, "Span"),
	cmpopts.IgnoreFields(ast.Entry{}, "Span"),
	cmpopts.IgnoreFields(ast.Identifier{}, "Span"),
	cmpopts.IgnoreFields(ast.Document{}, "Span"),
	cmp.Comparer(func(a, b *big.Int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}),
}

// roundTrip asserts that src parses without diagnostics and that
// rendering the resulting tree reproduces src byte-for-byte.
func roundTrip(t *testing.T, src string) *ast.Document {
	t.Helper()
	doc, failure := ParseDocument(src)
	require.Nil(t, failure, "unexpected diagnostics: %v", failure)
	require.Equal(t, src, format.Render(doc))
	return doc
}

func TestParseDocument_SingleEntrylessNode(t *testing.T) {
	doc := roundTrip(t, "foo\n")
	require.Len(t, doc.Nodes, 1)
	require.Equal(t, "foo", doc.Nodes[0].Name.Value)
	require.Empty(t, doc.Nodes[0].Entries)
}

func TestParseDocument_MixedEntriesAndChild(t *testing.T) {
	src := "node 1 \"two\" key=3 {\n  child\n}\n"
	doc := roundTrip(t, src)
	require.Len(t, doc.Nodes, 1)
	n := doc.Nodes[0]
	require.Equal(t, "node", n.Name.Value)
	require.Len(t, n.Entries, 3)
	require.False(t, n.Entries[0].IsProperty())
	require.Equal(t, ast.KindInteger, n.Entries[0].Value.Kind)
	require.False(t, n.Entries[1].IsProperty())
	require.Equal(t, ast.KindString, n.Entries[1].Value.Kind)
	require.True(t, n.Entries[2].IsProperty())
	require.Equal(t, "key", n.Entries[2].Name.Value)
	require.NotNil(t, n.Children)
	require.Len(t, n.Children.Nodes, 1)
	require.Equal(t, "child", n.Children.Nodes[0].Name.Value)
}

func TestParseDocument_HexIntegerOverflowStillPopulatesValue(t *testing.T) {
	src := "node 0x100000000000000000000000000000000\n"
	doc, failure := ParseDocument(src)
	require.Nil(t, doc)
	require.NotNil(t, failure)
	require.Len(t, failure.Diagnostics, 1)
	require.Equal(t, "hexadecimal", failure.Diagnostics[0].Label)

	// Re-derive the value directly from the number grammar to confirm the
	// overflowing integer is still produced alongside the diagnostic.
	h := reporter.New()
	in := newInput("0x100000000000000000000000000000000", h)
	v, ok := in.parseNumber()
	require.True(t, ok)
	require.Equal(t, ast.KindInteger, v.Kind)
	require.False(t, ast.FitsI128(v.Int))
	require.True(t, h.HasErrors())
}

func TestParseDocument_MultilineStringNormalizationAndPrefixMismatch(t *testing.T) {
	src := `node "
  first
  second
  "
`
	doc := roundTrip(t, src)
	require.Equal(t, "first\nsecond", doc.Nodes[0].Entries[0].Value.String)

	bad := `node "
  first
 second
  "
`
	_, failure := ParseDocument(bad)
	require.NotNil(t, failure)
	require.Len(t, failure.Diagnostics, 1)
	require.Equal(t, "matching multiline string prefix", failure.Diagnostics[0].Label)
}

func TestParseDocument_SlashdashEntryPreservedInTrivia(t *testing.T) {
	src := "node /-1 2\n"
	doc := roundTrip(t, src)
	n := doc.Nodes[0]
	require.Len(t, n.Entries, 1)
	require.Equal(t, int64(2), n.Entries[0].Value.Int.Int64())
	require.Contains(t, n.Entries[0].Format.Leading, "/-1")
}

func TestParseDocument_MissingNodeTerminatorIsRejected(t *testing.T) {
	src := "node1 node2\n"
	doc, failure := ParseDocument(src)
	require.Nil(t, doc)
	require.NotNil(t, failure)
	require.Len(t, failure.Diagnostics, 1)
	require.Equal(t, "node terminator", failure.Diagnostics[0].Label)
}

func TestParseDocument_UnterminatedRawStringRecovers(t *testing.T) {
	src := "node #\"unterminated\n"
	_, failure := ParseDocument(src)
	require.NotNil(t, failure)
	require.Len(t, failure.Diagnostics, 1)
	require.Equal(t, "raw string", failure.Diagnostics[0].Label)
	require.Equal(t, "unterminated raw string", failure.Diagnostics[0].Help)
}

func TestParseDocument_MissingClosingBraceIsUnrecoverable(t *testing.T) {
	src := "node {\n  child\n"
	_, failure := ParseDocument(src)
	require.NotNil(t, failure)
	found := false
	for _, d := range failure.Diagnostics {
		if d.Label == "closing of children" {
			found = true
		}
	}
	require.True(t, found, "expected a 'closing of children' diagnostic, got %v", failure.Diagnostics)
}

func TestParseDocument_RawStringHashMatching(t *testing.T) {
	doc := roundTrip(t, "node ##\"a \"# b\"##\n")
	require.Equal(t, `a "# b`, doc.Nodes[0].Entries[0].Value.String)
}

func TestParseDocument_NumericUnderscoreSeparators(t *testing.T) {
	doc := roundTrip(t, "node 1_000_000\n")
	require.Equal(t, int64(1000000), doc.Nodes[0].Entries[0].Value.Int.Int64())
}

func TestParseDocument_KeywordCaseInsensitiveIdentifierCaseSensitive(t *testing.T) {
	doc := roundTrip(t, "node #TRUE\n")
	require.Equal(t, ast.KindBool, doc.Nodes[0].Entries[0].Value.Kind)
	require.True(t, doc.Nodes[0].Entries[0].Value.Bool)

	doc2 := roundTrip(t, "True\n")
	require.Equal(t, "True", doc2.Nodes[0].Name.Value)
}

func TestParseDocument_TwoIndependentErrorsInOnePass(t *testing.T) {
	// Each node has its own unrecognized keyword; recovery must let
	// parsing continue past the first before reporting the second.
	src := "a #bogus\nb #alsobogus\n"
	doc, failure := ParseDocument(src)
	require.Nil(t, doc)
	require.NotNil(t, failure)
	require.Len(t, failure.Diagnostics, 2)
	require.Equal(t, "keyword", failure.Diagnostics[0].Label)
	require.Equal(t, "keyword", failure.Diagnostics[1].Label)
	require.Less(t, failure.Diagnostics[0].Span.Start, failure.Diagnostics[1].Span.Start)
}

func TestParseDocument_Idempotence(t *testing.T) {
	src := "node (ty)1 key=#true {\n  // comment\n  child 1.5e10\n}\n"
	doc := roundTrip(t, src)
	again, failure := ParseDocument(format.Render(doc))
	require.Nil(t, failure)
	require.Equal(t, format.Render(doc), format.Render(again))
}

func TestParseNode(t *testing.T) {
	node, failure := ParseNode("  foo bar=1\n")
	require.Nil(t, failure)
	require.Equal(t, "foo", node.Name.Value)
	require.Len(t, node.Entries, 1)
}

func TestParseEntry(t *testing.T) {
	entry, failure := ParseEntry("key=\"value\"")
	require.Nil(t, failure)
	require.True(t, entry.IsProperty())
	require.Equal(t, "value", entry.Value.String)
}

func TestParseDocument_RenderedOutputReparsesToEquivalentTree(t *testing.T) {
	src := "parent (ty)1 key=2 {\n  child ##\"raw\"## 1_000\n}\n"
	doc, failure := ParseDocument(src)
	require.Nil(t, failure)

	reparsed, failure := ParseDocument(format.Render(doc))
	require.Nil(t, failure)

	if diff := cmp.Diff(doc, reparsed, docCmpOpts...); diff != "" {
		t.Errorf("render/reparse changed the tree (-original +reparsed):\n%s", diff)
	}
}

func TestParseIdentifier(t *testing.T) {
	id, failure := ParseIdentifier("foo.bar")
	require.Nil(t, failure)
	require.Equal(t, "foo.bar", id.Value)
}

func TestParseValue(t *testing.T) {
	v, failure := ParseValue("-12.5")
	require.Nil(t, failure)
	require.Equal(t, ast.KindFloat, v.Kind)
	require.Equal(t, -12.5, v.Float)
}

func TestParseNode_RejectsTrailingContent(t *testing.T) {
	_, failure := ParseNode("foo bar\nextra")
	require.NotNil(t, failure)
}
