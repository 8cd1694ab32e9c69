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

package format_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kralicky/kdl/ast"
	"github.com/kralicky/kdl/format"
	"github.com/kralicky/kdl/parser"
)

func TestRenderHandBuiltDocument(t *testing.T) {
	doc := &ast.Document{
		Nodes: []*ast.Node{
			{
				Name: ast.Identifier{Value: "foo", Repr: "foo"},
				Entries: []*ast.Entry{
					{
						Value:  ast.Value{Kind: ast.KindString, String: "bar"},
						Format: ast.EntryFormat{Leading: " ", ValueRepr: `"bar"`},
					},
				},
				Format: ast.NodeFormat{Trailing: "\n"},
			},
		},
	}
	require.Equal(t, "foo \"bar\"\n", format.Render(doc))
}

func TestRenderMatchesParseForVariedSources(t *testing.T) {
	sources := []string{
		"foo\n",
		"node 1 2 3\n",
		"node key=1 other=\"two\"\n",
		"parent {\n  child1\n  child2 1\n}\n",
		"(ty)node (int)1\n",
		"node ##\"raw\"##\n",
	}
	for _, src := range sources {
		doc, failure := parser.ParseDocument(src)
		require.Nil(t, failure, "source: %q", src)
		require.Equal(t, src, format.Render(doc), "source: %q", src)
	}
}
