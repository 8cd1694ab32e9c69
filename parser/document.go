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
)

// parseTopLevelDocument implements component J: an optional BOM followed
// by zero or more nodes, consuming to EOF.
func (in *input) parseTopLevelDocument() *ast.Document {
	start := in.save()
	var bom string
	if in.eatString(chars.BOM) {
		bom = chars.BOM
	}
	nodes, leading, trailing := in.parseNodeList("")
	return &ast.Document{
		Nodes: nodes,
		Format: ast.DocumentFormat{
			BOM:      bom,
			Leading:  leading,
			Trailing: trailing,
		},
		Span: in.span(int(start)),
	}
}
