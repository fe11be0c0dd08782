// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/cybrota/avlkit/avl"
)

// renderTree draws the tree for the terminal. Without a palette this is
// exactly the plain avl rendering; with one each key is colored by its
// balance and annotated with height, balance and value.
func renderTree(tree *avl.Tree[string], indent int, p *Palette) string {
	if p == nil {
		return tree.Print()
	}

	var sb strings.Builder
	tree.Preorder(func(v avl.Visit[string]) bool {
		sb.WriteString(strings.Repeat(" ", v.Depth*indent))
		sb.WriteString(p.keyStyle(v.Balance).Render(fmt.Sprintf("%4d", v.Key)))
		sb.WriteString(p.Muted.Render(fmt.Sprintf(" h=%d bf=%+d", v.Height, v.Balance)))
		if v.Value != "" {
			sb.WriteString(" ")
			sb.WriteString(p.Value.Render(v.Value))
		}
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}
