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
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/cybrota/avlkit/avl"
)

var demoSeparator = strings.Repeat("=", 38)

// runDemo inserts 0..count-1 in key order and draws the tree after each
// insertion. It returns the final plain rendering.
func runDemo(w io.Writer, cfg *Config, count int, palette *Palette) (string, error) {
	if count < 0 {
		return "", errors.Errorf("count must not be negative: %d", count)
	}

	tree, err := avl.New[string](cfg.treeOptions()...)
	if err != nil {
		return "", errors.Wrap(err, "create tree")
	}
	defer tree.Destroy()

	fmt.Fprintln(w, "AVL Driver")
	for i := 0; i < count; i++ {
		if err := tree.Insert(i, ""); err != nil {
			return "", errors.Wrapf(err, "insert %d", i)
		}
		fmt.Fprint(w, renderTree(tree, cfg.Tree.Indent, palette))
		fmt.Fprintln(w, demoSeparator)
	}

	if err := tree.Check(); err != nil {
		return "", err
	}
	return tree.Print(), nil
}
