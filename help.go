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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlkit %s**

A height-balanced binary search tree with integer keys, plus a small driver to watch it rebalance.

Built with Go %s

# 1. Commands
* **demo** inserts 0..N-1 in order and prints the tree after every insertion
* **run FILE** executes a script of session commands, stopping at the first error
* **shell** reads session commands from standard input
* **load** bulk inserts keys with a progress bar and verifies every invariant
* **settings** shows (and creates) the configuration file ~/.avlkit.yaml

# 2. Session commands
* insert KEY [VALUE...]
* delete KEY
* lookup KEY
* print, keys, check, stats, clear, copy

Lines starting with # are comments.

# 3. Reading the tree
Keys are printed in preorder, children indented below their parent.
Green keys are perfectly balanced, yellow keys lean one level to a side.

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
