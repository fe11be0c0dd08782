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

package avl

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Print renders the tree in preorder, one key per line, each level
// indented further than its parent. Meant for diagnostics only.
func (t *Tree[V]) Print() string {
	var buf bytes.Buffer
	_ = t.Fprint(&buf)
	return buf.String()
}

// Fprint writes the Print rendering to w.
func (t *Tree[V]) Fprint(w io.Writer) error {
	if !t.valid() {
		return ErrInvalidHandle
	}
	var err error
	t.Preorder(func(v Visit[V]) bool {
		pad := strings.Repeat(" ", v.Depth*t.indent)
		_, err = fmt.Fprintf(w, "%s%4d\n", pad, v.Key)
		return err == nil
	})
	return err
}
