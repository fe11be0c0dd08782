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

// Lookup returns the value stored under key and whether it was found.
// An empty tree and a missing key look the same.
func (t *Tree[V]) Lookup(key int) (V, bool) {
	if !t.valid() {
		var zero V
		return zero, false
	}
	return lookup(t.root, key)
}

func lookup[V any](n *node[V], key int) (V, bool) {
	if n == nil {
		var zero V
		return zero, false
	}

	if key < n.key {
		return lookup(n.left, key)
	} else if key > n.key {
		return lookup(n.right, key)
	}
	return n.value, true
}

// Contains reports whether key is present.
func (t *Tree[V]) Contains(key int) bool {
	_, ok := t.Lookup(key)
	return ok
}

// Min returns the lowest key and its value.
func (t *Tree[V]) Min() (int, V, bool) {
	if !t.valid() || t.root == nil {
		var zero V
		return 0, zero, false
	}
	n := minNode(t.root)
	return n.key, n.value, true
}

// Max returns the highest key and its value.
func (t *Tree[V]) Max() (int, V, bool) {
	if !t.valid() || t.root == nil {
		var zero V
		return 0, zero, false
	}
	n := maxNode(t.root)
	return n.key, n.value, true
}
