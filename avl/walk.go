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

// Visit describes one node during a Preorder walk.
type Visit[V any] struct {
	Key     int
	Value   V
	Depth   int // root is 0
	Height  int
	Balance int // height(right) - height(left)
}

// Walk calls fn for every key in ascending order until fn returns false.
func (t *Tree[V]) Walk(fn func(key int, value V) bool) {
	if !t.valid() {
		return
	}
	inOrder(t.root, fn)
}

func inOrder[V any](n *node[V], fn func(int, V) bool) bool {
	if n == nil {
		return true
	}
	if !inOrder(n.left, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return inOrder(n.right, fn)
}

// Keys returns every key in ascending order.
func (t *Tree[V]) Keys() []int {
	keys := make([]int, 0, t.Len())
	t.Walk(func(key int, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Preorder visits each node before its left then right sub-tree until
// fn returns false.
func (t *Tree[V]) Preorder(fn func(Visit[V]) bool) {
	if !t.valid() {
		return
	}
	preOrder(t.root, 0, fn)
}

func preOrder[V any](n *node[V], depth int, fn func(Visit[V]) bool) bool {
	if n == nil {
		return true
	}
	v := Visit[V]{
		Key:     n.key,
		Value:   n.value,
		Depth:   depth,
		Height:  n.height,
		Balance: balance(n),
	}
	if !fn(v) {
		return false
	}
	if !preOrder(n.left, depth+1, fn) {
		return false
	}
	return preOrder(n.right, depth+1, fn)
}
