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

// Delete removes key and returns the value it held. The value is handed
// back to the caller untouched. The bool is false when the key is not
// in the tree.
func (t *Tree[V]) Delete(key int) (V, bool) {
	if !t.valid() {
		var zero V
		return zero, false
	}
	root, value, removed := t.deleteNode(t.root, key)
	t.root = root
	if removed {
		t.count--
	}
	return value, removed
}

func (t *Tree[V]) deleteNode(n *node[V], key int) (*node[V], V, bool) {
	var value V
	if n == nil {
		return nil, value, false // key not found
	}

	removed := false
	switch {
	case key < n.key:
		n.left, value, removed = t.deleteNode(n.left, key)
	case key > n.key:
		n.right, value, removed = t.deleteNode(n.right, key)
	default:
		value, removed = n.value, true

		// zero or one child: splice the child into our slot
		if n.left == nil || n.right == nil {
			child := n.left
			if child == nil {
				child = n.right
			}
			t.pool.put(n)
			return child, value, true
		}

		// two children: take over the successor's binding, then
		// remove the successor's own node from the right sub-tree
		successor := minNode(n.right)
		n.key, n.value = successor.key, successor.value
		n.right, _, _ = t.deleteNode(n.right, n.key)
	}

	if !removed {
		return n, value, false
	}

	updateHeight(n)
	return rebalance(n), value, true
}
