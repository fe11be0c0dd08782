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

// Insert stores value under key. An existing key has its value replaced
// in place. On error the tree is left exactly as it was.
func (t *Tree[V]) Insert(key int, value V) error {
	if !t.valid() {
		return ErrInvalidHandle
	}
	root, added, err := t.insertNode(t.root, key, value)
	if err != nil {
		return err
	}
	t.root = root
	if added {
		t.count++
	}
	return nil
}

func (t *Tree[V]) insertNode(n *node[V], key int, value V) (*node[V], bool, error) {
	if n == nil {
		leaf, err := t.pool.get(key, value)
		if err != nil {
			return nil, false, err
		}
		return leaf, true, nil
	}

	var (
		child *node[V]
		added bool
		err   error
	)
	switch {
	case key < n.key:
		child, added, err = t.insertNode(n.left, key, value)
		if err != nil {
			return n, false, err
		}
		n.left = child
	case key > n.key:
		child, added, err = t.insertNode(n.right, key, value)
		if err != nil {
			return n, false, err
		}
		n.right = child
	default:
		// upsert: same node, new value
		n.value = value
		return n, false, nil
	}

	updateHeight(n)

	bf := balance(n)
	switch {
	// Left-left
	case bf < -1 && key < n.left.key:
		return rotateRight(n), added, nil
	// Right-right
	case bf > 1 && key > n.right.key:
		return rotateLeft(n), added, nil
	// Left-right
	case bf < -1 && key > n.left.key:
		n.left = rotateLeft(n.left)
		return rotateRight(n), added, nil
	// Right-left
	case bf > 1 && key < n.right.key:
		n.right = rotateRight(n.right)
		return rotateLeft(n), added, nil
	}

	return n, added, nil
}
