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

type node[V any] struct {
	key    int
	value  V
	height int // 1 for a leaf
	left   *node[V]
	right  *node[V]
}

// height of a sub-tree, nil counts as 0
func height[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func updateHeight[V any](n *node[V]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balance is height(right) - height(left); negative means left-heavy
func balance[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return height(n.right) - height(n.left)
}

// rotateRight lifts the left child into the place of n.
//
//	    n            l
//	   / \          / \
//	  l   c   =>   a   n
//	 / \              / \
//	a   b            b   c
func rotateRight[V any](n *node[V]) *node[V] {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	// n is now below pivot, so it must be measured first
	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rotateLeft is the mirror image of rotateRight.
func rotateLeft[V any](n *node[V]) *node[V] {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rebalance restores |balance| <= 1 at n using the current heights of
// its children. Used on the delete path where there is no inserted key
// to steer by.
func rebalance[V any](n *node[V]) *node[V] {
	bf := balance(n)

	// Left-heavy
	if bf < -1 {
		if balance(n.left) <= 0 {
			return rotateRight(n)
		}
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}

	// Right-heavy
	if bf > 1 {
		if balance(n.right) >= 0 {
			return rotateLeft(n)
		}
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}

func minNode[V any](n *node[V]) *node[V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[V any](n *node[V]) *node[V] {
	for n.right != nil {
		n = n.right
	}
	return n
}
