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

import "github.com/pkg/errors"

// DefaultIndent is the number of spaces Print adds per tree level.
const DefaultIndent = 5

// Tree holds the root of an AVL tree. Rotations may replace the root
// node, so callers keep the Tree and never a node.
type Tree[V any] struct {
	root      *node[V]
	count     int
	pool      *pool[V]
	indent    int
	destroyed bool
}

type options struct {
	capacity int
	indent   int
}

// Option configures a Tree in New.
type Option func(*options)

// WithCapacity limits the number of nodes the tree may hold at once.
// Zero means no limit. Insert of a new key beyond the limit fails with
// ErrAllocation.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithIndent sets the per-level indentation used by Print.
func WithIndent(n int) Option {
	return func(o *options) { o.indent = n }
}

// New creates an empty tree.
func New[V any](opts ...Option) (*Tree[V], error) {
	o := options{indent: DefaultIndent}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidOption, "capacity %d", o.capacity)
	}
	if o.indent < 0 {
		return nil, errors.Wrapf(ErrInvalidOption, "indent %d", o.indent)
	}
	return &Tree[V]{
		pool:   newPool[V](o.capacity),
		indent: o.indent,
	}, nil
}

func (t *Tree[V]) valid() bool {
	return t != nil && !t.destroyed
}

// Destroy releases every node, children before parents, and retires
// the handle. Stored values are dropped, never closed. Any later call
// on the tree behaves as on an invalid handle.
func (t *Tree[V]) Destroy() error {
	if !t.valid() {
		return ErrInvalidHandle
	}
	t.release(t.root)
	t.root = nil
	t.count = 0
	t.pool = nil
	t.destroyed = true
	return nil
}

// post-order walk returning nodes to the pool
func (t *Tree[V]) release(n *node[V]) {
	if n == nil {
		return
	}
	t.release(n.left)
	t.release(n.right)
	t.pool.put(n)
}

// Clear removes every node but keeps the tree usable.
func (t *Tree[V]) Clear() error {
	if !t.valid() {
		return ErrInvalidHandle
	}
	t.release(t.root)
	t.root = nil
	t.count = 0
	return nil
}

// Len is the number of keys in the tree.
func (t *Tree[V]) Len() int {
	if !t.valid() {
		return 0
	}
	return t.count
}

// IsEmpty is true when the tree holds no keys.
func (t *Tree[V]) IsEmpty() bool {
	return t.Len() == 0
}

// Height of the root, 0 for an empty tree.
func (t *Tree[V]) Height() int {
	if !t.valid() {
		return 0
	}
	return height(t.root)
}

// Root returns the key currently at the root.
func (t *Tree[V]) Root() (int, bool) {
	if !t.valid() || t.root == nil {
		return 0, false
	}
	return t.root.key, true
}

// Stats reports the node pool counters.
func (t *Tree[V]) Stats() PoolStats {
	if !t.valid() {
		return PoolStats{}
	}
	return t.pool.stats()
}
