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

// Check walks the whole tree and verifies key ordering, stored heights,
// the balance bound and the node count. The first violation found is
// returned wrapped around ErrCorrupt.
func (t *Tree[V]) Check() error {
	if !t.valid() {
		return ErrInvalidHandle
	}
	nodes, err := check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if nodes != t.count {
		return errors.Wrapf(ErrCorrupt, "count %d but %d nodes reachable", t.count, nodes)
	}
	if live := t.pool.stats().Live; live != nodes {
		return errors.Wrapf(ErrCorrupt, "pool reports %d live nodes but %d reachable", live, nodes)
	}
	return nil
}

// internal: keys of n must lie strictly between low and high, a nil
// bound is unlimited
func check[V any](n *node[V], low, high *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	if low != nil && n.key <= *low {
		return 0, errors.Wrapf(ErrCorrupt, "key %d not above %d", n.key, *low)
	}
	if high != nil && n.key >= *high {
		return 0, errors.Wrapf(ErrCorrupt, "key %d not below %d", n.key, *high)
	}

	nl, err := check(n.left, low, &n.key)
	if err != nil {
		return 0, err
	}
	nr, err := check(n.right, &n.key, high)
	if err != nil {
		return 0, err
	}

	if want := max(height(n.left), height(n.right)) + 1; n.height != want {
		return 0, errors.Wrapf(ErrCorrupt, "key %d: height %d, expected %d", n.key, n.height, want)
	}
	if bf := balance(n); bf < -1 || bf > 1 {
		return 0, errors.Wrapf(ErrCorrupt, "key %d: balance %+d", n.key, bf)
	}
	return 1 + nl + nr, nil
}
