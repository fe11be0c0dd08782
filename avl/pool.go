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

// PoolStats reports node allocation for one tree.
type PoolStats struct {
	Live  int // nodes currently linked into the tree
	Free  int // released nodes waiting for reuse
	Total int // nodes ever created
}

// pool hands out nodes for a single tree and keeps released ones on a
// free list chained through the right pointer.
type pool[V any] struct {
	free     *node[V]
	capacity int // 0 means unbounded
	live     int
	freeN    int
	total    int
}

func newPool[V any](capacity int) *pool[V] {
	return &pool[V]{capacity: capacity}
}

// get returns a fresh leaf, reusing a released node when one exists
func (p *pool[V]) get(key int, value V) (*node[V], error) {
	if p.capacity > 0 && p.live >= p.capacity {
		return nil, ErrAllocation
	}

	n := p.free
	if n == nil {
		if p.freeN != 0 {
			panic("avl: node pool corrupt")
		}
		n = &node[V]{}
		p.total++
	} else {
		p.free = n.right
		p.freeN--
	}

	n.key = key
	n.value = value
	n.height = 1
	n.left = nil
	n.right = nil
	p.live++
	return n, nil
}

// put takes back an unlinked node. The value is cleared so the pool
// does not keep caller data reachable.
func (p *pool[V]) put(n *node[V]) {
	var zero V
	n.key = 0
	n.value = zero
	n.height = 0
	n.left = nil
	n.right = p.free

	p.free = n
	p.freeN++
	p.live--
}

func (p *pool[V]) stats() PoolStats {
	return PoolStats{Live: p.live, Free: p.freeN, Total: p.total}
}
