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
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlkit/avl"
)

func TestLoadKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	keys, err := loadKeys(4, OrderAscending, rng)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, keys)

	keys, err = loadKeys(4, OrderDescending, rng)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, keys)

	keys, err = loadKeys(50, OrderRandom, rng)
	require.NoError(t, err)
	assert.Len(t, keys, 50)
	assert.ElementsMatch(t, mustKeys(t, 50), keys)

	_, err = loadKeys(4, "sideways", rng)
	assert.Error(t, err)
}

func mustKeys(t *testing.T, n int) []int {
	t.Helper()
	keys, err := loadKeys(n, OrderAscending, nil)
	require.NoError(t, err)
	return keys
}

func TestBulkLoad(t *testing.T) {
	testCases := []struct {
		Name      string
		Options   LoadOptions
		Len       int
		MaxHeight int
	}{
		{Name: "ascending", Options: LoadOptions{Count: 1023, Order: OrderAscending}, Len: 1023, MaxHeight: 10},
		{Name: "descending", Options: LoadOptions{Count: 1000, Order: OrderDescending}, Len: 1000, MaxHeight: 14},
		{Name: "random with deletes", Options: LoadOptions{Count: 2000, Order: OrderRandom, Seed: 7, DeleteFraction: 0.5}, Len: 1000, MaxHeight: 14},
		{Name: "delete everything", Options: LoadOptions{Count: 300, Order: OrderRandom, Seed: 3, DeleteFraction: 1}, Len: 0, MaxHeight: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree, err := avl.New[string]()
			require.NoError(t, err)
			defer tree.Destroy()

			var progress bytes.Buffer
			tc.Options.Progress = &progress
			report, err := bulkLoad(tree, tc.Options)
			require.NoError(t, err)

			assert.Equal(t, tc.Options.Count, report.Inserted)
			assert.Equal(t, tc.Len, report.Len)
			assert.LessOrEqual(t, report.Height, tc.MaxHeight)
			assert.NotZero(t, progress.Len(), "progress bar written")
		})
	}
}

func TestBulkLoadRejectsBadOptions(t *testing.T) {
	tree, err := avl.New[string]()
	require.NoError(t, err)

	_, err = bulkLoad(tree, LoadOptions{Count: -1, Order: OrderAscending})
	assert.Error(t, err)
	_, err = bulkLoad(tree, LoadOptions{Count: 10, Order: OrderAscending, DeleteFraction: 1.5})
	assert.Error(t, err)
	assert.True(t, tree.IsEmpty())
}

func TestBulkLoadCapacity(t *testing.T) {
	tree, err := avl.New[string](avl.WithCapacity(10))
	require.NoError(t, err)

	report, err := bulkLoad(tree, LoadOptions{Count: 20, Order: OrderAscending})
	assert.ErrorIs(t, err, avl.ErrAllocation)
	assert.Equal(t, 10, report.Inserted)
	require.NoError(t, tree.Check())
}
