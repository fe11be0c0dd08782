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
	"io"
	"math/rand"
	"strconv"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlkit/avl"
)

const (
	OrderAscending  = "asc"
	OrderDescending = "desc"
	OrderRandom     = "random"
)

type LoadOptions struct {
	Count          int
	Order          string
	Seed           int64
	DeleteFraction float64   // share of the loaded keys removed again
	Progress       io.Writer // progress bar output, nil hides it
}

type LoadReport struct {
	Inserted int
	Deleted  int
	Len      int
	Height   int
}

// loadKeys produces 0..count-1 in the requested order
func loadKeys(count int, order string, rng *rand.Rand) ([]int, error) {
	keys := make([]int, count)
	switch order {
	case OrderAscending:
		for i := range keys {
			keys[i] = i
		}
	case OrderDescending:
		for i := range keys {
			keys[i] = count - 1 - i
		}
	case OrderRandom:
		keys = rng.Perm(count)
	default:
		return nil, errors.Errorf("unknown order %q, use asc, desc or random", order)
	}
	return keys, nil
}

func newBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(0),
		progressbar.OptionClearOnFinish(),
	)
}

// bulkLoad inserts Count keys, optionally deletes a random share of them
// and verifies the tree afterwards.
func bulkLoad(tree *avl.Tree[string], opts LoadOptions) (LoadReport, error) {
	var report LoadReport
	if opts.Count < 0 {
		return report, errors.Errorf("count must not be negative: %d", opts.Count)
	}
	if opts.DeleteFraction < 0 || opts.DeleteFraction > 1 {
		return report, errors.Errorf("delete fraction must be within [0, 1]: %g", opts.DeleteFraction)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	keys, err := loadKeys(opts.Count, opts.Order, rng)
	if err != nil {
		return report, err
	}

	bar := newBar(opts.Progress, len(keys), "inserting")
	for _, k := range keys {
		if err := tree.Insert(k, strconv.Itoa(k)); err != nil {
			return report, errors.Wrapf(err, "insert %d", k)
		}
		report.Inserted++
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	victims := int(float64(len(keys)) * opts.DeleteFraction)
	if victims > 0 {
		order := rng.Perm(len(keys))[:victims]
		bar = newBar(opts.Progress, victims, "deleting")
		for _, i := range order {
			if _, ok := tree.Delete(keys[i]); !ok {
				return report, errors.Errorf("key %d vanished before delete", keys[i])
			}
			report.Deleted++
			_ = bar.Add(1)
		}
		_ = bar.Finish()
	}

	if err := tree.Check(); err != nil {
		return report, errors.Wrap(err, "verify")
	}
	report.Len = tree.Len()
	report.Height = tree.Height()
	return report, nil
}
