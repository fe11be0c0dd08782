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

var (
	// ErrInvalidHandle is returned for a nil or destroyed tree.
	ErrInvalidHandle = errors.New("avl: invalid tree handle")
	// ErrAllocation is returned when no node can be obtained for a new key.
	ErrAllocation = errors.New("avl: node allocation failed")
	// ErrInvalidOption is returned by New for an unusable option value.
	ErrInvalidOption = errors.New("avl: invalid option")
	// ErrCorrupt is wrapped by Check when an invariant does not hold.
	ErrCorrupt = errors.New("avl: tree corrupt")
)
