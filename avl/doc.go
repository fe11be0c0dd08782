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

// Package avl is a height-balanced binary search tree keyed by int.
//
// Every node stores its height and after each insert or delete the
// ancestors on the path are re-measured and rotated so that the left
// and right subtree heights of any node differ by at most one.
//
// Values are owned by the caller. The tree keeps a reference only and
// hands it back from Delete; it never closes or frees anything it stores.
//
// Note: a tree is not thread safe. Access it from a single goroutine
// or guard it with a mutex.
package avl
