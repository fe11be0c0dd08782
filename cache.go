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
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Renderings are only useful while the tree is unchanged, keep them briefly
	renderCacheExpiration = 10 * time.Minute
	// Clean up expired entries every minute
	renderCacheCleanup = time.Minute
)

// NewRenderCache creates a cache of tree renderings keyed by generation
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

func CacheRender(c *cache.Cache, generation uint64, text string) {
	c.Set(strconv.FormatUint(generation, 10), text, renderCacheExpiration)
}

func GetRender(c *cache.Cache, generation uint64) (string, bool) {
	val, ok := c.Get(strconv.FormatUint(generation, 10))
	if !ok {
		return "", false
	}
	return val.(string), true
}
