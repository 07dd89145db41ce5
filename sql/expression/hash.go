// Copyright 2026 The Quell Authors
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

package expression

import (
	"github.com/cespare/xxhash"

	"github.com/quelldb/quell/sql"
)

// HashOf returns a structural hash of the expression, computed over its
// rendered form. Hash equality is a fast pre-filter; callers confirm with
// ExpressionsEqual before treating two expressions as the same.
func HashOf(e sql.Expression) uint64 {
	return xxhash.Sum64String(e.String())
}

// dedup keeps the first occurrence of every structurally distinct
// expression, preserving first-seen order.
type dedup struct {
	byHash map[uint64][]sql.Expression
	exprs  []sql.Expression
}

func newDedup() *dedup {
	return &dedup{byHash: make(map[uint64][]sql.Expression)}
}

// add records the expression if no structurally equal one was seen before.
// It reports whether the expression was new.
func (d *dedup) add(e sql.Expression) bool {
	h := HashOf(e)
	for _, seen := range d.byHash[h] {
		if ExpressionsEqual(e, seen) {
			return false
		}
	}
	d.byHash[h] = append(d.byHash[h], e)
	d.exprs = append(d.exprs, e)
	return true
}

// all returns the recorded expressions in first-seen order.
func (d *dedup) all() []sql.Expression {
	return d.exprs
}
