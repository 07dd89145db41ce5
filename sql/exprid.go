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

package sql

import "sync/atomic"

// ExprID identifies a named expression across tree rewrites. Tree rewriting
// freely clones nodes, so pointer identity is useless; any equality that must
// survive a rewrite compares ids instead.
type ExprID uint64

var exprIDSequence uint64

// FreshExprID mints a new, process-wide unique expression id.
func FreshExprID() ExprID {
	return ExprID(atomic.AddUint64(&exprIDSequence, 1))
}
