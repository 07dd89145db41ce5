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

package analyzer

import (
	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
	"github.com/quelldb/quell/sql/expression/function/aggregation"
	"github.com/quelldb/quell/sql/plan"
)

// rejectDistinctAggregates fails when any distinct aggregate function
// survives analysis. Lowering distinct aggregates is a deliberate,
// documented limitation.
func rejectDistinctAggregates(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	span, _ := ctx.Span("reject_distinct_aggregates")
	defer span.Finish()

	var offender sql.Expression
	plan.InspectExpressions(n, func(e sql.Expression) bool {
		if offender != nil {
			return false
		}
		if _, ok := e.(sql.DistinctAggregation); ok {
			offender = e
			return false
		}
		return true
	})

	if offender != nil {
		return nil, aggregation.ErrDistinctUnsupported.New(offender)
	}
	return n, nil
}

// ensureResolved fails when analysis left any node or expression unresolved.
func ensureResolved(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	span, _ := ctx.Span("ensure_resolved")
	defer span.Finish()

	if !n.Resolved() {
		var unresolved sql.Node
		plan.Inspect(n, func(n sql.Node) bool {
			if unresolved == nil && n != nil && !n.Resolved() {
				unresolved = n
			}
			return unresolved == nil
		})
		if unresolved == nil {
			unresolved = n
		}
		return nil, ErrUnresolvedNode.New(unresolved)
	}

	var unresolvedExpr sql.Expression
	plan.InspectExpressions(n, func(e sql.Expression) bool {
		if unresolvedExpr == nil && !e.Resolved() {
			if _, ok := e.(*expression.Star); !ok {
				unresolvedExpr = e
			}
		}
		return unresolvedExpr == nil
	})
	if unresolvedExpr != nil {
		return nil, sql.ErrUnresolvedExpression.New(unresolvedExpr)
	}

	return n, nil
}
