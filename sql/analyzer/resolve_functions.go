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

// resolveFunctions binds UnresolvedFunction expressions against the catalog
// function registry. A DISTINCT call wraps the built aggregation in the
// distinct-aggregate wrapper.
func resolveFunctions(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	span, _ := ctx.Span("resolve_functions")
	defer span.Finish()

	a.Log("resolve functions, node of type %T", n)
	return plan.TransformExpressionsUp(n, func(e sql.Expression) (sql.Expression, error) {
		uf, ok := e.(*expression.UnresolvedFunction)
		if !ok {
			return e, nil
		}

		name := uf.Name()
		f, err := a.Catalog.Function(name)
		if err != nil {
			return nil, err
		}

		fn, err := f.Build(uf.Arguments...)
		if err != nil {
			return nil, err
		}

		if uf.Distinct {
			agg, ok := fn.(sql.Aggregation)
			if !ok {
				return nil, sql.ErrInvalidType.New(name)
			}
			fn = aggregation.NewDistinct(agg)
		}

		a.Log("resolved function %q", name)
		return fn, nil
	})
}
