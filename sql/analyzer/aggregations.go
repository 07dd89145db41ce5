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
	"strings"

	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
	"github.com/quelldb/quell/sql/plan"
)

// rewriteDistincts rewrites SELECT DISTINCT into an aggregation grouped by
// every output column: Distinct(child) becomes an unresolved aggregation
// whose grouping keys and projection are both the child's output.
func rewriteDistincts(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	span, _ := ctx.Span("rewrite_distincts")
	defer span.Finish()

	return plan.TransformUp(n, func(n sql.Node) (sql.Node, error) {
		d, ok := n.(*plan.Distinct)
		if !ok || !d.Child.Resolved() {
			return n, nil
		}

		a.Log("rewriting distinct as aggregation over %d columns", len(d.Child.Schema()))
		output := expression.SchemaAttributes(d.Child.Schema())
		return plan.NewUnresolvedAggregate(
			expression.SchemaAttributes(d.Child.Schema()),
			output,
			d.Child,
		), nil
	})
}

// rewriteGlobalAggregates turns any projection containing an aggregate
// function into an aggregation with no grouping keys.
func rewriteGlobalAggregates(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	span, _ := ctx.Span("rewrite_global_aggregates")
	defer span.Finish()

	return plan.TransformUp(n, func(n sql.Node) (sql.Node, error) {
		p, ok := n.(*plan.Project)
		if !ok || !p.Child.Resolved() {
			return n, nil
		}

		if !expression.HasAggregation(p.Projections...) {
			return n, nil
		}

		a.Log("rewriting projection as global aggregation")
		return plan.NewUnresolvedAggregate(nil, p.Projections, p.Child), nil
	})
}

// absorbHavingConditions folds a Filter directly above an unresolved
// aggregation into the aggregation's having conditions. The condition is
// resolved against the aggregation's projection first: references to a
// projection alias are bound and then unaliased, so HAVING operates on the
// underlying expression; everything else binds against the aggregation
// input. The rewritten condition must not reference a window function,
// because HAVING is evaluated before windows.
func absorbHavingConditions(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	span, _ := ctx.Span("absorb_having")
	defer span.Finish()

	return plan.TransformUp(n, func(n sql.Node) (sql.Node, error) {
		f, ok := n.(*plan.Filter)
		if !ok {
			return n, nil
		}
		agg, ok := f.Child.(*plan.UnresolvedAggregate)
		if !ok || !absorptionReady(agg) {
			return n, nil
		}

		cond, err := resolveAgainstProjection(f.Expression, agg)
		if err != nil {
			return nil, err
		}

		if wins := expression.CollectWindowFunctions(cond); len(wins) > 0 {
			return nil, ErrWindowInHaving.New(cond, wins[0])
		}

		a.Log("absorbed having condition: %s", cond)
		return agg.WithHaving(cond), nil
	})
}

// absorbSorts folds a Sort directly above an unresolved aggregation into the
// aggregation's sort fields. Only one ORDER BY binds to an aggregation: a
// sort is absorbed only while the aggregation carries no order, and once a
// sort has been absorbed any outer sort is discarded, so the sort adjacent
// to the aggregation wins.
func absorbSorts(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	span, _ := ctx.Span("absorb_sorts")
	defer span.Finish()

	return plan.TransformUp(n, func(n sql.Node) (sql.Node, error) {
		s, ok := n.(*plan.Sort)
		if !ok {
			return n, nil
		}
		agg, ok := s.Child.(*plan.UnresolvedAggregate)
		if !ok || !absorptionReady(agg) {
			return n, nil
		}

		if len(agg.SortFields) > 0 {
			a.Log("discarding outer sort, aggregation already ordered")
			return agg, nil
		}

		fields := make(sql.SortFields, len(s.SortFields))
		copy(fields, s.SortFields)
		for i, field := range fields {
			col, err := resolveAgainstProjection(field.Column, agg)
			if err != nil {
				return nil, err
			}
			fields[i].Column = col
		}

		a.Log("absorbed sort: %s", fields.ToExpressions())
		return agg.WithSortFields(fields), nil
	})
}

// absorptionReady returns whether the aggregation's projection is resolved
// enough for a HAVING or ORDER BY clause to bind names against it.
func absorptionReady(agg *plan.UnresolvedAggregate) bool {
	return agg.Child.Resolved() &&
		expression.ExpressionsResolved(agg.SelectedExprs...)
}

// resolveAgainstProjection binds the references of a HAVING or ORDER BY
// expression: names matching a projection alias bind to that alias and are
// unaliased to its underlying expression; anything else binds against the
// aggregation input. A name binding to neither is an error.
func resolveAgainstProjection(e sql.Expression, agg *plan.UnresolvedAggregate) (sql.Expression, error) {
	aliases := projectionAliases(agg.SelectedExprs)

	return expression.TransformUp(e, func(e sql.Expression) (sql.Expression, error) {
		switch e := e.(type) {
		case *expression.UnresolvedColumn:
			if e.Table() == "" {
				for _, al := range aliases {
					if strings.EqualFold(al.Name(), e.Name()) {
						return al.Child, nil
					}
				}
			}
			col, err := findColumn(agg.Child.Schema(), e.Table(), e.Name())
			if err != nil {
				return nil, err
			}
			return expression.AttributeFromColumn(col), nil
		case *expression.AttributeRef:
			for _, al := range aliases {
				if al.ID() == e.ID() {
					return al.Child, nil
				}
			}
		}
		return e, nil
	})
}

func projectionAliases(exprs []sql.Expression) []*expression.Alias {
	var aliases []*expression.Alias
	for _, e := range exprs {
		if al, ok := e.(*expression.Alias); ok {
			aliases = append(aliases, al)
		}
	}
	return aliases
}
