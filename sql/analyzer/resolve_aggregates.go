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
	"reflect"
	"strings"

	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
	"github.com/quelldb/quell/sql/plan"
)

// resolveAggregates turns every ready UnresolvedAggregate into the canonical
// layered plan:
//
//	Project
//	  └─ Sort                  (if ordered)
//	       └─ Window ...       (one layer per distinct window spec)
//	            └─ Filter      (if having conditions)
//	                 └─ Aggregate
//	                      └─ input
//
// A Filter or Sort directly above an unresolved aggregation is waiting for
// absorption, so the aggregation underneath is left untouched; an
// aggregation with unresolved clause expressions, or still carrying a
// distinct aggregate, is not ready either.
func resolveAggregates(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	span, _ := ctx.Span("resolve_aggregates")
	defer span.Finish()

	var apply func(n sql.Node) (sql.Node, error)
	apply = func(n sql.Node) (sql.Node, error) {
		switch node := n.(type) {
		case *plan.Filter:
			if _, pending := node.Child.(*plan.UnresolvedAggregate); pending {
				return n, nil
			}
		case *plan.Sort:
			if _, pending := node.Child.(*plan.UnresolvedAggregate); pending {
				return n, nil
			}
		case *plan.UnresolvedAggregate:
			child, err := apply(node.Child)
			if err != nil {
				return nil, err
			}
			if !reflect.DeepEqual(child, node.Child) {
				nn, err := node.WithChildren(child)
				if err != nil {
					return nil, err
				}
				node = nn.(*plan.UnresolvedAggregate)
			}
			if !aggregateReady(node) {
				return node, nil
			}
			a.Log("resolving aggregation with %d keys, %d selected expressions",
				len(node.GroupingExprs), len(node.SelectedExprs))
			return resolveAggregate(node)
		}

		children := n.Children()
		if len(children) == 0 {
			return n, nil
		}
		newChildren := make([]sql.Node, len(children))
		for i, c := range children {
			nc, err := apply(c)
			if err != nil {
				return nil, err
			}
			newChildren[i] = nc
		}
		return n.WithChildren(newChildren...)
	}

	return apply(n)
}

// aggregateReady returns whether all clause expressions are resolved and no
// distinct aggregate remains. Distinct aggregates never become resolvable;
// the validation batch rejects them with a dedicated error.
func aggregateReady(agg *plan.UnresolvedAggregate) bool {
	return agg.Child.Resolved() &&
		expression.ExpressionsResolved(agg.Expressions()...) &&
		!expression.HasDistinctAggregation(agg.Expressions()...)
}

// resolveAggregate rewrites one ready aggregation into the layered form.
func resolveAggregate(agg *plan.UnresolvedAggregate) (sql.Node, error) {
	if err := rejectIllegalClauses(agg); err != nil {
		return nil, err
	}

	// Alias every grouping key, and rewrite all clauses so occurrences of a
	// key become references to its attribute. Aggregate arguments that
	// coincide with a grouping key see the key attribute this way.
	keyAliases := make([]*expression.GroupingAlias, len(agg.GroupingExprs))
	keyIfaces := make([]expression.InternalAlias, len(agg.GroupingExprs))
	for i, k := range agg.GroupingExprs {
		keyAliases[i] = expression.NewGroupingAlias(i, k)
		keyIfaces[i] = keyAliases[i]
	}
	rewriteKeys := expression.AliasRewriter(keyIfaces...)
	restoreKeys := expression.AliasRestorer(keyIfaces...)

	selected, err := expression.TransformExpressions(agg.SelectedExprs, rewriteKeys)
	if err != nil {
		return nil, err
	}
	having, err := expression.TransformExpressions(agg.HavingExprs, rewriteKeys)
	if err != nil {
		return nil, err
	}
	order, err := expression.TransformExpressions(agg.SortFields.ToExpressions(), rewriteKeys)
	if err != nil {
		return nil, err
	}

	// One collection over every clause: the same aggregate appearing in
	// SELECT and HAVING yields exactly one alias.
	aggs, err := expression.CollectAggregations(concat(selected, having, order)...)
	if err != nil {
		return nil, err
	}
	if err := rejectNestedAggregates(aggs, restoreKeys); err != nil {
		return nil, err
	}

	aggAliases := make([]*expression.AggregationAlias, len(aggs))
	aggIfaces := make([]expression.InternalAlias, len(aggs))
	for i, ag := range aggs {
		aggAliases[i] = expression.NewAggregationAlias(i, ag)
		aggIfaces[i] = aggAliases[i]
	}
	rewriteAggs := rewriteAggregates(aggIfaces)

	if selected, err = applyPass(selected, rewriteAggs); err != nil {
		return nil, err
	}
	if having, err = applyPass(having, rewriteAggs); err != nil {
		return nil, err
	}
	if order, err = applyPass(order, rewriteAggs); err != nil {
		return nil, err
	}

	// Window functions are collected after keys and aggregates have been
	// rewritten, so a spec mentioning an aggregate references its attribute.
	wins := expression.CollectWindowFunctions(concat(selected, order)...)
	winAliases := make([]*expression.WindowAlias, len(wins))
	winIfaces := make([]expression.InternalAlias, len(wins))
	for i, w := range wins {
		winAliases[i] = expression.NewWindowAlias(i, w)
		winIfaces[i] = winAliases[i]
	}
	rewriteWins := expression.AliasRewriter(winIfaces...)

	if selected, err = expression.TransformExpressions(selected, rewriteWins); err != nil {
		return nil, err
	}
	if order, err = expression.TransformExpressions(order, rewriteWins); err != nil {
		return nil, err
	}

	// Restore composes inversely: windows, then aggregates, then keys. It is
	// only used to render user-facing error messages.
	restore := func(e sql.Expression) sql.Expression {
		return restoreExpr(e, winIfaces, aggIfaces, keyIfaces)
	}

	// Top-level internal attributes are re-wrapped as aliases carrying the
	// original name and id, so output attribute identities survive the
	// rewrite.
	projections := make([]sql.Expression, len(selected))
	for i, e := range selected {
		attr, ok := e.(*expression.InternalAttribute)
		if !ok {
			projections[i] = e
			continue
		}
		if named, ok := agg.SelectedExprs[i].(sql.NamedExpression); ok {
			projections[i] = expression.NewAliasWithID(named.Name(), attr, named.ID())
		} else {
			projections[i] = expression.NewAlias(agg.SelectedExprs[i].String(), attr)
		}
	}

	if err := rejectDangling(agg, projections, having, order, wins, restore); err != nil {
		return nil, err
	}

	var node sql.Node = plan.NewAggregate(keyAliases, aggAliases, agg.Child)
	if len(having) > 0 {
		node = plan.NewFilter(expression.JoinAnd(having...), node)
	}
	for _, layer := range windowLayers(wins, winAliases) {
		node = plan.NewWindow(layer, node)
	}
	if len(order) > 0 {
		node = plan.NewSort(agg.SortFields.FromExpressions(order...), node)
	}
	return plan.NewProject(projections, node), nil
}

// rejectIllegalClauses raises the fatal clause-level errors: aggregates are
// illegal in GROUP BY; window functions are illegal in GROUP BY and HAVING.
func rejectIllegalClauses(agg *plan.UnresolvedAggregate) error {
	for _, k := range agg.GroupingExprs {
		if aggs, _ := expression.CollectAggregations(k); len(aggs) > 0 {
			return ErrAggregateInGroupingKey.New(k, aggs[0])
		}
		if wins := expression.CollectWindowFunctions(k); len(wins) > 0 {
			return ErrWindowInGroupingKey.New(k, wins[0])
		}
	}
	for _, c := range agg.HavingExprs {
		if wins := expression.CollectWindowFunctions(c); len(wins) > 0 {
			return ErrWindowInHaving.New(c, wins[0])
		}
	}
	return nil
}

// rejectNestedAggregates ensures no aggregate argument contains another
// aggregate. A distinct aggregate is inspected through its inner function.
func rejectNestedAggregates(aggs []sql.Aggregation, restoreKeys sql.TransformExprFunc) error {
	for _, ag := range aggs {
		target := sql.Expression(ag)
		if da, ok := ag.(sql.DistinctAggregation); ok {
			target = da.Inner()
		}
		inner, err := expression.CollectAggregations(target.Children()...)
		if err != nil {
			return err
		}
		if len(inner) > 0 {
			outer, _ := expression.TransformUp(ag, restoreKeys)
			nested, _ := expression.TransformUp(inner[0], restoreKeys)
			return ErrNestedAggregate.New(outer, nested)
		}
	}
	return nil
}

// rewriteAggregates returns the aggregate substitution pass. After the plain
// bottom-up substitution, a post-pass resets the function at the top of
// every window call: a window aggregate like max(x) over (...) is an
// analytic computation, not a group-by aggregate, so it must not be
// replaced. Aggregates nested in the windowed function's own arguments stay
// replaced.
func rewriteAggregates(aliases []expression.InternalAlias) func(sql.Expression) (sql.Expression, error) {
	rewrite := expression.AliasRewriter(aliases...)
	restore := expression.AliasRestorer(aliases...)

	return func(e sql.Expression) (sql.Expression, error) {
		e, err := expression.TransformUp(e, rewrite)
		if err != nil {
			return nil, err
		}

		return expression.TransformUp(e, func(e sql.Expression) (sql.Expression, error) {
			o, ok := e.(*expression.Over)
			if !ok {
				return e, nil
			}

			fn, err := expression.TransformUp(o.Fn(), restore)
			if err != nil {
				return nil, err
			}
			if children := fn.Children(); len(children) > 0 {
				newChildren := make([]sql.Expression, len(children))
				for i, c := range children {
					if newChildren[i], err = expression.TransformUp(c, rewrite); err != nil {
						return nil, err
					}
				}
				if fn, err = fn.WithChildren(newChildren...); err != nil {
					return nil, err
				}
			}
			return expression.NewOver(fn, o.Spec()), nil
		})
	}
}

// applyPass runs a whole-tree pass once over every expression of the slice.
func applyPass(exprs []sql.Expression, pass func(sql.Expression) (sql.Expression, error)) ([]sql.Expression, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	out := make([]sql.Expression, len(exprs))
	for i, e := range exprs {
		ne, err := pass(e)
		if err != nil {
			return nil, err
		}
		out[i] = ne
	}
	return out, nil
}

// concat joins expression slices.
func concat(lists ...[]sql.Expression) []sql.Expression {
	var out []sql.Expression
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// restoreExpr unwinds internal attributes for error messages: windows first,
// then aggregates, then grouping keys, the inverse of the rewrite order.
func restoreExpr(
	e sql.Expression,
	wins, aggs, keys []expression.InternalAlias,
) sql.Expression {
	restored := e
	for _, aliases := range [][]expression.InternalAlias{wins, aggs, keys} {
		r, err := expression.TransformUp(restored, expression.AliasRestorer(aliases...))
		if err != nil {
			return e
		}
		restored = r
	}
	return restored
}

// rejectDangling checks every rewritten component for attribute references
// that are neither grouping keys nor aggregates. HAVING and ORDER BY may
// additionally reference the output of the projection.
func rejectDangling(
	agg *plan.UnresolvedAggregate,
	projections, having, order []sql.Expression,
	wins []*expression.Over,
	restore func(sql.Expression) sql.Expression,
) error {
	allowed := make(map[sql.ExprID]bool)
	for _, p := range projections {
		if named, ok := p.(sql.NamedExpression); ok {
			allowed[named.ID()] = true
		}
	}

	keys := make([]string, len(agg.GroupingExprs))
	for i, k := range agg.GroupingExprs {
		keys[i] = k.String()
	}
	keyList := strings.Join(keys, ", ")

	check := func(component string, exprs []sql.Expression, extra bool) error {
		for _, e := range exprs {
			for _, ref := range expression.References(e) {
				if expression.IsInternal(ref) {
					continue
				}
				attr := ref.(*expression.AttributeRef)
				if extra && allowed[attr.ID()] {
					continue
				}
				return ErrDanglingReference.New(component, restore(e), attr.Name(), keyList)
			}
		}
		return nil
	}

	winExprs := make([]sql.Expression, len(wins))
	for i, w := range wins {
		winExprs[i] = w
	}

	if err := check("window function", winExprs, false); err != nil {
		return err
	}
	if err := check("SELECT field", projections, false); err != nil {
		return err
	}
	if err := check("HAVING condition", having, true); err != nil {
		return err
	}
	if err := check("ORDER BY expression", order, true); err != nil {
		return err
	}
	return nil
}

// windowLayers groups window aliases into layers sharing one window spec,
// both layers and functions in first-seen order.
func windowLayers(wins []*expression.Over, aliases []*expression.WindowAlias) [][]*expression.WindowAlias {
	var specs []*sql.WindowSpec
	var layers [][]*expression.WindowAlias

	for i, w := range wins {
		placed := false
		for j, spec := range specs {
			if reflect.DeepEqual(spec, w.Spec()) {
				layers[j] = append(layers[j], aliases[i])
				placed = true
				break
			}
		}
		if !placed {
			specs = append(specs, w.Spec())
			layers = append(layers, []*expression.WindowAlias{aliases[i]})
		}
	}

	return layers
}
