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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
	"github.com/quelldb/quell/sql/expression/function/aggregation"
	"github.com/quelldb/quell/sql/plan"
)

// buildReadyAggregate builds the aggregation for
//
//	SELECT count(x) AS c FROM t GROUP BY y HAVING max(z) > 0 ORDER BY y DESC
//
// as it looks after absorption: clauses resolved, Filter and Sort folded in.
func buildReadyAggregate(t *testing.T, tbl *plan.ResolvedTable) *plan.UnresolvedAggregate {
	t.Helper()
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{tableAttr(t, tbl, "y")},
		[]sql.Expression{expression.NewAlias("c", aggregation.NewCount(tableAttr(t, tbl, "x")))},
		tbl,
	)
	agg = agg.WithHaving(expression.NewGreaterThan(
		aggregation.NewMax(tableAttr(t, tbl, "z")),
		expression.NewLiteral(int64(0), sql.Int64),
	))
	return agg.WithSortFields(sql.SortFields{
		{Column: tableAttr(t, tbl, "y"), Order: sql.Descending},
	})
}

func TestResolveAggregatesLayersHavingAndSort(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	agg := buildReadyAggregate(t, tbl)
	alias := agg.SelectedExprs[0].(*expression.Alias)

	node, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), agg)
	require.NoError(err)

	project, ok := node.(*plan.Project)
	require.True(ok)
	sort, ok := project.Child.(*plan.Sort)
	require.True(ok)
	filter, ok := sort.Child.(*plan.Filter)
	require.True(ok)
	aggregate, ok := filter.Child.(*plan.Aggregate)
	require.True(ok)
	require.Equal(tbl, aggregate.Child)

	// Aggregate: one key (y), two aggregates (count(x), max(z)).
	require.Len(aggregate.Keys, 1)
	require.Len(aggregate.Aggregates, 2)
	_, ok = aggregate.Aggregates[0].Target().(*aggregation.Count)
	require.True(ok)
	maxAlias := aggregate.Aggregates[1]
	_, ok = maxAlias.Target().(*aggregation.Max)
	require.True(ok)

	// Filter: max(z)'s attribute compared against the literal.
	gt, ok := filter.Expression.(*expression.GreaterThan)
	require.True(ok)
	require.Equal(maxAlias.Attr(), gt.Left)

	// Sort: the grouping key's attribute, descending.
	require.Len(sort.SortFields, 1)
	require.Equal(sql.Descending, sort.SortFields[0].Order)
	require.Equal(aggregate.Keys[0].Attr(), sort.SortFields[0].Column)

	// Project: count(x)'s attribute aliased back to c with its original id.
	require.Len(project.Projections, 1)
	out, ok := project.Projections[0].(*expression.Alias)
	require.True(ok)
	require.Equal("c", out.Name())
	require.Equal(alias.ID(), out.ID())
	require.Equal(aggregate.Aggregates[0].Attr(), out.Child)

	// The subtree is canonical: no unresolved aggregation left, resolved
	// throughout.
	plan.Inspect(node, func(n sql.Node) bool {
		_, leftover := n.(*plan.UnresolvedAggregate)
		require.False(leftover)
		return true
	})
	require.True(node.Resolved())
}

func TestResolveAggregatesSharesAggregatesAcrossClauses(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	countX := aggregation.NewCount(tableAttr(t, tbl, "x"))
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{tableAttr(t, tbl, "y")},
		[]sql.Expression{expression.NewAlias("c", countX)},
		tbl,
	)
	agg = agg.WithHaving(expression.NewGreaterThan(
		aggregation.NewCount(tableAttr(t, tbl, "x")),
		expression.NewLiteral(int64(10), sql.Int64),
	))

	node, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), agg)
	require.NoError(err)

	project := node.(*plan.Project)
	filter := project.Child.(*plan.Filter)
	aggregate := filter.Child.(*plan.Aggregate)

	// count(x) in SELECT and HAVING share a single alias.
	require.Len(aggregate.Aggregates, 1)
	attr := aggregate.Aggregates[0].Attr()
	require.Equal(attr, filter.Expression.(*expression.GreaterThan).Left)
	require.Equal(attr, project.Projections[0].(*expression.Alias).Child)
}

func TestResolveAggregatesDanglingSelectField(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{tableAttr(t, tbl, "y")},
		[]sql.Expression{tableAttr(t, tbl, "z")},
		tbl,
	)

	_, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), agg)
	require.Error(err)
	require.True(ErrDanglingReference.Is(err))
	require.Contains(err.Error(), "SELECT field")
	require.Contains(err.Error(), `"z"`)
}

func TestResolveAggregatesAggregateInGroupingKey(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{aggregation.NewCount(tableAttr(t, tbl, "x"))},
		[]sql.Expression{tableAttr(t, tbl, "y")},
		tbl,
	)

	_, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), agg)
	require.Error(err)
	require.True(ErrAggregateInGroupingKey.Is(err))
	require.Contains(err.Error(), "count(t.x)")
}

func TestResolveAggregatesWindowInGroupingKey(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	over := expression.NewOver(
		aggregation.NewMax(tableAttr(t, tbl, "a")),
		sql.NewWindowSpec(nil, nil, nil),
	)
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{over},
		[]sql.Expression{tableAttr(t, tbl, "a")},
		tbl,
	)

	_, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), agg)
	require.Error(err)
	require.True(ErrWindowInGroupingKey.Is(err))
}

func TestResolveAggregatesNestedAggregate(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	agg := plan.NewUnresolvedAggregate(
		nil,
		[]sql.Expression{
			expression.NewAlias("s", aggregation.NewSum(aggregation.NewMax(tableAttr(t, tbl, "x")))),
		},
		tbl,
	)

	_, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), agg)
	require.Error(err)
	require.True(ErrNestedAggregate.Is(err))
}

func TestResolveAggregatesWindowPlusAggregate(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	// SELECT max(a) OVER (PARTITION BY avg(b)), max(a) FROM t GROUP BY a
	over := expression.NewOver(
		aggregation.NewMax(tableAttr(t, tbl, "a")),
		sql.NewWindowSpec([]sql.Expression{aggregation.NewAvg(tableAttr(t, tbl, "b"))}, nil, nil),
	)
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{tableAttr(t, tbl, "a")},
		[]sql.Expression{over, aggregation.NewMax(tableAttr(t, tbl, "a"))},
		tbl,
	)

	node, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), agg)
	require.NoError(err)

	project, ok := node.(*plan.Project)
	require.True(ok)
	window, ok := project.Child.(*plan.Window)
	require.True(ok)
	aggregate, ok := window.Child.(*plan.Aggregate)
	require.True(ok)

	// One aggregate layer computing avg(b) and max over the key attribute.
	require.Len(aggregate.Keys, 1)
	require.Len(aggregate.Aggregates, 2)
	avg, ok := aggregate.Aggregates[0].Target().(*aggregation.Avg)
	require.True(ok)
	require.Equal("b", avg.Child.(*expression.AttributeRef).Name())
	standalone, ok := aggregate.Aggregates[1].Target().(*aggregation.Max)
	require.True(ok)
	require.Equal(aggregate.Keys[0].Attr(), standalone.Child)

	// One window layer: the windowed max is kept as a window call, its
	// argument rewritten to the key attribute, its partitioning to the
	// avg(b) attribute.
	require.Len(window.Functions, 1)
	winCall, ok := window.Functions[0].Target().(*expression.Over)
	require.True(ok)
	winMax, ok := winCall.Fn().(*aggregation.Max)
	require.True(ok)
	require.Equal(aggregate.Keys[0].Attr(), winMax.Child)
	require.Equal(aggregate.Aggregates[0].Attr(), winCall.Spec().PartitionBy[0])

	// The standalone max(a) is rewritten to its aggregate attribute, the
	// windowed one to the window attribute.
	first, ok := project.Projections[0].(*expression.Alias)
	require.True(ok)
	require.Equal(window.Functions[0].Attr(), first.Child)
	second, ok := project.Projections[1].(*expression.Alias)
	require.True(ok)
	require.Equal(aggregate.Aggregates[1].Attr(), second.Child)
}

func TestResolveAggregatesGroupsWindowLayersBySpec(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	partByA := sql.NewWindowSpec([]sql.Expression{tableAttr(t, tbl, "a")}, nil, nil)
	partByASame := sql.NewWindowSpec([]sql.Expression{tableAttr(t, tbl, "a")}, nil, nil)
	partByB := sql.NewWindowSpec([]sql.Expression{tableAttr(t, tbl, "b")}, nil, nil)

	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{tableAttr(t, tbl, "a"), tableAttr(t, tbl, "b")},
		[]sql.Expression{
			expression.NewOver(aggregation.NewMax(tableAttr(t, tbl, "a")), partByA),
			expression.NewOver(aggregation.NewMin(tableAttr(t, tbl, "b")), partByB),
			expression.NewOver(aggregation.NewSum(tableAttr(t, tbl, "a")), partByASame),
		},
		tbl,
	)

	node, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), agg)
	require.NoError(err)

	project := node.(*plan.Project)
	outer, ok := project.Child.(*plan.Window)
	require.True(ok)
	inner, ok := outer.Child.(*plan.Window)
	require.True(ok)
	_, ok = inner.Child.(*plan.Aggregate)
	require.True(ok)

	// Two layers: the shared partition-by-a spec groups max and sum, the
	// partition-by-b spec gets its own layer.
	layers := []*plan.Window{inner, outer}
	var sizes []int
	for _, l := range layers {
		sizes = append(sizes, len(l.Functions))
	}
	require.ElementsMatch([]int{2, 1}, sizes)
}

func TestResolveAggregatesWaitsForAbsorption(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{tableAttr(t, tbl, "y")},
		[]sql.Expression{tableAttr(t, tbl, "y")},
		tbl,
	)

	filter := plan.NewFilter(expression.NewGreaterThan(
		aggregation.NewMax(tableAttr(t, tbl, "z")),
		expression.NewLiteral(int64(0), sql.Int64),
	), agg)
	result, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), filter)
	require.NoError(err)
	require.Equal(filter, result)

	sort := plan.NewSort(sql.SortFields{{Column: tableAttr(t, tbl, "y")}}, agg)
	result, err = resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), sort)
	require.NoError(err)
	require.Equal(sort, result)
}

func TestResolveAggregatesWaitsForUnresolvedExpressions(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{expression.NewUnresolvedColumn("y")},
		[]sql.Expression{expression.NewUnresolvedColumn("y")},
		tbl,
	)

	result, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), agg)
	require.NoError(err)
	require.Equal(agg, result)
}

func TestResolveAggregatesWaitsOnDistinctAggregate(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	agg := plan.NewUnresolvedAggregate(
		nil,
		[]sql.Expression{
			expression.NewAlias("c", aggregation.NewDistinct(aggregation.NewCount(tableAttr(t, tbl, "x")))),
		},
		tbl,
	)

	result, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), agg)
	require.NoError(err)
	require.Equal(agg, result)
}

func TestResolveAggregatesIdempotentOnOwnOutput(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	agg := buildReadyAggregate(t, tbl)

	once, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), agg)
	require.NoError(err)

	twice, err := resolveAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), once)
	require.NoError(err)
	require.Equal(once, twice)
}

func TestRejectDistinctAggregates(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	agg := plan.NewUnresolvedAggregate(
		nil,
		[]sql.Expression{
			expression.NewAlias("c", aggregation.NewDistinct(aggregation.NewCount(tableAttr(t, tbl, "x")))),
		},
		tbl,
	)

	_, err := rejectDistinctAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), agg)
	require.Error(err)
	require.True(aggregation.ErrDistinctUnsupported.Is(err))
	require.Contains(err.Error(), "count(distinct t.x)")
}
