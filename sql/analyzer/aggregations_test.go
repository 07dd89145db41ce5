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

	"github.com/quelldb/quell/mem"
	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
	"github.com/quelldb/quell/sql/expression/function"
	"github.com/quelldb/quell/sql/expression/function/aggregation"
	"github.com/quelldb/quell/sql/plan"
)

func testCatalog() *sql.Catalog {
	c := sql.NewCatalog()
	db := mem.NewDatabase("test")
	db.AddTable(mem.NewTable("t", sql.Schema{
		{Name: "a", Type: sql.Int64},
		{Name: "b", Type: sql.Int64},
		{Name: "x", Type: sql.Int64},
		{Name: "y", Type: sql.Int64},
		{Name: "z", Type: sql.Int64},
	}))
	c.AddDatabase(db)
	function.RegisterDefaults(c)
	return c
}

func testTable() *plan.ResolvedTable {
	return plan.NewResolvedTable(mem.NewTable("t", sql.Schema{
		{Name: "a", Type: sql.Int64},
		{Name: "b", Type: sql.Int64},
		{Name: "x", Type: sql.Int64},
		{Name: "y", Type: sql.Int64},
		{Name: "z", Type: sql.Int64},
	}))
}

func tableAttr(t *testing.T, tbl *plan.ResolvedTable, name string) *expression.AttributeRef {
	t.Helper()
	for _, col := range tbl.Schema() {
		if col.Name == name {
			return expression.AttributeFromColumn(col)
		}
	}
	t.Fatalf("no column %q in test table", name)
	return nil
}

func TestRewriteDistincts(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	node, err := rewriteDistincts(sql.NewEmptyContext(), NewDefault(testCatalog()), plan.NewDistinct(tbl))
	require.NoError(err)

	agg, ok := node.(*plan.UnresolvedAggregate)
	require.True(ok)
	require.Len(agg.GroupingExprs, len(tbl.Schema()))
	require.Len(agg.SelectedExprs, len(tbl.Schema()))
	for i, col := range tbl.Schema() {
		key, ok := agg.GroupingExprs[i].(*expression.AttributeRef)
		require.True(ok)
		require.Equal(col.ID, key.ID())
		sel, ok := agg.SelectedExprs[i].(*expression.AttributeRef)
		require.True(ok)
		require.Equal(col.ID, sel.ID())
	}
	require.Empty(agg.HavingExprs)
	require.Empty(agg.SortFields)
}

func TestRewriteDistinctsWaitsForResolvedChild(t *testing.T) {
	require := require.New(t)

	node := plan.NewDistinct(plan.NewUnresolvedTable("t"))
	result, err := rewriteDistincts(sql.NewEmptyContext(), NewDefault(testCatalog()), node)
	require.NoError(err)
	require.Equal(node, result)
}

func TestRewriteGlobalAggregates(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	projection := []sql.Expression{
		expression.NewAlias("c", aggregation.NewCount(tableAttr(t, tbl, "x"))),
	}

	node, err := rewriteGlobalAggregates(
		sql.NewEmptyContext(), NewDefault(testCatalog()),
		plan.NewProject(projection, tbl),
	)
	require.NoError(err)

	agg, ok := node.(*plan.UnresolvedAggregate)
	require.True(ok)
	require.Empty(agg.GroupingExprs)
	require.Equal(projection, agg.SelectedExprs)
}

func TestRewriteGlobalAggregatesIgnoresPlainProjections(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	node := plan.NewProject([]sql.Expression{tableAttr(t, tbl, "a")}, tbl)

	result, err := rewriteGlobalAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), node)
	require.NoError(err)
	require.Equal(node, result)
}

func TestRewriteGlobalAggregatesIgnoresWindowOnlyProjections(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	over := expression.NewOver(
		aggregation.NewMax(tableAttr(t, tbl, "a")),
		sql.NewWindowSpec(nil, nil, nil),
	)
	node := plan.NewProject([]sql.Expression{over}, tbl)

	result, err := rewriteGlobalAggregates(sql.NewEmptyContext(), NewDefault(testCatalog()), node)
	require.NoError(err)
	require.Equal(node, result)
}

func TestAbsorbHavingConditions(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{tableAttr(t, tbl, "y")},
		[]sql.Expression{expression.NewAlias("c", aggregation.NewCount(tableAttr(t, tbl, "x")))},
		tbl,
	)
	cond := expression.NewGreaterThan(
		aggregation.NewMax(expression.NewUnresolvedColumn("z")),
		expression.NewLiteral(int64(0), sql.Int64),
	)

	node, err := absorbHavingConditions(
		sql.NewEmptyContext(), NewDefault(testCatalog()),
		plan.NewFilter(cond, agg),
	)
	require.NoError(err)

	absorbed, ok := node.(*plan.UnresolvedAggregate)
	require.True(ok)
	require.Len(absorbed.HavingExprs, 1)

	gt, ok := absorbed.HavingExprs[0].(*expression.GreaterThan)
	require.True(ok)
	max, ok := gt.Left.(*aggregation.Max)
	require.True(ok)
	z, ok := max.Child.(*expression.AttributeRef)
	require.True(ok)
	require.Equal("z", z.Name())
	require.True(z.Resolved())
}

func TestAbsorbHavingUnaliasesProjection(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	countX := aggregation.NewCount(tableAttr(t, tbl, "x"))
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{tableAttr(t, tbl, "y")},
		[]sql.Expression{expression.NewAlias("c", countX)},
		tbl,
	)
	cond := expression.NewGreaterThan(
		expression.NewUnresolvedColumn("c"),
		expression.NewLiteral(int64(0), sql.Int64),
	)

	node, err := absorbHavingConditions(
		sql.NewEmptyContext(), NewDefault(testCatalog()),
		plan.NewFilter(cond, agg),
	)
	require.NoError(err)

	absorbed, ok := node.(*plan.UnresolvedAggregate)
	require.True(ok)
	require.Len(absorbed.HavingExprs, 1)

	gt, ok := absorbed.HavingExprs[0].(*expression.GreaterThan)
	require.True(ok)
	require.Equal(countX, gt.Left)
}

func TestAbsorbHavingRejectsWindowReferences(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	over := expression.NewOver(
		aggregation.NewMax(tableAttr(t, tbl, "a")),
		sql.NewWindowSpec(nil, nil, nil),
	)
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{tableAttr(t, tbl, "a")},
		[]sql.Expression{expression.NewAlias("m", over)},
		tbl,
	)
	cond := expression.NewGreaterThan(
		expression.NewUnresolvedColumn("m"),
		expression.NewLiteral(int64(0), sql.Int64),
	)

	_, err := absorbHavingConditions(
		sql.NewEmptyContext(), NewDefault(testCatalog()),
		plan.NewFilter(cond, agg),
	)
	require.Error(err)
	require.True(ErrWindowInHaving.Is(err))
}

func TestAbsorbSorts(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{tableAttr(t, tbl, "y")},
		[]sql.Expression{expression.NewAlias("c", aggregation.NewCount(tableAttr(t, tbl, "x")))},
		tbl,
	)
	sort := plan.NewSort(sql.SortFields{
		{Column: expression.NewUnresolvedColumn("y"), Order: sql.Descending},
	}, agg)

	node, err := absorbSorts(sql.NewEmptyContext(), NewDefault(testCatalog()), sort)
	require.NoError(err)

	absorbed, ok := node.(*plan.UnresolvedAggregate)
	require.True(ok)
	require.Len(absorbed.SortFields, 1)
	require.Equal(sql.Descending, absorbed.SortFields[0].Order)

	y, ok := absorbed.SortFields[0].Column.(*expression.AttributeRef)
	require.True(ok)
	require.Equal("y", y.Name())
}

func TestAbsorbSortsInnermostWins(t *testing.T) {
	require := require.New(t)

	tbl := testTable()
	agg := plan.NewUnresolvedAggregate(
		[]sql.Expression{tableAttr(t, tbl, "y")},
		[]sql.Expression{tableAttr(t, tbl, "y")},
		tbl,
	)
	inner := plan.NewSort(sql.SortFields{
		{Column: expression.NewUnresolvedColumn("y"), Order: sql.Ascending},
	}, agg)
	outer := plan.NewSort(sql.SortFields{
		{Column: expression.NewUnresolvedColumn("a"), Order: sql.Descending},
	}, inner)

	node, err := absorbSorts(sql.NewEmptyContext(), NewDefault(testCatalog()), outer)
	require.NoError(err)

	absorbed, ok := node.(*plan.UnresolvedAggregate)
	require.True(ok)
	require.Len(absorbed.SortFields, 1)

	y, ok := absorbed.SortFields[0].Column.(*expression.AttributeRef)
	require.True(ok)
	require.Equal("y", y.Name())
	require.Equal(sql.Ascending, absorbed.SortFields[0].Order)
}
