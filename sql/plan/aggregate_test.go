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

package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quelldb/quell/mem"
	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
)

func testRelation() *ResolvedTable {
	return NewResolvedTable(mem.NewTable("t", sql.Schema{
		{Name: "a", Type: sql.Int64},
		{Name: "b", Type: sql.Int64},
	}))
}

func TestResolvedTableMintsStableIDs(t *testing.T) {
	require := require.New(t)

	tbl := testRelation()
	schema := tbl.Schema()
	require.Len(schema, 2)
	require.NotZero(schema[0].ID)
	require.NotZero(schema[1].ID)
	require.NotEqual(schema[0].ID, schema[1].ID)
	require.Equal("t", schema[0].Source)

	// Schema is stable across calls.
	require.Equal(schema, tbl.Schema())
}

func TestUnresolvedAggregateNeverResolves(t *testing.T) {
	require := require.New(t)

	tbl := testRelation()
	agg := NewUnresolvedAggregate(
		[]sql.Expression{expression.AttributeFromColumn(tbl.Schema()[0])},
		[]sql.Expression{expression.AttributeFromColumn(tbl.Schema()[0])},
		tbl,
	)
	require.False(agg.Resolved())
	require.True(agg.Child.Resolved())
}

func TestUnresolvedAggregateWithSortFieldsReplaces(t *testing.T) {
	require := require.New(t)

	tbl := testRelation()
	a := expression.AttributeFromColumn(tbl.Schema()[0])
	b := expression.AttributeFromColumn(tbl.Schema()[1])

	agg := NewUnresolvedAggregate([]sql.Expression{a}, []sql.Expression{a}, tbl)
	agg = agg.WithSortFields(sql.SortFields{{Column: a, Order: sql.Ascending}})
	agg = agg.WithSortFields(sql.SortFields{{Column: b, Order: sql.Descending}})

	require.Len(agg.SortFields, 1)
	require.Equal(b, agg.SortFields[0].Column)
}

func TestUnresolvedAggregateWithHavingAppends(t *testing.T) {
	require := require.New(t)

	tbl := testRelation()
	a := expression.AttributeFromColumn(tbl.Schema()[0])

	agg := NewUnresolvedAggregate([]sql.Expression{a}, []sql.Expression{a}, tbl)
	first := expression.NewGreaterThan(a, expression.NewLiteral(int64(0), sql.Int64))
	second := expression.NewLessThan(a, expression.NewLiteral(int64(10), sql.Int64))

	agg = agg.WithHaving(first)
	require.Len(agg.HavingExprs, 1)
	agg = agg.WithHaving(second)
	require.Len(agg.HavingExprs, 2)
	require.Equal(first, agg.HavingExprs[0])
}

func TestAggregateSchema(t *testing.T) {
	require := require.New(t)

	tbl := testRelation()
	a := expression.AttributeFromColumn(tbl.Schema()[0])
	key := expression.NewGroupingAlias(0, a)
	agg := expression.NewAggregationAlias(0, a)

	node := NewAggregate(
		[]*expression.GroupingAlias{key},
		[]*expression.AggregationAlias{agg},
		tbl,
	)

	schema := node.Schema()
	require.Len(schema, 2)
	require.Equal("$g0", schema[0].Name)
	require.Equal(key.ID(), schema[0].ID)
	require.Equal("$a0", schema[1].Name)
	require.Equal(agg.ID(), schema[1].ID)
}

func TestWindowSchemaAppendsFunctions(t *testing.T) {
	require := require.New(t)

	tbl := testRelation()
	a := expression.AttributeFromColumn(tbl.Schema()[0])
	over := expression.NewOver(a, sql.NewWindowSpec(nil, nil, nil))
	fn := expression.NewWindowAlias(0, over)

	node := NewWindow([]*expression.WindowAlias{fn}, tbl)
	schema := node.Schema()
	require.Len(schema, 3)
	require.Equal("$w0", schema[2].Name)
	require.Equal(sql.NewWindowSpec(nil, nil, nil), node.Spec())
}
