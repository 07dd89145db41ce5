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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quelldb/quell/sql"
)

// testAgg is a minimal aggregation for collector tests, so this package's
// tests don't depend on the function packages built on top of it.
type testAgg struct {
	UnaryExpression
	name string
}

var _ sql.Aggregation = (*testAgg)(nil)

func newTestAgg(name string, child sql.Expression) *testAgg {
	return &testAgg{UnaryExpression{child}, name}
}

func (a *testAgg) FunctionName() string { return a.name }
func (a *testAgg) GroupDependent()      {}
func (a *testAgg) Type() sql.Type       { return sql.Int64 }
func (a *testAgg) String() string       { return a.name + "(" + a.Child.String() + ")" }

func (a *testAgg) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 1)
	}
	return newTestAgg(a.name, children[0]), nil
}

func (a *testAgg) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrInternalEvaluation.New(a.name)
}

type testDistinctAgg struct {
	*testAgg
}

var _ sql.DistinctAggregation = (*testDistinctAgg)(nil)

func (d *testDistinctAgg) Inner() sql.Aggregation { return d.testAgg }

func (d *testDistinctAgg) String() string {
	return d.name + "(distinct " + d.Child.String() + ")"
}

func (d *testDistinctAgg) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	inner, err := d.testAgg.WithChildren(children...)
	if err != nil {
		return nil, err
	}
	return &testDistinctAgg{inner.(*testAgg)}, nil
}

func TestCollectAggregationsDedups(t *testing.T) {
	require := require.New(t)

	x := NewAttributeRef("x", sql.Int64, false)
	countX := newTestAgg("count", x)
	countXAgain := newTestAgg("count", NewAttributeRefWithID("", "x", sql.Int64, false, x.ID()))
	maxX := newTestAgg("max", x)

	aggs, err := CollectAggregations(
		NewPlus(countX, maxX),
		NewGreaterThan(countXAgain, NewLiteral(int64(0), sql.Int64)),
	)
	require.NoError(err)
	require.Len(aggs, 2)
	require.Equal(countX, aggs[0])
	require.Equal(maxX, aggs[1])
}

func TestCollectAggregationsSkipsWindowedFunction(t *testing.T) {
	require := require.New(t)

	a := NewAttributeRef("a", sql.Int64, false)
	b := NewAttributeRef("b", sql.Int64, false)
	maxA := newTestAgg("max", a)
	avgB := newTestAgg("avg", b)

	// max(a) over (partition by avg(b)): avg(b) is an ordinary aggregate,
	// the windowed max(a) is not.
	over := NewOver(maxA, sql.NewWindowSpec([]sql.Expression{avgB}, nil, nil))

	aggs, err := CollectAggregations(over)
	require.NoError(err)
	require.Len(aggs, 1)
	require.Equal(avgB, aggs[0])
}

func TestCollectAggregationsInsideWindowArguments(t *testing.T) {
	require := require.New(t)

	a := NewAttributeRef("a", sql.Int64, false)
	sumA := newTestAgg("sum", a)
	// max(sum(a)) over (): the windowed max is analytic, its argument is a
	// group-by aggregate.
	over := NewOver(newTestAgg("max", sumA), sql.NewWindowSpec(nil, nil, nil))

	aggs, err := CollectAggregations(over)
	require.NoError(err)
	require.Len(aggs, 1)
	require.Equal(sumA, aggs[0])
}

func TestCollectAggregationsDistinctCollectedWhole(t *testing.T) {
	require := require.New(t)

	x := NewAttributeRef("x", sql.Int64, false)
	distinct := &testDistinctAgg{newTestAgg("count", x)}

	aggs, err := CollectAggregations(NewPlus(distinct, NewLiteral(int64(1), sql.Int64)))
	require.NoError(err)
	require.Len(aggs, 1)
	require.Equal(distinct, aggs[0])
}

func TestHasAggregation(t *testing.T) {
	require := require.New(t)

	x := NewAttributeRef("x", sql.Int64, false)
	countX := newTestAgg("count", x)
	over := NewOver(countX, sql.NewWindowSpec(nil, nil, nil))

	require.True(HasAggregation(countX))
	require.True(HasAggregation(NewPlus(countX, x)))
	require.False(HasAggregation(x))
	// the aggregation is windowed, hence invisible
	require.False(HasAggregation(over))
}

func TestHasWindowFunction(t *testing.T) {
	require := require.New(t)

	x := NewAttributeRef("x", sql.Int64, false)
	over := NewOver(newTestAgg("max", x), sql.NewWindowSpec(nil, nil, nil))

	require.True(HasWindowFunction(over))
	require.True(HasWindowFunction(NewPlus(over, x)))
	require.False(HasWindowFunction(x))
}

func TestCollectWindowFunctionsDedups(t *testing.T) {
	require := require.New(t)

	x := NewAttributeRef("x", sql.Int64, false)
	spec := sql.NewWindowSpec([]sql.Expression{x}, nil, nil)
	w1 := NewOver(newTestAgg("max", x), spec)
	w2 := NewOver(newTestAgg("max", NewAttributeRefWithID("", "x", sql.Int64, false, x.ID())), spec)
	other := NewOver(newTestAgg("min", x), spec)

	wins := CollectWindowFunctions(NewPlus(w1, other), w2)
	require.Len(wins, 2)
	require.Equal(w1, wins[0])
	require.Equal(other, wins[1])
}
