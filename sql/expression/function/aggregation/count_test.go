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

package aggregation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
)

func TestCountResolvedWithStar(t *testing.T) {
	require := require.New(t)

	c := NewCount(expression.NewStar())
	require.True(c.Resolved())
	require.Equal("count(*)", c.String())

	unresolved := NewCount(expression.NewUnresolvedColumn("x"))
	require.False(unresolved.Resolved())
}

func TestCountType(t *testing.T) {
	require := require.New(t)

	c := NewCount(expression.NewLiteral(int64(7), sql.Int64))
	require.Equal(sql.Int64, c.Type())
	require.False(c.IsNullable())
}

func TestAggregationsRejectRowEval(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	x := expression.NewLiteral(int64(1), sql.Int64)
	for _, agg := range []sql.Aggregation{
		NewCount(x), NewSum(x), NewAvg(x), NewMin(x), NewMax(x), NewFirst(x), NewLast(x),
	} {
		_, err := agg.Eval(ctx, nil)
		require.Error(err)
		require.True(ErrEvalUnsupportedOnAggregation.Is(err))
	}
}

func TestAggregationWithChildren(t *testing.T) {
	require := require.New(t)

	x := expression.NewAttributeRef("x", sql.Int64, false)
	y := expression.NewAttributeRef("y", sql.Int64, false)

	m := NewMax(x)
	replaced, err := m.WithChildren(y)
	require.NoError(err)
	require.Equal(NewMax(y), replaced)

	_, err = m.WithChildren(x, y)
	require.Error(err)
	require.True(sql.ErrInvalidChildrenNumber.Is(err))
}

func TestDistinctKeepsWrapperAcrossRewrites(t *testing.T) {
	require := require.New(t)

	x := expression.NewAttributeRef("x", sql.Int64, false)
	d := NewDistinct(NewCount(x))

	rewritten, err := expression.TransformUp(d, func(e sql.Expression) (sql.Expression, error) {
		return e, nil
	})
	require.NoError(err)

	wrapped, ok := rewritten.(*Distinct)
	require.True(ok)
	require.Equal(d.Inner(), wrapped.Inner())
}

func TestDistinctEvalUnsupported(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	d := NewDistinct(NewCount(expression.NewLiteral(int64(1), sql.Int64)))
	require.Equal("count(distinct 1)", d.String())

	_, err := d.Eval(ctx, nil)
	require.Error(err)
	require.True(ErrDistinctUnsupported.Is(err))
}
