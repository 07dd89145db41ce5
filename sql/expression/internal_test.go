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

func TestInternalAliasAttr(t *testing.T) {
	require := require.New(t)

	col := NewAttributeRef("a", sql.Int64, false)
	alias := NewGroupingAlias(0, col)

	require.Equal("$g0", alias.Name())
	require.Equal(sql.Int64, alias.Attr().Type())
	require.False(alias.Attr().IsNullable())
	require.Equal(alias.ID(), alias.Attr().ID())
	require.True(IsInternal(alias.Attr()))
	require.False(IsInternal(col))
}

func TestInternalAliasWithChildrenKeepsAttr(t *testing.T) {
	require := require.New(t)

	alias := NewAggregationAlias(3, NewAttributeRef("x", sql.Int64, true))
	require.Equal("$a3", alias.Name())

	replaced, err := alias.WithChildren(NewAttributeRef("y", sql.Int64, true))
	require.NoError(err)

	ra, ok := replaced.(*AggregationAlias)
	require.True(ok)
	require.Equal(alias.ID(), ra.ID())
	require.Equal(alias.Attr(), ra.Attr())
}

func TestAliasRewriterSubstitutesAliasedSubexpressions(t *testing.T) {
	require := require.New(t)

	a := NewAttributeRef("a", sql.Int64, false)
	b := NewAttributeRef("b", sql.Int64, false)
	key := NewGroupingAlias(0, a)

	e := NewPlus(a, b)
	rewritten, err := TransformUp(e, AliasRewriter(key))
	require.NoError(err)

	plus, ok := rewritten.(*Arithmetic)
	require.True(ok)
	require.Equal(key.Attr(), plus.Left)
	require.Equal(b, plus.Right)
}

func TestAliasRewriterFirstAliasWins(t *testing.T) {
	require := require.New(t)

	a := NewAttributeRef("a", sql.Int64, false)
	first := NewGroupingAlias(0, a)
	second := NewGroupingAlias(1, a)

	rewritten, err := TransformUp(a, AliasRewriter(first, second))
	require.NoError(err)
	require.Equal(first.Attr(), rewritten)
}

func TestAliasRestorerInvertsRewriter(t *testing.T) {
	require := require.New(t)

	a := NewAttributeRef("a", sql.Int64, false)
	b := NewAttributeRef("b", sql.Int64, false)
	key := NewGroupingAlias(0, a)

	e := NewGreaterThan(NewPlus(a, b), NewLiteral(int64(0), sql.Int64))
	rewritten, err := TransformUp(e, AliasRewriter(key))
	require.NoError(err)
	require.NotEqual(e, rewritten)

	restored, err := TransformUp(rewritten, AliasRestorer(key))
	require.NoError(err)
	require.Equal(e, restored)
}

func TestAliasRestorerLeavesForeignAttributes(t *testing.T) {
	require := require.New(t)

	key := NewGroupingAlias(0, NewAttributeRef("a", sql.Int64, false))
	other := NewWindowAlias(0, NewAttributeRef("b", sql.Int64, false))

	restored, err := TransformUp(other.Attr(), AliasRestorer(key))
	require.NoError(err)
	require.Equal(other.Attr(), restored)
}

func TestAttributeRefIdentity(t *testing.T) {
	require := require.New(t)

	a := NewAttributeRef("a", sql.Int64, false)
	same := NewAttributeRefWithID("", "a", sql.Int64, false, a.ID())
	fresh := NewAttributeRef("a", sql.Int64, false)

	require.True(a.RefersTo(same))
	require.False(a.RefersTo(fresh))
	require.True(ExpressionsEqual(a, same))
	require.False(ExpressionsEqual(a, fresh))
}
