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

func TestTransformUpDoesNotMutate(t *testing.T) {
	require := require.New(t)

	a := NewAttributeRef("a", sql.Int64, false)
	b := NewAttributeRef("b", sql.Int64, false)
	e := NewPlus(a, b)

	rewritten, err := TransformUp(e, func(e sql.Expression) (sql.Expression, error) {
		if attr, ok := e.(*AttributeRef); ok && attr.Name() == "a" {
			return NewLiteral(int64(1), sql.Int64), nil
		}
		return e, nil
	})
	require.NoError(err)

	require.Equal(NewPlus(a, b), e)
	require.Equal(NewPlus(NewLiteral(int64(1), sql.Int64), b), rewritten)
}

func TestTransformDownPrunesReplacedSubtrees(t *testing.T) {
	require := require.New(t)

	a := NewAttributeRef("a", sql.Int64, false)
	inner := NewPlus(a, NewLiteral(int64(2), sql.Int64))

	var visited []string
	_, err := TransformDown(NewPlus(inner, a), func(e sql.Expression) (sql.Expression, error) {
		visited = append(visited, e.String())
		if ExpressionsEqual(e, inner) {
			return NewLiteral(int64(0), sql.Int64), nil
		}
		return e, nil
	})
	require.NoError(err)

	// the replaced subtree's children are never visited
	require.NotContains(visited, "2")
}

func TestCollectPreOrder(t *testing.T) {
	require := require.New(t)

	a := NewAttributeRef("a", sql.Int64, false)
	b := NewAttributeRef("b", sql.Int64, false)
	e := NewPlus(NewPlus(a, b), a)

	attrs := Collect(e, func(e sql.Expression) bool {
		_, ok := e.(*AttributeRef)
		return ok
	})
	require.Equal([]sql.Expression{a, b, a}, attrs)
}

func TestReferencesKeepConcreteType(t *testing.T) {
	require := require.New(t)

	a := NewAttributeRef("a", sql.Int64, false)
	alias := NewGroupingAlias(0, a)
	e := NewPlus(alias.Attr(), a)

	refs := References(e)
	require.Len(refs, 2)
	require.True(IsInternal(refs[0]))
	require.False(IsInternal(refs[1]))
}
