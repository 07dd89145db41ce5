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
	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
)

// TransformUp applies a transformation function to the given plan from the
// bottom up, replacing each node with f(node) after its children have been
// transformed. The tree is never mutated; a new one is returned.
func TransformUp(node sql.Node, f sql.TransformNodeFunc) (sql.Node, error) {
	children := node.Children()
	if len(children) == 0 {
		return f(node)
	}

	newChildren := make([]sql.Node, len(children))
	for i, c := range children {
		c, err := TransformUp(c, f)
		if err != nil {
			return nil, err
		}
		newChildren[i] = c
	}

	node, err := node.WithChildren(newChildren...)
	if err != nil {
		return nil, err
	}

	return f(node)
}

// TransformExpressionsUp applies a transformation function to every
// expression of every node of the plan, bottom up on both trees.
func TransformExpressionsUp(node sql.Node, f sql.TransformExprFunc) (sql.Node, error) {
	return TransformUp(node, func(n sql.Node) (sql.Node, error) {
		e, ok := n.(sql.Expressioner)
		if !ok {
			return n, nil
		}

		exprs, err := expression.TransformExpressions(e.Expressions(), f)
		if err != nil {
			return nil, err
		}
		if exprs == nil {
			return n, nil
		}

		return e.WithExpressions(exprs...)
	})
}
