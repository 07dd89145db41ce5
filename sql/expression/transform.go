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

import "github.com/quelldb/quell/sql"

// TransformUp applies a transformation function to the given expression from
// the bottom up, replacing each node with f(node) after its children have
// been transformed. The tree is never mutated; a new one is returned.
func TransformUp(e sql.Expression, f sql.TransformExprFunc) (sql.Expression, error) {
	children := e.Children()
	if len(children) == 0 {
		return f(e)
	}

	newChildren := make([]sql.Expression, len(children))
	for i, c := range children {
		c, err := TransformUp(c, f)
		if err != nil {
			return nil, err
		}
		newChildren[i] = c
	}

	e, err := e.WithChildren(newChildren...)
	if err != nil {
		return nil, err
	}

	return f(e)
}

// TransformDown applies a transformation function to the given expression
// from the top down. The children of the replacement node, not the original,
// are transformed, so replacing a node with a leaf prunes its subtree.
func TransformDown(e sql.Expression, f sql.TransformExprFunc) (sql.Expression, error) {
	e, err := f(e)
	if err != nil {
		return nil, err
	}

	children := e.Children()
	if len(children) == 0 {
		return e, nil
	}

	newChildren := make([]sql.Expression, len(children))
	for i, c := range children {
		c, err := TransformDown(c, f)
		if err != nil {
			return nil, err
		}
		newChildren[i] = c
	}

	return e.WithChildren(newChildren...)
}

// TransformExpressions applies the transformation bottom-up to every
// expression in the slice, returning a new slice.
func TransformExpressions(exprs []sql.Expression, f sql.TransformExprFunc) ([]sql.Expression, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	result := make([]sql.Expression, len(exprs))
	for i, e := range exprs {
		e, err := TransformUp(e, f)
		if err != nil {
			return nil, err
		}
		result[i] = e
	}
	return result, nil
}
