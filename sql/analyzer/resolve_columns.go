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
	"strings"

	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
	"github.com/quelldb/quell/sql/plan"
)

// resolveColumns replaces UnresolvedColumn expressions with attribute
// references bound against the output of the node's children. Name matching
// is case insensitive; a qualified column must match the source relation.
//
// Nodes whose children are not resolved yet are left alone, which in
// particular leaves a Filter or Sort sitting on an UnresolvedAggregate to
// the absorption rules: those clauses resolve against the aggregation's
// projection as well as its input, a scope this rule does not see.
func resolveColumns(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	span, _ := ctx.Span("resolve_columns")
	defer span.Finish()

	a.Log("resolve columns, node of type: %T", n)
	return plan.TransformUp(n, func(n sql.Node) (sql.Node, error) {
		e, ok := n.(sql.Expressioner)
		if !ok || len(n.Children()) == 0 {
			return n, nil
		}

		for _, child := range n.Children() {
			if !child.Resolved() {
				return n, nil
			}
		}

		var scope sql.Schema
		for _, child := range n.Children() {
			scope = append(scope, child.Schema()...)
		}

		exprs, err := expression.TransformExpressions(e.Expressions(), bindColumns(a, scope))
		if err != nil {
			return nil, err
		}
		if exprs == nil {
			return n, nil
		}

		return e.WithExpressions(exprs...)
	})
}

// bindColumns returns a transformation binding unresolved columns against
// the given scope.
func bindColumns(a *Analyzer, scope sql.Schema) sql.TransformExprFunc {
	return func(e sql.Expression) (sql.Expression, error) {
		uc, ok := e.(*expression.UnresolvedColumn)
		if !ok {
			return e, nil
		}

		col, err := findColumn(scope, uc.Table(), uc.Name())
		if err != nil {
			return nil, err
		}

		a.Log("column %q resolved to attribute %d", uc.Name(), col.ID)
		return expression.AttributeFromColumn(col), nil
	}
}

// findColumn searches the scope for a column with the given name, qualified
// by table when one is given.
func findColumn(scope sql.Schema, table, name string) (*sql.Column, error) {
	var found *sql.Column
	var sources []string
	for _, col := range scope {
		if !strings.EqualFold(col.Name, name) {
			continue
		}
		if table != "" && !strings.EqualFold(col.Source, table) {
			continue
		}
		sources = append(sources, col.Source)
		if found != nil {
			return nil, ErrAmbiguousColumnName.New(name, sources)
		}
		found = col
	}

	if found == nil {
		return nil, ErrColumnNotFound.New(name)
	}

	return found, nil
}
