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

package sql

import (
	"fmt"
)

// Resolvable is the interface implemented by expressions and plan nodes that
// may be unresolved, that is, that still contain references the analyzer has
// not bound yet.
type Resolvable interface {
	// Resolved returns whether the node is resolved.
	Resolved() bool
}

// Nameable is something that has a name.
type Nameable interface {
	// Name returns the name.
	Name() string
}

// Tableable is something that belongs to a table.
type Tableable interface {
	// Table returns the table name.
	Table() string
}

// TransformExprFunc is a function that transforms an expression, returning it
// as is or replaced. A "no match" is the identity.
type TransformExprFunc func(Expression) (Expression, error)

// TransformNodeFunc is a function that transforms a plan node.
type TransformNodeFunc func(Node) (Node, error)

// Expression is a node in an immutable expression tree. Expressions are never
// mutated in place; every rewrite replaces nodes through WithChildren.
type Expression interface {
	Resolvable
	fmt.Stringer
	// Type returns the expression type. Calling it on an unresolved
	// expression is a contract violation.
	Type() Type
	// IsNullable returns whether the expression can be null.
	IsNullable() bool
	// Eval evaluates the expression against the given row. Evaluating an
	// unresolved expression is a contract violation.
	Eval(ctx *Context, row Row) (interface{}, error)
	// Children returns the children expressions of this expression.
	Children() []Expression
	// WithChildren returns a copy of the expression with the children
	// replaced.
	WithChildren(children ...Expression) (Expression, error)
}

// NamedExpression is an expression that carries a name and a globally unique
// expression id. Identity that must survive tree rewriting uses the id;
// identity that must see structure uses structural equality.
type NamedExpression interface {
	Expression
	Nameable
	// ID returns the expression id of this named expression.
	ID() ExprID
}

// FunctionExpression is an expression that represents a function call.
type FunctionExpression interface {
	Expression
	// FunctionName returns the name of the function, lowercase.
	FunctionName() string
}

// Aggregation is implemented by expressions whose value depends on an entire
// group of input rows, such as count or sum. Aggregations cannot be
// evaluated row by row; computing them belongs to the execution layer, so
// their Eval always errors.
type Aggregation interface {
	FunctionExpression
	// GroupDependent marks the function as depending on a whole group of
	// input rows rather than a single one.
	GroupDependent()
}

// DistinctAggregation is an Aggregation that only considers distinct inputs,
// such as count(distinct x). Planning rejects these as unsupported; the
// analyzer keeps them distinguishable so the rejection can name them.
type DistinctAggregation interface {
	Aggregation
	// Inner returns the wrapped aggregation.
	Inner() Aggregation
}

// Node is a node in an immutable logical plan tree.
type Node interface {
	Resolvable
	fmt.Stringer
	// Schema of the node.
	Schema() Schema
	// Children nodes.
	Children() []Node
	// WithChildren returns a copy of the node with the children replaced.
	WithChildren(children ...Node) (Node, error)
}

// Expressioner is a node that contains expressions.
type Expressioner interface {
	Node
	// Expressions returns the list of expressions contained by the node.
	Expressions() []Expression
	// WithExpressions returns a copy of the node with the expressions
	// replaced. The number of expressions must match Expressions.
	WithExpressions(exprs ...Expression) (Node, error)
}
