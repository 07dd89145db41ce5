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

// Visitor visits expressions in an expression tree.
type Visitor interface {
	// Visit method is invoked for each expression encountered by Walk. If the
	// result Visitor is not nil, Walk visits each of the children of the
	// expression with that visitor, followed by a call of Visit(nil) to the
	// returned visitor.
	Visit(expr sql.Expression) Visitor
}

// Walk traverses the expression tree in depth-first order. It starts by
// calling v.Visit(expr); expr must not be nil. If the visitor returned by
// v.Visit(expr) is not nil, Walk is invoked recursively with the returned
// visitor for each children of the expr, followed by a call of v.Visit(nil)
// to the returned visitor.
func Walk(v Visitor, expr sql.Expression) {
	if v = v.Visit(expr); v == nil {
		return
	}

	for _, child := range expr.Children() {
		Walk(v, child)
	}

	v.Visit(nil)
}

type inspector func(sql.Expression) bool

func (f inspector) Visit(expr sql.Expression) Visitor {
	if expr != nil && f(expr) {
		return f
	}
	return nil
}

// Inspect traverses the expression tree in depth-first order: It starts by
// calling f(expr); expr must not be nil. If f returns true, Inspect invokes
// f recursively for each of the children of expr.
func Inspect(expr sql.Expression, f func(sql.Expression) bool) {
	Walk(inspector(f), expr)
}

// Collect gathers, in pre-order, every expression in the tree satisfying the
// given predicate.
func Collect(expr sql.Expression, p func(sql.Expression) bool) []sql.Expression {
	var matches []sql.Expression
	Inspect(expr, func(e sql.Expression) bool {
		if p(e) {
			matches = append(matches, e)
		}
		return true
	})
	return matches
}

// References returns every attribute reference reachable in the tree,
// internal attributes included, in pre-order. Nodes keep their concrete type
// so callers can tell internal attributes apart from user-visible ones.
func References(expr sql.Expression) []sql.Expression {
	return Collect(expr, func(e sql.Expression) bool {
		switch e.(type) {
		case *InternalAttribute, *AttributeRef:
			return true
		default:
			return false
		}
	})
}
