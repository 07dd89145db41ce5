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
	"fmt"

	"github.com/quelldb/quell/sql"
)

// Over is a window function call: a function computed once per input row
// over the row set described by a window specification. The wrapped function
// is either an aggregation or a ranking function; an aggregation at the top
// of an Over is an analytic computation, not a group-by aggregate.
type Over struct {
	fn   sql.Expression
	spec *sql.WindowSpec
}

var _ sql.Expression = (*Over)(nil)

// NewOver creates a new window function call.
func NewOver(fn sql.Expression, spec *sql.WindowSpec) *Over {
	return &Over{fn: fn, spec: spec}
}

// Fn returns the windowed function.
func (o *Over) Fn() sql.Expression { return o.fn }

// Spec returns the window specification of the call.
func (o *Over) Spec() *sql.WindowSpec { return o.spec }

// Resolved implements the Expression interface.
func (o *Over) Resolved() bool {
	return o.fn.Resolved() && o.spec.Resolved()
}

// Type implements the Expression interface.
func (o *Over) Type() sql.Type { return o.fn.Type() }

// IsNullable implements the Expression interface.
func (o *Over) IsNullable() bool { return o.fn.IsNullable() }

// Children implements the Expression interface. The spec expressions are
// part of the tree: transformations reach into partitioning and ordering.
func (o *Over) Children() []sql.Expression {
	return append([]sql.Expression{o.fn}, o.spec.Expressions()...)
}

// WithChildren implements the Expression interface.
func (o *Over) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1+len(o.spec.Expressions()) {
		return nil, sql.ErrInvalidChildrenNumber.New(o, len(children), 1+len(o.spec.Expressions()))
	}
	spec, err := o.spec.FromExpressions(children[1:])
	if err != nil {
		return nil, err
	}
	return NewOver(children[0], spec), nil
}

// Eval implements the Expression interface.
func (o *Over) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrWindowEvaluation.New(o.fn)
}

func (o *Over) String() string {
	return fmt.Sprintf("%s %s", o.fn, o.spec)
}
