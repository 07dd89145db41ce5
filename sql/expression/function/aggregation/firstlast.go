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
	"fmt"

	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
)

// First returns the first value of the argument seen in a group. It
// implements the Aggregation interface.
type First struct {
	expression.UnaryExpression
}

var _ sql.Aggregation = (*First)(nil)

// NewFirst returns a new First node.
func NewFirst(e sql.Expression) *First {
	return &First{expression.UnaryExpression{Child: e}}
}

// FunctionName implements the FunctionExpression interface.
func (f *First) FunctionName() string { return "first" }

// GroupDependent implements the Aggregation interface.
func (*First) GroupDependent() {}

// Type implements the Expression interface.
func (f *First) Type() sql.Type { return f.Child.Type() }

func (f *First) String() string {
	return fmt.Sprintf("first(%s)", f.Child)
}

// WithChildren implements the Expression interface.
func (f *First) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(f, len(children), 1)
	}
	return NewFirst(children[0]), nil
}

// Eval implements the Expression interface.
func (f *First) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrEvalUnsupportedOnAggregation.New("first")
}

// Last returns the last non-null value of the argument seen in a group. It
// implements the Aggregation interface.
type Last struct {
	expression.UnaryExpression
}

var _ sql.Aggregation = (*Last)(nil)

// NewLast returns a new Last node.
func NewLast(e sql.Expression) *Last {
	return &Last{expression.UnaryExpression{Child: e}}
}

// FunctionName implements the FunctionExpression interface.
func (l *Last) FunctionName() string { return "last" }

// GroupDependent implements the Aggregation interface.
func (*Last) GroupDependent() {}

// Type implements the Expression interface.
func (l *Last) Type() sql.Type { return l.Child.Type() }

func (l *Last) String() string {
	return fmt.Sprintf("last(%s)", l.Child)
}

// WithChildren implements the Expression interface.
func (l *Last) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(l, len(children), 1)
	}
	return NewLast(children[0]), nil
}

// Eval implements the Expression interface.
func (l *Last) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrEvalUnsupportedOnAggregation.New("last")
}
