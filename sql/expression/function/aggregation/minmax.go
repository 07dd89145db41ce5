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

// Max returns the greatest value of the argument over a group. It implements
// the Aggregation interface.
type Max struct {
	expression.UnaryExpression
}

var _ sql.Aggregation = (*Max)(nil)

// NewMax returns a new Max node.
func NewMax(e sql.Expression) *Max {
	return &Max{expression.UnaryExpression{Child: e}}
}

// FunctionName implements the FunctionExpression interface.
func (m *Max) FunctionName() string { return "max" }

// GroupDependent implements the Aggregation interface.
func (*Max) GroupDependent() {}

// Type implements the Expression interface.
func (m *Max) Type() sql.Type { return m.Child.Type() }

// IsNullable implements the Expression interface.
func (m *Max) IsNullable() bool { return true }

func (m *Max) String() string {
	return fmt.Sprintf("max(%s)", m.Child)
}

// WithChildren implements the Expression interface.
func (m *Max) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(m, len(children), 1)
	}
	return NewMax(children[0]), nil
}

// Eval implements the Expression interface.
func (m *Max) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrEvalUnsupportedOnAggregation.New("max")
}

// Min returns the smallest value of the argument over a group. It implements
// the Aggregation interface.
type Min struct {
	expression.UnaryExpression
}

var _ sql.Aggregation = (*Min)(nil)

// NewMin creates a new Min node.
func NewMin(e sql.Expression) *Min {
	return &Min{expression.UnaryExpression{Child: e}}
}

// FunctionName implements the FunctionExpression interface.
func (m *Min) FunctionName() string { return "min" }

// GroupDependent implements the Aggregation interface.
func (*Min) GroupDependent() {}

// Type implements the Expression interface.
func (m *Min) Type() sql.Type { return m.Child.Type() }

// IsNullable implements the Expression interface.
func (m *Min) IsNullable() bool { return true }

func (m *Min) String() string {
	return fmt.Sprintf("min(%s)", m.Child)
}

// WithChildren implements the Expression interface.
func (m *Min) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(m, len(children), 1)
	}
	return NewMin(children[0]), nil
}

// Eval implements the Expression interface.
func (m *Min) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrEvalUnsupportedOnAggregation.New("min")
}
