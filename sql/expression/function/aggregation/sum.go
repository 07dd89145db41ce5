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

// Sum returns the sum of all values of the argument over a group. It
// implements the Aggregation interface.
type Sum struct {
	expression.UnaryExpression
}

var _ sql.Aggregation = (*Sum)(nil)

// NewSum returns a new Sum node.
func NewSum(e sql.Expression) *Sum {
	return &Sum{expression.UnaryExpression{Child: e}}
}

// FunctionName implements the FunctionExpression interface.
func (m *Sum) FunctionName() string { return "sum" }

// GroupDependent implements the Aggregation interface.
func (*Sum) GroupDependent() {}

// Type implements the Expression interface.
func (m *Sum) Type() sql.Type { return sql.Float64 }

func (m *Sum) String() string {
	return fmt.Sprintf("sum(%s)", m.Child)
}

// WithChildren implements the Expression interface.
func (m *Sum) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(m, len(children), 1)
	}
	return NewSum(children[0]), nil
}

// Eval implements the Expression interface.
func (m *Sum) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrEvalUnsupportedOnAggregation.New("sum")
}
