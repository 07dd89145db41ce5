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

// Avg returns the average of the non-null values of the argument over a
// group.
type Avg struct {
	expression.UnaryExpression
}

var _ sql.Aggregation = (*Avg)(nil)

// NewAvg creates a new Avg node.
func NewAvg(e sql.Expression) *Avg {
	return &Avg{expression.UnaryExpression{Child: e}}
}

// FunctionName implements the FunctionExpression interface.
func (a *Avg) FunctionName() string { return "avg" }

// GroupDependent implements the Aggregation interface.
func (*Avg) GroupDependent() {}

// Type implements the Expression interface.
func (a *Avg) Type() sql.Type { return sql.Float64 }

// IsNullable implements the Expression interface.
func (a *Avg) IsNullable() bool { return true }

func (a *Avg) String() string {
	return fmt.Sprintf("avg(%s)", a.Child)
}

// WithChildren implements the Expression interface.
func (a *Avg) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 1)
	}
	return NewAvg(children[0]), nil
}

// Eval implements the Expression interface.
func (a *Avg) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrEvalUnsupportedOnAggregation.New("avg")
}
