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

// Count counts the rows of a group for which the argument is not null, or
// every row when the argument is a star.
type Count struct {
	expression.UnaryExpression
}

var _ sql.Aggregation = (*Count)(nil)

// NewCount creates a new Count node.
func NewCount(e sql.Expression) *Count {
	return &Count{expression.UnaryExpression{Child: e}}
}

// FunctionName implements the FunctionExpression interface.
func (c *Count) FunctionName() string { return "count" }

// GroupDependent implements the Aggregation interface.
func (*Count) GroupDependent() {}

// Type implements the Expression interface.
func (c *Count) Type() sql.Type { return sql.Int64 }

// IsNullable implements the Expression interface.
func (c *Count) IsNullable() bool { return false }

// Resolved implements the Expression interface. count(*) is resolved even
// though the star placeholder is not.
func (c *Count) Resolved() bool {
	if _, ok := c.Child.(*expression.Star); ok {
		return true
	}
	return c.Child.Resolved()
}

func (c *Count) String() string {
	return fmt.Sprintf("count(%s)", c.Child)
}

// WithChildren implements the Expression interface.
func (c *Count) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(c, len(children), 1)
	}
	return NewCount(children[0]), nil
}

// Eval implements the Expression interface.
func (c *Count) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrEvalUnsupportedOnAggregation.New("count")
}
