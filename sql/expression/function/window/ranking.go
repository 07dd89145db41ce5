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

package window

import (
	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
)

// ranking is the common shape of ranking functions: no arguments, integer
// result, meaningful only inside a window function call. Computing the rank
// belongs to the execution layer, so Eval always errors.
type ranking struct {
	name string
}

// Resolved implements the Expression interface.
func (ranking) Resolved() bool { return true }

// IsNullable implements the Expression interface.
func (ranking) IsNullable() bool { return false }

// Type implements the Expression interface.
func (ranking) Type() sql.Type { return sql.Int64 }

// Children implements the Expression interface.
func (ranking) Children() []sql.Expression { return nil }

// FunctionName implements the FunctionExpression interface.
func (r ranking) FunctionName() string { return r.name }

func (r ranking) String() string { return r.name + "()" }

// RowNumber returns the 1-based position of each row within its partition.
type RowNumber struct {
	ranking
}

var _ sql.FunctionExpression = (*RowNumber)(nil)

// NewRowNumber creates a new RowNumber function.
func NewRowNumber() sql.Expression {
	return &RowNumber{ranking{"row_number"}}
}

// WithChildren implements the Expression interface.
func (r *RowNumber) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(r, len(children), 0)
	}
	return r, nil
}

// Eval implements the Expression interface.
func (r *RowNumber) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, expression.ErrWindowEvaluation.New(r)
}

// Rank returns the 1-based rank of each row within its partition, with gaps
// after peer groups.
type Rank struct {
	ranking
}

var _ sql.FunctionExpression = (*Rank)(nil)

// NewRank creates a new Rank function.
func NewRank() sql.Expression {
	return &Rank{ranking{"rank"}}
}

// WithChildren implements the Expression interface.
func (r *Rank) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(r, len(children), 0)
	}
	return r, nil
}

// Eval implements the Expression interface.
func (r *Rank) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, expression.ErrWindowEvaluation.New(r)
}

// DenseRank returns the 1-based rank of each row within its partition,
// without gaps: consecutive peer groups get consecutive ranks.
type DenseRank struct {
	ranking
}

var _ sql.FunctionExpression = (*DenseRank)(nil)

// NewDenseRank creates a new DenseRank function.
func NewDenseRank() sql.Expression {
	return &DenseRank{ranking{"dense_rank"}}
}

// WithChildren implements the Expression interface.
func (r *DenseRank) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(r, len(children), 0)
	}
	return r, nil
}

// Eval implements the Expression interface.
func (r *DenseRank) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, expression.ErrWindowEvaluation.New(r)
}
