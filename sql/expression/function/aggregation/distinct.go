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
)

// Distinct wraps an aggregation so that it only considers distinct values,
// like count(distinct x). The planner rejects these as unsupported; the
// wrapper exists so the rejection can name the call and so the analyzer can
// tell distinct aggregates apart while collecting.
type Distinct struct {
	inner sql.Aggregation
}

var _ sql.DistinctAggregation = (*Distinct)(nil)

// NewDistinct wraps the given aggregation.
func NewDistinct(inner sql.Aggregation) *Distinct {
	return &Distinct{inner: inner}
}

// Inner implements the DistinctAggregation interface.
func (d *Distinct) Inner() sql.Aggregation { return d.inner }

// FunctionName implements the FunctionExpression interface.
func (d *Distinct) FunctionName() string { return d.inner.FunctionName() }

// GroupDependent implements the Aggregation interface.
func (*Distinct) GroupDependent() {}

// Type implements the Expression interface.
func (d *Distinct) Type() sql.Type { return d.inner.Type() }

// IsNullable implements the Expression interface.
func (d *Distinct) IsNullable() bool { return d.inner.IsNullable() }

// Resolved implements the Expression interface.
func (d *Distinct) Resolved() bool { return d.inner.Resolved() }

// Children implements the Expression interface.
func (d *Distinct) Children() []sql.Expression {
	return []sql.Expression{d.inner}
}

// WithChildren implements the Expression interface.
func (d *Distinct) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(d, len(children), 1)
	}
	agg, ok := children[0].(sql.Aggregation)
	if !ok {
		return nil, sql.ErrInvalidType.New(fmt.Sprintf("%T", children[0]))
	}
	return NewDistinct(agg), nil
}

func (d *Distinct) String() string {
	inner := d.inner.String()
	name := d.inner.FunctionName()
	// Render count(distinct x) rather than distinct(count(x)).
	if len(inner) > len(name)+1 && inner[:len(name)+1] == name+"(" {
		return fmt.Sprintf("%s(distinct %s", name, inner[len(name)+1:])
	}
	return fmt.Sprintf("distinct %s", inner)
}

// Eval implements the Expression interface.
func (d *Distinct) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrDistinctUnsupported.New(d)
}
