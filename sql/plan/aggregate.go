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

package plan

import (
	"strings"

	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
)

// UnresolvedAggregate is the aggregation produced by parsing a query with a
// GROUP BY clause (or a projection the analyzer decided must aggregate). It
// carries the raw clause expressions; the analyzer layers it into Aggregate,
// Filter, Window, Sort and Project nodes.
type UnresolvedAggregate struct {
	UnaryNode
	// GroupingExprs are the grouping keys.
	GroupingExprs []sql.Expression
	// SelectedExprs is the projection on top of the aggregation.
	SelectedExprs []sql.Expression
	// HavingExprs are the group filter conditions absorbed from HAVING.
	HavingExprs []sql.Expression
	// SortFields is the ordering absorbed from ORDER BY.
	SortFields sql.SortFields
}

var _ sql.Node = (*UnresolvedAggregate)(nil)
var _ sql.Expressioner = (*UnresolvedAggregate)(nil)

// NewUnresolvedAggregate creates a new UnresolvedAggregate node.
func NewUnresolvedAggregate(
	groupingExprs, selectedExprs []sql.Expression,
	child sql.Node,
) *UnresolvedAggregate {
	return &UnresolvedAggregate{
		UnaryNode:     UnaryNode{child},
		GroupingExprs: groupingExprs,
		SelectedExprs: selectedExprs,
	}
}

// WithHaving returns a copy of the node with the given condition appended to
// its having conditions.
func (a *UnresolvedAggregate) WithHaving(condition sql.Expression) *UnresolvedAggregate {
	na := *a
	na.HavingExprs = append(append([]sql.Expression(nil), a.HavingExprs...), condition)
	return &na
}

// WithSortFields returns a copy of the node with its sort fields replaced.
// Any previously stored sort fields are discarded.
func (a *UnresolvedAggregate) WithSortFields(fields sql.SortFields) *UnresolvedAggregate {
	na := *a
	na.SortFields = fields
	return &na
}

// Resolved implements the Resolvable interface. An UnresolvedAggregate is
// never resolved; the analyzer must replace it.
func (*UnresolvedAggregate) Resolved() bool {
	return false
}

// Schema implements the Node interface. It is only meaningful once the
// selected expressions are resolved.
func (a *UnresolvedAggregate) Schema() sql.Schema {
	if !expression.ExpressionsResolved(a.SelectedExprs...) {
		return nil
	}
	s := make(sql.Schema, len(a.SelectedExprs))
	for i, e := range a.SelectedExprs {
		s[i] = expression.ToColumn(e)
	}
	return s
}

func (a *UnresolvedAggregate) String() string {
	pr := sql.NewTreePrinter()
	groupings := make([]string, len(a.GroupingExprs))
	for i, e := range a.GroupingExprs {
		groupings[i] = e.String()
	}
	selects := make([]string, len(a.SelectedExprs))
	for i, e := range a.SelectedExprs {
		selects[i] = e.String()
	}
	_ = pr.WriteNode("UnresolvedAggregate(keys: [%s], select: [%s])",
		strings.Join(groupings, ", "), strings.Join(selects, ", "))
	_ = pr.WriteChildren(a.Child.String())
	return pr.String()
}

// WithChildren implements the Node interface.
func (a *UnresolvedAggregate) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 1)
	}
	na := *a
	na.UnaryNode = UnaryNode{children[0]}
	return &na, nil
}

// Expressions implements the Expressioner interface: grouping keys, then
// selected expressions, then having conditions, then sort columns.
func (a *UnresolvedAggregate) Expressions() []sql.Expression {
	exprs := make([]sql.Expression, 0,
		len(a.GroupingExprs)+len(a.SelectedExprs)+len(a.HavingExprs)+len(a.SortFields))
	exprs = append(exprs, a.GroupingExprs...)
	exprs = append(exprs, a.SelectedExprs...)
	exprs = append(exprs, a.HavingExprs...)
	exprs = append(exprs, a.SortFields.ToExpressions()...)
	return exprs
}

// WithExpressions implements the Expressioner interface.
func (a *UnresolvedAggregate) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	expected := len(a.GroupingExprs) + len(a.SelectedExprs) + len(a.HavingExprs) + len(a.SortFields)
	if len(exprs) != expected {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(exprs), expected)
	}

	na := *a
	na.GroupingExprs = append([]sql.Expression(nil), exprs[:len(a.GroupingExprs)]...)
	exprs = exprs[len(a.GroupingExprs):]
	na.SelectedExprs = append([]sql.Expression(nil), exprs[:len(a.SelectedExprs)]...)
	exprs = exprs[len(a.SelectedExprs):]
	na.HavingExprs = append([]sql.Expression(nil), exprs[:len(a.HavingExprs)]...)
	exprs = exprs[len(a.HavingExprs):]
	na.SortFields = a.SortFields.FromExpressions(exprs...)
	return &na, nil
}

// Aggregate is the resolved aggregation operator: it partitions the rows of
// its child by the grouping key aliases and computes one value per aggregate
// alias for each group. Its output is exactly the internal attributes of its
// aliases, in key order then aggregate order.
type Aggregate struct {
	UnaryNode
	// Keys are the grouping key aliases.
	Keys []*expression.GroupingAlias
	// Aggregates are the aggregate function aliases.
	Aggregates []*expression.AggregationAlias
}

var _ sql.Node = (*Aggregate)(nil)
var _ sql.Expressioner = (*Aggregate)(nil)

// NewAggregate creates a new Aggregate node.
func NewAggregate(
	keys []*expression.GroupingAlias,
	aggregates []*expression.AggregationAlias,
	child sql.Node,
) *Aggregate {
	return &Aggregate{
		UnaryNode:  UnaryNode{child},
		Keys:       keys,
		Aggregates: aggregates,
	}
}

// Resolved implements the Resolvable interface.
func (a *Aggregate) Resolved() bool {
	if !a.UnaryNode.Child.Resolved() {
		return false
	}
	for _, k := range a.Keys {
		if !k.Resolved() {
			return false
		}
	}
	for _, agg := range a.Aggregates {
		if !agg.Resolved() {
			return false
		}
	}
	return true
}

// Schema implements the Node interface.
func (a *Aggregate) Schema() sql.Schema {
	s := make(sql.Schema, 0, len(a.Keys)+len(a.Aggregates))
	for _, k := range a.Keys {
		s = append(s, k.ToColumn())
	}
	for _, agg := range a.Aggregates {
		s = append(s, agg.ToColumn())
	}
	return s
}

func (a *Aggregate) String() string {
	pr := sql.NewTreePrinter()
	keys := make([]string, len(a.Keys))
	for i, k := range a.Keys {
		keys[i] = k.String()
	}
	aggs := make([]string, len(a.Aggregates))
	for i, agg := range a.Aggregates {
		aggs[i] = agg.String()
	}
	_ = pr.WriteNode("Aggregate(keys: [%s], aggregates: [%s])",
		strings.Join(keys, ", "), strings.Join(aggs, ", "))
	_ = pr.WriteChildren(a.Child.String())
	return pr.String()
}

// WithChildren implements the Node interface.
func (a *Aggregate) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 1)
	}
	return NewAggregate(a.Keys, a.Aggregates, children[0]), nil
}

// Expressions implements the Expressioner interface: key aliases first, then
// aggregate aliases.
func (a *Aggregate) Expressions() []sql.Expression {
	exprs := make([]sql.Expression, 0, len(a.Keys)+len(a.Aggregates))
	for _, k := range a.Keys {
		exprs = append(exprs, k)
	}
	for _, agg := range a.Aggregates {
		exprs = append(exprs, agg)
	}
	return exprs
}

// WithExpressions implements the Expressioner interface. The replacements
// must still be grouping and aggregation aliases, in the same positions.
func (a *Aggregate) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	if len(exprs) != len(a.Keys)+len(a.Aggregates) {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(exprs), len(a.Keys)+len(a.Aggregates))
	}

	keys := make([]*expression.GroupingAlias, len(a.Keys))
	for i := range a.Keys {
		k, ok := exprs[i].(*expression.GroupingAlias)
		if !ok {
			return nil, sql.ErrInvalidType.New(exprs[i].String())
		}
		keys[i] = k
	}

	aggs := make([]*expression.AggregationAlias, len(a.Aggregates))
	for i := range a.Aggregates {
		agg, ok := exprs[len(a.Keys)+i].(*expression.AggregationAlias)
		if !ok {
			return nil, sql.ErrInvalidType.New(exprs[len(a.Keys)+i].String())
		}
		aggs[i] = agg
	}

	return NewAggregate(keys, aggs, a.Child), nil
}
