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

// InternalAttribute is an attribute reference minted by the analyzer while
// layering an aggregation. It behaves like any attribute reference but is
// distinguishable, so the analyzer can guarantee none of them leak into
// user-visible output.
type InternalAttribute struct {
	AttributeRef
}

var _ sql.NamedExpression = (*InternalAttribute)(nil)

func newInternalAttribute(name string, child sql.Expression) *InternalAttribute {
	typ, nullable := sql.Type(sql.Null), true
	if child.Resolved() {
		typ, nullable = child.Type(), child.IsNullable()
	}
	return &InternalAttribute{
		*NewAttributeRefWithID("", name, typ, nullable, sql.FreshExprID()),
	}
}

// WithChildren implements the Expression interface.
func (a *InternalAttribute) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 0)
	}
	return a, nil
}

// Eval implements the Expression interface.
func (a *InternalAttribute) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrInternalEvaluation.New(a.Name())
}

// IsInternal returns whether the expression is an analyzer-internal
// attribute.
func IsInternal(e sql.Expression) bool {
	_, ok := e.(*InternalAttribute)
	return ok
}

// InternalAlias is a named expression introduced by the analyzer: it owns a
// child expression and exposes a synthetic internal attribute with a stable,
// freshly minted id and the child's type and nullability.
type InternalAlias interface {
	sql.NamedExpression
	// Target returns the aliased child expression.
	Target() sql.Expression
	// Attr returns the synthetic attribute standing in for the child.
	Attr() *InternalAttribute
}

// internalAlias carries the shared implementation of the three alias kinds.
type internalAlias struct {
	child sql.Expression
	attr  *InternalAttribute
}

func newInternalAlias(prefix string, ordinal int, child sql.Expression) internalAlias {
	name := fmt.Sprintf("$%s%d", prefix, ordinal)
	return internalAlias{child: child, attr: newInternalAttribute(name, child)}
}

// Target implements the InternalAlias interface.
func (a *internalAlias) Target() sql.Expression { return a.child }

// Attr implements the InternalAlias interface.
func (a *internalAlias) Attr() *InternalAttribute { return a.attr }

// Name implements the Nameable interface.
func (a *internalAlias) Name() string { return a.attr.Name() }

// ID implements the NamedExpression interface.
func (a *internalAlias) ID() sql.ExprID { return a.attr.ID() }

// Type implements the Expression interface.
func (a *internalAlias) Type() sql.Type { return a.child.Type() }

// IsNullable implements the Expression interface.
func (a *internalAlias) IsNullable() bool { return a.child.IsNullable() }

// Resolved implements the Expression interface.
func (a *internalAlias) Resolved() bool { return a.child.Resolved() }

// Children implements the Expression interface.
func (a *internalAlias) Children() []sql.Expression { return []sql.Expression{a.child} }

func (a *internalAlias) String() string {
	return fmt.Sprintf("%s as %s", a.child, a.attr.Name())
}

// ToColumn returns the schema column the alias exposes.
func (a *internalAlias) ToColumn() *sql.Column {
	return a.attr.ToColumn()
}

// GroupingAlias names a grouping key of an aggregation.
type GroupingAlias struct{ internalAlias }

// AggregationAlias names an aggregate function computed by an aggregation.
type AggregationAlias struct{ internalAlias }

// WindowAlias names a window function computed by a window operator.
type WindowAlias struct{ internalAlias }

// NewGroupingAlias returns an alias for the ordinal-th grouping key.
func NewGroupingAlias(ordinal int, child sql.Expression) *GroupingAlias {
	return &GroupingAlias{newInternalAlias("g", ordinal, child)}
}

// NewAggregationAlias returns an alias for the ordinal-th aggregate.
func NewAggregationAlias(ordinal int, child sql.Expression) *AggregationAlias {
	return &AggregationAlias{newInternalAlias("a", ordinal, child)}
}

// NewWindowAlias returns an alias for the ordinal-th window function.
func NewWindowAlias(ordinal int, child sql.Expression) *WindowAlias {
	return &WindowAlias{newInternalAlias("w", ordinal, child)}
}

// Eval implements the Expression interface. A grouping key evaluates to its
// child: the key value is computed per input row.
func (a *GroupingAlias) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return a.child.Eval(ctx, row)
}

// Eval implements the Expression interface.
func (a *AggregationAlias) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrInternalEvaluation.New(a.Name())
}

// Eval implements the Expression interface.
func (a *WindowAlias) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrInternalEvaluation.New(a.Name())
}

// WithChildren implements the Expression interface. The synthetic attribute
// is preserved, so rewriting the child does not change the alias identity.
func (a *GroupingAlias) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 1)
	}
	return &GroupingAlias{internalAlias{child: children[0], attr: a.attr}}, nil
}

// WithChildren implements the Expression interface.
func (a *AggregationAlias) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 1)
	}
	return &AggregationAlias{internalAlias{child: children[0], attr: a.attr}}, nil
}

// WithChildren implements the Expression interface.
func (a *WindowAlias) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 1)
	}
	return &WindowAlias{internalAlias{child: children[0], attr: a.attr}}, nil
}

// AliasRewriter builds a partial transformation over the given aliases: any
// expression structurally equal to an alias target is replaced with the
// alias attribute. The first alias in declaration order wins ties. Applied
// bottom-up, it substitutes every occurrence of an aliased subexpression.
func AliasRewriter(aliases ...InternalAlias) sql.TransformExprFunc {
	return func(e sql.Expression) (sql.Expression, error) {
		for _, alias := range aliases {
			if ExpressionsEqual(e, alias.Target()) {
				return alias.Attr(), nil
			}
		}
		return e, nil
	}
}

// AliasRestorer builds the inverse of AliasRewriter: alias attributes are
// replaced back with their targets. It is used to render user-facing
// expressions, which must never contain synthetic attribute names.
func AliasRestorer(aliases ...InternalAlias) sql.TransformExprFunc {
	return func(e sql.Expression) (sql.Expression, error) {
		attr, ok := e.(*InternalAttribute)
		if !ok {
			return e, nil
		}
		for _, alias := range aliases {
			if alias.Attr().ID() == attr.ID() {
				return alias.Target(), nil
			}
		}
		return e, nil
	}
}
