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

// Alias is a node that gives a name to an expression. The alias owns an
// expression id, so the attribute it exposes keeps its identity across plan
// rewrites.
type Alias struct {
	UnaryExpression
	name string
	id   sql.ExprID
}

var _ sql.NamedExpression = (*Alias)(nil)

// NewAlias returns a new Alias node with a freshly minted id.
func NewAlias(name string, expr sql.Expression) *Alias {
	return NewAliasWithID(name, expr, sql.FreshExprID())
}

// NewAliasWithID returns a new Alias node carrying the given id.
func NewAliasWithID(name string, expr sql.Expression, id sql.ExprID) *Alias {
	return &Alias{UnaryExpression{expr}, name, id}
}

// Type returns the type of the expression.
func (e *Alias) Type() sql.Type {
	return e.Child.Type()
}

// Eval implements the Expression interface.
func (e *Alias) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return e.Child.Eval(ctx, row)
}

func (e *Alias) String() string {
	return fmt.Sprintf("%s as %s", e.Child, e.name)
}

// WithChildren implements the Expression interface.
func (e *Alias) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(e, len(children), 1)
	}
	return NewAliasWithID(e.name, children[0], e.id), nil
}

// Name implements the Nameable interface.
func (e *Alias) Name() string { return e.name }

// ID implements the NamedExpression interface.
func (e *Alias) ID() sql.ExprID { return e.id }

// ToAttribute returns the attribute reference exposing this alias in the
// schema of the node that projects it. The alias must be resolved.
func (e *Alias) ToAttribute() *AttributeRef {
	return NewAttributeRefWithID("", e.name, e.Child.Type(), e.Child.IsNullable(), e.id)
}

// ToColumn returns the schema column this alias exposes.
func (e *Alias) ToColumn() *sql.Column {
	return &sql.Column{
		Name:     e.name,
		Type:     e.Child.Type(),
		Nullable: e.Child.IsNullable(),
		ID:       e.id,
	}
}
