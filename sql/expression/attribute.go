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

// AttributeRef is a resolved reference to a column of an input relation.
// Two attribute references are the same reference iff their expression ids
// match; name and table are carried only for rendering and binding.
type AttributeRef struct {
	table    string
	name     string
	typ      sql.Type
	nullable bool
	id       sql.ExprID
}

var _ sql.NamedExpression = (*AttributeRef)(nil)

// NewAttributeRef creates an attribute reference with a freshly minted id.
func NewAttributeRef(name string, typ sql.Type, nullable bool) *AttributeRef {
	return NewAttributeRefWithID("", name, typ, nullable, sql.FreshExprID())
}

// NewAttributeRefWithID creates an attribute reference carrying the given
// id. The table name may be empty.
func NewAttributeRefWithID(table, name string, typ sql.Type, nullable bool, id sql.ExprID) *AttributeRef {
	return &AttributeRef{
		table:    table,
		name:     name,
		typ:      typ,
		nullable: nullable,
		id:       id,
	}
}

// AttributeFromColumn builds the attribute reference exposing the given
// schema column, keeping its id.
func AttributeFromColumn(c *sql.Column) *AttributeRef {
	return NewAttributeRefWithID(c.Source, c.Name, c.Type, c.Nullable, c.ID)
}

// ID implements the NamedExpression interface.
func (a *AttributeRef) ID() sql.ExprID { return a.id }

// Name implements the Nameable interface.
func (a *AttributeRef) Name() string { return a.name }

// Table implements the Tableable interface.
func (a *AttributeRef) Table() string { return a.table }

// Type implements the Expression interface.
func (a *AttributeRef) Type() sql.Type { return a.typ }

// IsNullable implements the Expression interface.
func (a *AttributeRef) IsNullable() bool { return a.nullable }

// Resolved implements the Expression interface.
func (a *AttributeRef) Resolved() bool { return true }

// Children implements the Expression interface.
func (*AttributeRef) Children() []sql.Expression { return nil }

// Eval implements the Expression interface. Attribute references are bound
// to row positions by the physical planner; the logical layer cannot
// evaluate them.
func (a *AttributeRef) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return nil, ErrAttributeEvaluation.New(a.name)
}

// RefersTo returns whether this reference and the given one point at the
// same attribute, that is, whether their ids match.
func (a *AttributeRef) RefersTo(o *AttributeRef) bool {
	return a.id == o.id
}

// ToColumn returns the schema column this attribute exposes.
func (a *AttributeRef) ToColumn() *sql.Column {
	return &sql.Column{
		Name:     a.name,
		Type:     a.typ,
		Nullable: a.nullable,
		Source:   a.table,
		ID:       a.id,
	}
}

func (a *AttributeRef) String() string {
	if a.table == "" {
		return a.name
	}
	return fmt.Sprintf("%s.%s", a.table, a.name)
}

// WithChildren implements the Expression interface.
func (a *AttributeRef) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 0)
	}
	return a, nil
}

// SchemaAttributes returns the attribute references exposing every column of
// the given schema, ids preserved.
func SchemaAttributes(schema sql.Schema) []sql.Expression {
	attrs := make([]sql.Expression, len(schema))
	for i, col := range schema {
		attrs[i] = AttributeFromColumn(col)
	}
	return attrs
}
