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
	"github.com/quelldb/quell/sql"
)

// UnresolvedTable is a table that has not been resolved against the catalog
// yet.
type UnresolvedTable struct {
	name string
}

var _ sql.Node = (*UnresolvedTable)(nil)

// NewUnresolvedTable creates a new Unresolved table.
func NewUnresolvedTable(name string) *UnresolvedTable {
	return &UnresolvedTable{name}
}

// Name implements the Nameable interface.
func (t *UnresolvedTable) Name() string { return t.name }

// Resolved implements the Resolvable interface.
func (*UnresolvedTable) Resolved() bool { return false }

// Children implements the Node interface.
func (*UnresolvedTable) Children() []sql.Node { return nil }

// Schema implements the Node interface.
func (*UnresolvedTable) Schema() sql.Schema { return nil }

func (t *UnresolvedTable) String() string {
	return "UnresolvedTable(" + t.name + ")"
}

// WithChildren implements the Node interface.
func (t *UnresolvedTable) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(t, len(children), 0)
	}
	return t, nil
}

// ResolvedTable is a leaf relation bound to a catalog table. Its schema
// carries stable attribute ids, minted once when the table is resolved, so
// every reference to a column keeps binding to the same attribute across
// rewrites.
type ResolvedTable struct {
	sql.Table
	schema sql.Schema
}

var _ sql.Node = (*ResolvedTable)(nil)

// NewResolvedTable creates a new resolved table, minting fresh attribute
// ids for its columns.
func NewResolvedTable(t sql.Table) *ResolvedTable {
	schema := make(sql.Schema, len(t.Schema()))
	for i, col := range t.Schema() {
		c := *col
		c.Source = t.Name()
		c.ID = sql.FreshExprID()
		schema[i] = &c
	}
	return &ResolvedTable{Table: t, schema: schema}
}

// Resolved implements the Resolvable interface.
func (*ResolvedTable) Resolved() bool { return true }

// Children implements the Node interface.
func (*ResolvedTable) Children() []sql.Node { return nil }

// Schema implements the Node interface.
func (t *ResolvedTable) Schema() sql.Schema { return t.schema }

func (t *ResolvedTable) String() string {
	return "Table(" + t.Name() + ")"
}

// WithChildren implements the Node interface.
func (t *ResolvedTable) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(t, len(children), 0)
	}
	return t, nil
}
