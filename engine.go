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

package quell

import (
	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/analyzer"
	"github.com/quelldb/quell/sql/expression/function"
)

// Engine binds a catalog and an analyzer: it turns unresolved logical plans
// into fully resolved, strictly typed ones ready for optimization. Parsing
// SQL text into plans, and executing the analyzed plans, belong to other
// layers.
type Engine struct {
	Catalog  *sql.Catalog
	Analyzer *analyzer.Analyzer
}

// New creates a new Engine with the given catalog and analyzer.
func New(c *sql.Catalog, a *analyzer.Analyzer) *Engine {
	function.RegisterDefaults(c)
	return &Engine{Catalog: c, Analyzer: a}
}

// NewDefault creates a new default Engine.
func NewDefault() *Engine {
	c := sql.NewCatalog()
	return New(c, analyzer.NewDefault(c))
}

// Analyze resolves the given plan and all its children.
func (e *Engine) Analyze(ctx *sql.Context, plan sql.Node) (sql.Node, error) {
	return e.Analyzer.Analyze(ctx, plan)
}

// AddDatabase adds the given database to the catalog.
func (e *Engine) AddDatabase(db sql.Database) {
	e.Catalog.AddDatabase(db)
}
