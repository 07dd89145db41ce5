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

package analyzer

import (
	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/plan"
)

// dualDatabase is the database tables resolve against when none is set on
// the catalog lookup: the catalog then searches every database, first match
// wins.
const dualDatabase = ""

// resolveTables replaces UnresolvedTable nodes with relations bound against
// the catalog.
func resolveTables(ctx *sql.Context, a *Analyzer, n sql.Node) (sql.Node, error) {
	span, _ := ctx.Span("resolve_tables")
	defer span.Finish()

	a.Log("resolve table, node of type: %T", n)
	return plan.TransformUp(n, func(n sql.Node) (sql.Node, error) {
		t, ok := n.(*plan.UnresolvedTable)
		if !ok {
			return n, nil
		}

		rt, err := a.Catalog.Table(dualDatabase, t.Name())
		if err != nil {
			return nil, err
		}

		a.Log("table resolved: %q", t.Name())
		return plan.NewResolvedTable(rt), nil
	})
}
