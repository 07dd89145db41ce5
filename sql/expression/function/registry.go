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

package function

import (
	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression/function/aggregation"
	"github.com/quelldb/quell/sql/expression/function/window"
)

// Defaults is the function map of the engine: every function the analyzer
// can bind calls against out of the box.
var Defaults = []sql.Function{
	sql.Function1{Name: "count", Fn: func(e sql.Expression) sql.Expression { return aggregation.NewCount(e) }},
	sql.Function1{Name: "sum", Fn: func(e sql.Expression) sql.Expression { return aggregation.NewSum(e) }},
	sql.Function1{Name: "avg", Fn: func(e sql.Expression) sql.Expression { return aggregation.NewAvg(e) }},
	sql.Function1{Name: "min", Fn: func(e sql.Expression) sql.Expression { return aggregation.NewMin(e) }},
	sql.Function1{Name: "max", Fn: func(e sql.Expression) sql.Expression { return aggregation.NewMax(e) }},
	sql.Function1{Name: "first", Fn: func(e sql.Expression) sql.Expression { return aggregation.NewFirst(e) }},
	sql.Function1{Name: "last", Fn: func(e sql.Expression) sql.Expression { return aggregation.NewLast(e) }},
	sql.FunctionN{Name: "row_number", Fn: nullary("row_number", window.NewRowNumber)},
	sql.FunctionN{Name: "rank", Fn: nullary("rank", window.NewRank)},
	sql.FunctionN{Name: "dense_rank", Fn: nullary("dense_rank", window.NewDenseRank)},
}

func nullary(name string, fn func() sql.Expression) func(...sql.Expression) (sql.Expression, error) {
	return func(args ...sql.Expression) (sql.Expression, error) {
		if len(args) != 0 {
			return nil, sql.ErrInvalidArgumentNumber.New(name, 0, len(args))
		}
		return fn(), nil
	}
}

// RegisterDefaults registers the default functions on the given catalog.
func RegisterDefaults(c *sql.Catalog) {
	c.RegisterFunctions(Defaults...)
}
