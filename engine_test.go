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

package quell_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	quell "github.com/quelldb/quell"
	"github.com/quelldb/quell/mem"
	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
	"github.com/quelldb/quell/sql/plan"
)

func TestEngineAnalyzesGroupBy(t *testing.T) {
	require := require.New(t)

	e := quell.NewDefault()
	db := mem.NewDatabase("test")
	db.AddTable(mem.NewTable("sales", sql.Schema{
		{Name: "region", Type: sql.Text},
		{Name: "amount", Type: sql.Float64},
	}))
	e.AddDatabase(db)

	node := plan.NewUnresolvedAggregate(
		[]sql.Expression{expression.NewUnresolvedColumn("region")},
		[]sql.Expression{
			expression.NewUnresolvedColumn("region"),
			expression.NewAlias("total",
				expression.NewUnresolvedFunction("sum", false, expression.NewUnresolvedColumn("amount"))),
		},
		plan.NewUnresolvedTable("sales"),
	)

	analyzed, err := e.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)
	require.True(analyzed.Resolved())

	schema := analyzed.Schema()
	require.Len(schema, 2)
	require.Equal("region", schema[0].Name)
	require.Equal("total", schema[1].Name)
	require.Equal(sql.Float64, schema[1].Type)
}

func TestEngineRejectsUnknownTable(t *testing.T) {
	require := require.New(t)

	e := quell.NewDefault()
	_, err := e.Analyze(sql.NewEmptyContext(), plan.NewUnresolvedTable("nope"))
	require.Error(err)
	require.True(sql.ErrTableNotFound.Is(err))
}
