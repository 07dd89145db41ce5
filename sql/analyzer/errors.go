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
	"gopkg.in/src-d/go-errors.v1"
)

// The IllegalAggregation family: everything a query can get wrong while
// mixing grouping keys, aggregates, HAVING, ORDER BY and window functions.
// Messages render the offending expressions in user terms: synthetic
// attributes introduced during resolution are restored to the expressions
// they stand for before formatting.
var (
	// ErrAggregateInGroupingKey is returned when a grouping key contains an
	// aggregate function.
	ErrAggregateInGroupingKey = errors.NewKind(
		"illegal aggregation: grouping key %s contains aggregate function %s")

	// ErrWindowInGroupingKey is returned when a grouping key contains a
	// window function.
	ErrWindowInGroupingKey = errors.NewKind(
		"illegal aggregation: grouping key %s contains window function %s")

	// ErrWindowInHaving is returned when a HAVING condition references a
	// window function. HAVING is evaluated before windows.
	ErrWindowInHaving = errors.NewKind(
		"illegal aggregation: HAVING condition %s references window function %s")

	// ErrNestedAggregate is returned when an aggregate function contains
	// another aggregate function in its arguments.
	ErrNestedAggregate = errors.NewKind(
		"illegal aggregation: aggregate function %s contains nested aggregate %s")

	// ErrDanglingReference is returned when an expression references an
	// attribute that is neither a grouping key nor an aggregate.
	ErrDanglingReference = errors.NewKind(
		"illegal aggregation: %s %s references attribute %q, which is neither a grouping key nor an aggregate; grouping keys: [%s]")

	// ErrColumnNotFound is returned when a referenced column cannot be bound
	// against any table in scope.
	ErrColumnNotFound = errors.NewKind("column %q could not be found in any table in scope")

	// ErrAmbiguousColumnName is returned when a column reference is present
	// in more than one table.
	ErrAmbiguousColumnName = errors.NewKind("ambiguous column name %q, it's present in all these tables: %v")

	// ErrUnresolvedNode is returned when the plan contains nodes or
	// expressions the analysis could not resolve.
	ErrUnresolvedNode = errors.NewKind("plan is not fully resolved: %s")
)
