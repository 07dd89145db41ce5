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

package aggregation

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrEvalUnsupportedOnAggregation is returned when Eval is called on an
	// aggregation function. Aggregations depend on a whole group of rows;
	// computing them belongs to the execution layer.
	ErrEvalUnsupportedOnAggregation = errors.NewKind("unable to eval aggregation function %s against a row")

	// ErrDistinctUnsupported is returned when a distinct aggregate function
	// reaches planning or evaluation. Lowering distinct aggregates is a
	// deliberate, documented limitation.
	ErrDistinctUnsupported = errors.NewKind("Distinct aggregate function is not supported yet: %s")
)
