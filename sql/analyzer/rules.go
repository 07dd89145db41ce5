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

// DefaultRules to apply when analyzing nodes. Resolution rules come first;
// the aggregation pipeline is ordered so that DISTINCT becomes aggregation,
// projections with aggregates become global aggregations, adjacent Filter
// and Sort nodes are absorbed, and only then a ready UnresolvedAggregate is
// resolved into its layered form.
var DefaultRules = []Rule{
	{"resolve_tables", resolveTables},
	{"resolve_functions", resolveFunctions},
	{"resolve_columns", resolveColumns},
	{"rewrite_distincts", rewriteDistincts},
	{"rewrite_global_aggregates", rewriteGlobalAggregates},
	{"absorb_having", absorbHavingConditions},
	{"absorb_sorts", absorbSorts},
	{"resolve_aggregates", resolveAggregates},
}

// ValidationRules run once after the default batch reaches its fixed point.
var ValidationRules = []Rule{
	{"reject_distinct_aggregates", rejectDistinctAggregates},
	{"ensure_resolved", ensureResolved},
}
