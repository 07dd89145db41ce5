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
	"github.com/quelldb/quell/sql"
)

// CollectAggregations returns the deduplicated sequence of non-window
// aggregate functions within the given expressions, in first-seen order.
//
// An aggregation sitting at the top of a window function call is an analytic
// computation and is not collected; aggregations buried in the call's
// arguments or in its window specification are ordinary group-by aggregates
// and are. Distinct aggregates are collected as a whole; their inner
// aggregate is not reported separately.
func CollectAggregations(exprs ...sql.Expression) ([]sql.Aggregation, error) {
	d := newDedup()
	for _, e := range exprs {
		if err := collectAggregations(d, e); err != nil {
			return nil, err
		}
	}

	aggs := make([]sql.Aggregation, len(d.all()))
	for i, e := range d.all() {
		aggs[i] = e.(sql.Aggregation)
	}
	return aggs, nil
}

func collectAggregations(d *dedup, e sql.Expression) error {
	// Aggregates inside a window call's arguments or spec are ordinary
	// aggregates; the windowed function itself is not.
	for _, w := range windowCalls(e) {
		for _, arg := range w.Fn().Children() {
			if err := collectAggregations(d, arg); err != nil {
				return err
			}
		}
		for _, s := range w.Spec().Expressions() {
			if err := collectAggregations(d, s); err != nil {
				return err
			}
		}
	}

	// Replace every window call with its synthetic attribute so the calls,
	// and everything under them, are invisible to the walk below.
	elim, err := TransformDown(e, func(e sql.Expression) (sql.Expression, error) {
		if o, ok := e.(*Over); ok {
			return NewWindowAlias(0, o).Attr(), nil
		}
		return e, nil
	})
	if err != nil {
		return err
	}

	// Distinct aggregates are collected whole, then hidden, so their inner
	// aggregate is not collected a second time.
	for _, da := range Collect(elim, func(e sql.Expression) bool {
		_, ok := e.(sql.DistinctAggregation)
		return ok
	}) {
		d.add(da)
	}

	elim, err = TransformUp(elim, func(e sql.Expression) (sql.Expression, error) {
		if da, ok := e.(sql.DistinctAggregation); ok {
			return NewAggregationAlias(0, da).Attr(), nil
		}
		return e, nil
	})
	if err != nil {
		return err
	}

	for _, agg := range Collect(elim, func(e sql.Expression) bool {
		_, ok := e.(sql.Aggregation)
		return ok
	}) {
		d.add(agg)
	}

	return nil
}

// CollectWindowFunctions returns every window function call within the
// given expressions, deduplicated by structural equality, first-seen order.
func CollectWindowFunctions(exprs ...sql.Expression) []*Over {
	d := newDedup()
	for _, e := range exprs {
		for _, w := range windowCalls(e) {
			d.add(w)
		}
	}

	wins := make([]*Over, len(d.all()))
	for i, e := range d.all() {
		wins[i] = e.(*Over)
	}
	return wins
}

func windowCalls(e sql.Expression) []*Over {
	var calls []*Over
	for _, w := range Collect(e, func(e sql.Expression) bool {
		_, ok := e.(*Over)
		return ok
	}) {
		calls = append(calls, w.(*Over))
	}
	return calls
}

// HasAggregation returns whether any of the given expressions contains a
// non-window aggregate function.
func HasAggregation(exprs ...sql.Expression) bool {
	aggs, err := CollectAggregations(exprs...)
	return err == nil && len(aggs) > 0
}

// HasWindowFunction returns whether any of the given expressions contains a
// window function call.
func HasWindowFunction(exprs ...sql.Expression) bool {
	for _, e := range exprs {
		if len(windowCalls(e)) > 0 {
			return true
		}
	}
	return false
}

// HasDistinctAggregation returns whether any of the given expressions
// contains a distinct aggregate function.
func HasDistinctAggregation(exprs ...sql.Expression) bool {
	for _, e := range exprs {
		var found bool
		Inspect(e, func(e sql.Expression) bool {
			if _, ok := e.(sql.DistinctAggregation); ok {
				found = true
				return false
			}
			return true
		})
		if found {
			return true
		}
	}
	return false
}
