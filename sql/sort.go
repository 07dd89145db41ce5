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

package sql

import "fmt"

// SortOrder represents the order of a sort (ascending or descending).
type SortOrder byte

const (
	// Ascending order.
	Ascending SortOrder = 1
	// Descending order.
	Descending SortOrder = 2
)

func (s SortOrder) String() string {
	switch s {
	case Ascending:
		return "ASC"
	case Descending:
		return "DESC"
	default:
		return "invalid SortOrder"
	}
}

// NullOrdering represents how to order based on null values.
type NullOrdering byte

const (
	// NullsFirst puts the null values before any other values.
	NullsFirst NullOrdering = iota
	// NullsLast puts the null values after all other values.
	NullsLast NullOrdering = 2
)

// SortField is a field by which a sort will order rows.
type SortField struct {
	// Column to order by.
	Column Expression
	// Order type.
	Order SortOrder
	// NullOrdering defines how nulls will be ordered.
	NullOrdering NullOrdering
}

func (s SortField) String() string {
	return fmt.Sprintf("%s %s", s.Column, s.Order)
}

// SortFields is an ordered list of sort fields.
type SortFields []SortField

// ToExpressions returns the list of expressions the fields sort by, in order.
func (sf SortFields) ToExpressions() []Expression {
	es := make([]Expression, len(sf))
	for i, f := range sf {
		es[i] = f.Column
	}
	return es
}

// FromExpressions returns a copy of the sort fields with the columns replaced
// by the given expressions, which must be the same number as the fields.
func (sf SortFields) FromExpressions(exprs ...Expression) SortFields {
	if len(exprs) != len(sf) {
		return nil
	}
	fields := make(SortFields, len(sf))
	copy(fields, sf)
	for i := range fields {
		fields[i].Column = exprs[i]
	}
	return fields
}

// Resolved returns whether all sort field columns are resolved.
func (sf SortFields) Resolved() bool {
	for _, f := range sf {
		if !f.Column.Resolved() {
			return false
		}
	}
	return true
}
