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

import (
	"fmt"
	"strings"
)

// FrameUnit is the unit a window frame is measured in.
type FrameUnit byte

const (
	// RowsFrame frames are measured in physical rows.
	RowsFrame FrameUnit = iota
	// RangeFrame frames are measured in peer groups of the ordering.
	RangeFrame
)

func (u FrameUnit) String() string {
	if u == RangeFrame {
		return "RANGE"
	}
	return "ROWS"
}

// BoundType is the kind of a window frame bound.
type BoundType byte

const (
	// UnboundedPreceding is the start of the partition.
	UnboundedPreceding BoundType = iota
	// CurrentRow is the current row or its peer group.
	CurrentRow
	// UnboundedFollowing is the end of the partition.
	UnboundedFollowing
)

func (b BoundType) String() string {
	switch b {
	case UnboundedPreceding:
		return "UNBOUNDED PRECEDING"
	case UnboundedFollowing:
		return "UNBOUNDED FOLLOWING"
	default:
		return "CURRENT ROW"
	}
}

// WindowFrame bounds the row set a window function sees for each row.
type WindowFrame struct {
	Unit  FrameUnit
	Start BoundType
	End   BoundType
}

func (f *WindowFrame) String() string {
	return fmt.Sprintf("%s BETWEEN %s AND %s", f.Unit, f.Start, f.End)
}

// WindowSpec specifies the partitioning, ordering and framing of a window
// function call.
type WindowSpec struct {
	// PartitionBy expressions split the input into partitions.
	PartitionBy []Expression
	// OrderBy orders rows within each partition.
	OrderBy SortFields
	// Frame bounds the visible row set. Nil means the whole partition.
	Frame *WindowFrame
}

// NewWindowSpec creates a new window specification.
func NewWindowSpec(partitionBy []Expression, orderBy SortFields, frame *WindowFrame) *WindowSpec {
	return &WindowSpec{PartitionBy: partitionBy, OrderBy: orderBy, Frame: frame}
}

// Expressions returns every expression the spec mentions: partition
// expressions first, then ordering columns.
func (w *WindowSpec) Expressions() []Expression {
	exprs := make([]Expression, 0, len(w.PartitionBy)+len(w.OrderBy))
	exprs = append(exprs, w.PartitionBy...)
	exprs = append(exprs, w.OrderBy.ToExpressions()...)
	return exprs
}

// FromExpressions returns a copy of the spec with its expressions replaced,
// in the same order Expressions returns them.
func (w *WindowSpec) FromExpressions(exprs []Expression) (*WindowSpec, error) {
	if len(exprs) != len(w.PartitionBy)+len(w.OrderBy) {
		return nil, ErrInvalidChildrenNumber.New(w, len(exprs), len(w.PartitionBy)+len(w.OrderBy))
	}
	spec := *w
	spec.PartitionBy = append([]Expression(nil), exprs[:len(w.PartitionBy)]...)
	spec.OrderBy = w.OrderBy.FromExpressions(exprs[len(w.PartitionBy):]...)
	return &spec, nil
}

// Resolved returns whether all expressions in the spec are resolved.
func (w *WindowSpec) Resolved() bool {
	for _, e := range w.PartitionBy {
		if !e.Resolved() {
			return false
		}
	}
	return w.OrderBy.Resolved()
}

func (w *WindowSpec) String() string {
	var sb strings.Builder
	sb.WriteString("over (")
	if len(w.PartitionBy) > 0 {
		sb.WriteString("partition by ")
		for i, e := range w.PartitionBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(e.String())
		}
	}
	if len(w.OrderBy) > 0 {
		if len(w.PartitionBy) > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("order by ")
		for i, f := range w.OrderBy {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(f.String())
		}
	}
	if w.Frame != nil {
		sb.WriteString(" ")
		sb.WriteString(w.Frame.String())
	}
	sb.WriteString(")")
	return sb.String()
}
