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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrAttributeEvaluation is returned when an attribute reference is
	// evaluated before being bound to a row position by a physical plan.
	ErrAttributeEvaluation = errors.NewKind("attribute %q is not bound to a row position and cannot be evaluated")

	// ErrInternalEvaluation is returned when an analyzer-internal expression
	// leaks into evaluation.
	ErrInternalEvaluation = errors.NewKind("internal expression %s cannot be evaluated")

	// ErrWindowEvaluation is returned when a window function call is
	// evaluated row by row; windows are computed by a dedicated operator.
	ErrWindowEvaluation = errors.NewKind("window function %s cannot be evaluated outside of a window operator")

	errUnsupportedArithmeticOp = errors.NewKind("unsupported arithmetic operator: %s")
)
