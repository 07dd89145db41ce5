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

package plan

import (
	"strings"

	"github.com/quelldb/quell/sql"
	"github.com/quelldb/quell/sql/expression"
)

// Window computes a layer of window functions that share a single window
// specification. Its output is the child's output followed by one internal
// attribute per window function.
type Window struct {
	UnaryNode
	// Functions are the window function aliases of this layer. Every target
	// is a window call with the same spec.
	Functions []*expression.WindowAlias
}

var _ sql.Node = (*Window)(nil)
var _ sql.Expressioner = (*Window)(nil)

// NewWindow creates a new Window node.
func NewWindow(functions []*expression.WindowAlias, child sql.Node) *Window {
	return &Window{
		UnaryNode: UnaryNode{child},
		Functions: functions,
	}
}

// Spec returns the window specification shared by this layer.
func (w *Window) Spec() *sql.WindowSpec {
	if len(w.Functions) == 0 {
		return nil
	}
	over, ok := w.Functions[0].Target().(*expression.Over)
	if !ok {
		return nil
	}
	return over.Spec()
}

// Resolved implements the Resolvable interface.
func (w *Window) Resolved() bool {
	if !w.UnaryNode.Child.Resolved() {
		return false
	}
	for _, f := range w.Functions {
		if !f.Resolved() {
			return false
		}
	}
	return true
}

// Schema implements the Node interface.
func (w *Window) Schema() sql.Schema {
	child := w.Child.Schema()
	s := make(sql.Schema, 0, len(child)+len(w.Functions))
	s = append(s, child...)
	for _, f := range w.Functions {
		s = append(s, f.ToColumn())
	}
	return s
}

func (w *Window) String() string {
	pr := sql.NewTreePrinter()
	fns := make([]string, len(w.Functions))
	for i, f := range w.Functions {
		fns[i] = f.String()
	}
	_ = pr.WriteNode("Window(%s)", strings.Join(fns, ", "))
	_ = pr.WriteChildren(w.Child.String())
	return pr.String()
}

// WithChildren implements the Node interface.
func (w *Window) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(w, len(children), 1)
	}
	return NewWindow(w.Functions, children[0]), nil
}

// Expressions implements the Expressioner interface.
func (w *Window) Expressions() []sql.Expression {
	exprs := make([]sql.Expression, len(w.Functions))
	for i, f := range w.Functions {
		exprs[i] = f
	}
	return exprs
}

// WithExpressions implements the Expressioner interface. The replacements
// must still be window aliases.
func (w *Window) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	if len(exprs) != len(w.Functions) {
		return nil, sql.ErrInvalidChildrenNumber.New(w, len(exprs), len(w.Functions))
	}

	fns := make([]*expression.WindowAlias, len(exprs))
	for i, e := range exprs {
		f, ok := e.(*expression.WindowAlias)
		if !ok {
			return nil, sql.ErrInvalidType.New(e.String())
		}
		fns[i] = f
	}

	return NewWindow(fns, w.Child), nil
}
