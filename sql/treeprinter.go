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

// TreePrinter renders plan trees with one node per line, children indented
// and connected with box-drawing characters.
type TreePrinter struct {
	buf      strings.Builder
	nodeDone bool
	done     bool
}

// NewTreePrinter creates a new tree printer.
func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// WriteNode writes the header of the node. It must be called exactly once,
// before WriteChildren.
func (p *TreePrinter) WriteNode(format string, args ...interface{}) error {
	if p.nodeDone {
		return fmt.Errorf("treeprinter: node already written")
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteRune('\n')
	p.nodeDone = true
	return nil
}

// WriteChildren writes the children of the node, themselves already
// rendered. It must be called after WriteNode, at most once.
func (p *TreePrinter) WriteChildren(children ...string) error {
	if !p.nodeDone {
		return fmt.Errorf("treeprinter: a node must be written before its children")
	}
	if p.done {
		return fmt.Errorf("treeprinter: children already written")
	}
	p.done = true

	for i, child := range children {
		last := i+1 == len(children)
		lines := strings.Split(strings.TrimRight(child, "\n"), "\n")
		for j, line := range lines {
			switch {
			case j == 0 && last:
				p.buf.WriteString(" └─ ")
			case j == 0:
				p.buf.WriteString(" ├─ ")
			case last:
				p.buf.WriteString("     ")
			default:
				p.buf.WriteString(" │   ")
			}
			p.buf.WriteString(line)
			p.buf.WriteRune('\n')
		}
	}
	return nil
}

// String returns the rendered tree.
func (p *TreePrinter) String() string {
	return p.buf.String()
}
