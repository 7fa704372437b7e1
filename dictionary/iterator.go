// Copyright 2025 Naren Yellavula
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

package dictionary

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Iterator is a forward cursor. Call Next before the first Key/Value.
// Mutating the dictionary invalidates outstanding iterators.
type Iterator[K any, V any] interface {
	Next() bool
	Key() K
	Value() V
}

func seq[K any, V any](open func() Iterator[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := open(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// treeShape lets renderTree walk either tree representation.
type treeShape[N any] struct {
	isLeaf func(N) bool
	left   func(N) N
	right  func(N) N
	label  func(N) string
}

// renderTree prints a sideways drawing of the tree: right subtrees above
// their parent, left subtrees below, leaves under inner nodes as "#".
func renderTree[N any](w io.Writer, root N, shape treeShape[N]) {
	var walk func(node N, path string)
	walk = func(node N, path string) {
		inner := !shape.isLeaf(node) && (!shape.isLeaf(shape.left(node)) || !shape.isLeaf(shape.right(node)))
		if inner {
			walk(shape.right(node), path+"r")
		}

		var b strings.Builder
		for i := 0; i < len(path)-1; i++ {
			if path[i] != path[i+1] {
				b.WriteString("│   ")
			} else {
				b.WriteString("    ")
			}
		}
		if path != "" {
			if path[len(path)-1] == 'r' {
				b.WriteString("┌───")
			} else {
				b.WriteString("└───")
			}
		}
		if shape.isLeaf(node) {
			b.WriteString("#")
		} else {
			b.WriteString(shape.label(node))
		}
		fmt.Fprintln(w, b.String())

		if inner {
			walk(shape.left(node), path+"l")
		}
	}
	walk(root, "")
}
