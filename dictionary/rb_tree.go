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
	"cmp"
	"fmt"
	"io"
	"iter"
)

type rbColor bool

const (
	red   rbColor = true
	black rbColor = false
)

func (c rbColor) String() string {
	if c == red {
		return "RED"
	}
	return "BLACK"
}

// rbHandle addresses a node in the tree's arena. Handle 0 is never
// allocated and stands for every external leaf, and for the parent of the
// root. It is always black.
type rbHandle int32

const leaf rbHandle = 0

type rbNode[K any, V any] struct {
	key    K
	value  V
	color  rbColor
	left   rbHandle
	right  rbHandle
	parent rbHandle
}

// RedBlackTree is a red-black tree whose nodes live in a slice and link to each
// other by index, so rotations only reassign handles.
type RedBlackTree[K cmp.Ordered, V any] struct {
	nodes       []rbNode[K, V] // nodes[leaf] is reserved
	free        []rbHandle
	root        rbHandle
	size        int
	comparisons int64
	rotations   int64
}

var _ Dictionary[string, int] = (*RedBlackTree[string, int])(nil)

func NewRedBlackTree[K cmp.Ordered, V any]() *RedBlackTree[K, V] {
	return &RedBlackTree[K, V]{nodes: make([]rbNode[K, V], 1, 16)}
}

func (t *RedBlackTree[K, V]) Kind() Kind { return RBTree }

func (t *RedBlackTree[K, V]) Len() int { return t.size }

func (t *RedBlackTree[K, V]) Empty() bool { return t.root == leaf }

func (t *RedBlackTree[K, V]) Stats() Stats {
	return Stats{Comparisons: t.comparisons, Rotations: t.rotations}
}

func (t *RedBlackTree[K, V]) compare(a, b K) int {
	t.comparisons++
	return cmp.Compare(a, b)
}

func (t *RedBlackTree[K, V]) colorOf(h rbHandle) rbColor {
	if h == leaf {
		return black
	}
	return t.nodes[h].color
}

func (t *RedBlackTree[K, V]) setColor(h rbHandle, c rbColor) {
	if h != leaf {
		t.nodes[h].color = c
	}
}

func (t *RedBlackTree[K, V]) left(h rbHandle) rbHandle   { return t.nodes[h].left }
func (t *RedBlackTree[K, V]) right(h rbHandle) rbHandle  { return t.nodes[h].right }
func (t *RedBlackTree[K, V]) parent(h rbHandle) rbHandle { return t.nodes[h].parent }

func (t *RedBlackTree[K, V]) alloc(e Entry[K, V]) rbHandle {
	n := rbNode[K, V]{key: e.Key, value: e.Value, color: red}
	if l := len(t.free); l > 0 {
		h := t.free[l-1]
		t.free = t.free[:l-1]
		t.nodes[h] = n
		return h
	}
	t.nodes = append(t.nodes, n)
	return rbHandle(len(t.nodes) - 1)
}

func (t *RedBlackTree[K, V]) release(h rbHandle) {
	t.nodes[h] = rbNode[K, V]{}
	t.free = append(t.free, h)
}

// replaceChild points the parent of old at repl instead.
func (t *RedBlackTree[K, V]) replaceChild(p, old, repl rbHandle) {
	switch {
	case p == leaf:
		t.root = repl
	case t.nodes[p].left == old:
		t.nodes[p].left = repl
	default:
		t.nodes[p].right = repl
	}
}

func (t *RedBlackTree[K, V]) rotateLeft(x rbHandle) {
	t.rotations++
	y := t.nodes[x].right
	t.nodes[x].right = t.nodes[y].left
	if l := t.nodes[y].left; l != leaf {
		t.nodes[l].parent = x
	}
	p := t.nodes[x].parent
	t.nodes[y].parent = p
	t.replaceChild(p, x, y)
	t.nodes[y].left = x
	t.nodes[x].parent = y
}

func (t *RedBlackTree[K, V]) rotateRight(x rbHandle) {
	t.rotations++
	y := t.nodes[x].left
	t.nodes[x].left = t.nodes[y].right
	if r := t.nodes[y].right; r != leaf {
		t.nodes[r].parent = x
	}
	p := t.nodes[x].parent
	t.nodes[y].parent = p
	t.replaceChild(p, x, y)
	t.nodes[y].right = x
	t.nodes[x].parent = y
}

// Insert adds e unless its key is already present.
func (t *RedBlackTree[K, V]) Insert(e Entry[K, V]) error {
	t.insert(e)
	return nil
}

// insert returns the handle holding e.Key, new or existing.
func (t *RedBlackTree[K, V]) insert(e Entry[K, V]) rbHandle {
	p, cur := leaf, t.root
	c := 0
	for cur != leaf {
		p = cur
		c = t.compare(e.Key, t.nodes[cur].key)
		switch {
		case c < 0:
			cur = t.nodes[cur].left
		case c > 0:
			cur = t.nodes[cur].right
		default:
			return cur
		}
	}

	z := t.alloc(e)
	t.nodes[z].parent = p
	switch {
	case p == leaf:
		t.root = z
	case c < 0:
		t.nodes[p].left = z
	default:
		t.nodes[p].right = z
	}
	t.size++
	t.fixupInsert(z)
	return z
}

// fixupInsert resolves red-red violations from z upward. A red uncle means
// recolor and continue from the grandparent; a black uncle means rotate,
// twice when z is an inner grandchild.
func (t *RedBlackTree[K, V]) fixupInsert(z rbHandle) {
	for t.colorOf(t.parent(z)) == red {
		p := t.parent(z)
		g := t.parent(p)
		if p == t.left(g) {
			if u := t.right(g); t.colorOf(u) == red {
				t.setColor(p, black)
				t.setColor(u, black)
				t.setColor(g, red)
				z = g
				continue
			}
			if z == t.right(p) {
				z = p
				t.rotateLeft(z)
				p = t.parent(z)
			}
			t.setColor(p, black)
			t.setColor(g, red)
			t.rotateRight(g)
		} else {
			if u := t.left(g); t.colorOf(u) == red {
				t.setColor(p, black)
				t.setColor(u, black)
				t.setColor(g, red)
				z = g
				continue
			}
			if z == t.left(p) {
				z = p
				t.rotateRight(z)
				p = t.parent(z)
			}
			t.setColor(p, black)
			t.setColor(g, red)
			t.rotateLeft(g)
		}
	}
	t.setColor(t.root, black)
}

func (t *RedBlackTree[K, V]) search(key K) rbHandle {
	cur := t.root
	for cur != leaf {
		switch c := t.compare(key, t.nodes[cur].key); {
		case c < 0:
			cur = t.nodes[cur].left
		case c > 0:
			cur = t.nodes[cur].right
		default:
			return cur
		}
	}
	return leaf
}

func (t *RedBlackTree[K, V]) minimum(h rbHandle) rbHandle {
	for t.nodes[h].left != leaf {
		h = t.nodes[h].left
	}
	return h
}

// Remove deletes key if present.
func (t *RedBlackTree[K, V]) Remove(key K) {
	if z := t.search(key); z != leaf {
		t.delete(z)
	}
}

// delete splices out z, or z's successor when z has two children (moving
// the successor's entry into z), then repairs the black height if a black
// node left the tree.
func (t *RedBlackTree[K, V]) delete(z rbHandle) {
	y := z
	if t.nodes[z].left != leaf && t.nodes[z].right != leaf {
		y = t.minimum(t.nodes[z].right)
	}

	x := t.nodes[y].left
	if x == leaf {
		x = t.nodes[y].right
	}
	xParent := t.nodes[y].parent
	if x != leaf {
		t.nodes[x].parent = xParent
	}
	t.replaceChild(xParent, y, x)

	if y != z {
		t.nodes[z].key = t.nodes[y].key
		t.nodes[z].value = t.nodes[y].value
	}
	if t.nodes[y].color == black {
		t.fixupDelete(x, xParent)
	}
	t.release(y)
	t.size--
}

// fixupDelete pushes the extra black carried by x up the tree until a red
// node absorbs it or it reaches the root. xParent is tracked by the caller
// because x may be the leaf handle.
func (t *RedBlackTree[K, V]) fixupDelete(x, xParent rbHandle) {
	for x != t.root && t.colorOf(x) == black {
		if x == t.left(xParent) {
			w := t.right(xParent)
			if t.colorOf(w) == red {
				t.setColor(w, black)
				t.setColor(xParent, red)
				t.rotateLeft(xParent)
				w = t.right(xParent)
			}
			if t.colorOf(t.left(w)) == black && t.colorOf(t.right(w)) == black {
				t.setColor(w, red)
				x = xParent
				xParent = t.parent(x)
				continue
			}
			if t.colorOf(t.right(w)) == black {
				t.setColor(t.left(w), black)
				t.setColor(w, red)
				t.rotateRight(w)
				w = t.right(xParent)
			}
			t.setColor(w, t.colorOf(xParent))
			t.setColor(xParent, black)
			t.setColor(t.right(w), black)
			t.rotateLeft(xParent)
			x = t.root
		} else {
			w := t.left(xParent)
			if t.colorOf(w) == red {
				t.setColor(w, black)
				t.setColor(xParent, red)
				t.rotateRight(xParent)
				w = t.left(xParent)
			}
			if t.colorOf(t.left(w)) == black && t.colorOf(t.right(w)) == black {
				t.setColor(w, red)
				x = xParent
				xParent = t.parent(x)
				continue
			}
			if t.colorOf(t.left(w)) == black {
				t.setColor(t.right(w), black)
				t.setColor(w, red)
				t.rotateLeft(w)
				w = t.left(xParent)
			}
			t.setColor(w, t.colorOf(xParent))
			t.setColor(xParent, black)
			t.setColor(t.left(w), black)
			t.rotateRight(xParent)
			x = t.root
		}
	}
	t.setColor(x, black)
}

func (t *RedBlackTree[K, V]) Contains(key K) bool {
	return t.search(key) != leaf
}

func (t *RedBlackTree[K, V]) At(key K) (V, error) {
	if h := t.search(key); h != leaf {
		return t.nodes[h].value, nil
	}
	var zero V
	return zero, keyNotFound(key, "red-black tree")
}

func (t *RedBlackTree[K, V]) Update(e Entry[K, V]) error {
	h := t.search(e.Key)
	if h == leaf {
		return keyNotFound(e.Key, "red-black tree")
	}
	t.nodes[h].value = e.Value
	return nil
}

func (t *RedBlackTree[K, V]) Index(key K) (*V, error) {
	var zero V
	h := t.insert(Entry[K, V]{Key: key, Value: zero})
	return &t.nodes[h].value, nil
}

// Clear drops every node but keeps the arena's capacity. Released slots
// are zeroed so they no longer hold keys or values.
func (t *RedBlackTree[K, V]) Clear() {
	clear(t.nodes[1:])
	t.nodes = t.nodes[:1]
	t.free = t.free[:0]
	t.root = leaf
	t.size = 0
}

// Swap exchanges the contents of t and other.
func (t *RedBlackTree[K, V]) Swap(other *RedBlackTree[K, V]) {
	*t, *other = *other, *t
}

func (t *RedBlackTree[K, V]) Clone() Dictionary[K, V] {
	c := &RedBlackTree[K, V]{
		nodes:       make([]rbNode[K, V], len(t.nodes)),
		free:        make([]rbHandle, len(t.free)),
		root:        t.root,
		size:        t.size,
		comparisons: t.comparisons,
		rotations:   t.rotations,
	}
	copy(c.nodes, t.nodes)
	copy(c.free, t.free)
	return c
}

// Union returns a new tree holding the entries of both trees. For keys
// present in both, the value from t wins.
func (t *RedBlackTree[K, V]) Union(other *RedBlackTree[K, V]) *RedBlackTree[K, V] {
	result := NewRedBlackTree[K, V]()
	for _, src := range []*RedBlackTree[K, V]{t, other} {
		for it := src.Iterator(); it.Next(); {
			result.insert(Entry[K, V]{Key: it.Key(), Value: it.Value()})
		}
	}
	return result
}

// BlackHeight counts the black nodes on the path from the root down its
// left spine, excluding the leaf.
func (t *RedBlackTree[K, V]) BlackHeight() int {
	n := 0
	for h := t.root; h != leaf; h = t.nodes[h].left {
		if t.nodes[h].color == black {
			n++
		}
	}
	return n
}

// Iterator returns an in-order cursor over the tree.
func (t *RedBlackTree[K, V]) Iterator() Iterator[K, V] {
	it := &rbIterator[K, V]{tree: t}
	it.pushLeft(t.root)
	return it
}

func (t *RedBlackTree[K, V]) All() iter.Seq2[K, V] {
	return seq(t.Iterator)
}

func (t *RedBlackTree[K, V]) ForEach(fn func(key K, value V)) {
	for it := t.Iterator(); it.Next(); {
		fn(it.Key(), it.Value())
	}
}

func (t *RedBlackTree[K, V]) Print(w io.Writer) {
	t.ForEach(func(k K, v V) {
		fmt.Fprintf(w, "(%v, %v)\n", k, v)
	})
}

// Render draws the tree sideways; red nodes are tagged with "*".
func (t *RedBlackTree[K, V]) Render(w io.Writer) {
	renderTree(w, t.root, treeShape[rbHandle]{
		isLeaf: func(h rbHandle) bool { return h == leaf },
		left:   t.left,
		right:  t.right,
		label: func(h rbHandle) string {
			n := &t.nodes[h]
			if n.color == red {
				return fmt.Sprintf("(%v, %v)*", n.key, n.value)
			}
			return fmt.Sprintf("(%v, %v)", n.key, n.value)
		},
	})
}

type rbIterator[K cmp.Ordered, V any] struct {
	tree    *RedBlackTree[K, V]
	stack   []rbHandle
	current rbHandle
}

func (it *rbIterator[K, V]) pushLeft(h rbHandle) {
	for ; h != leaf; h = it.tree.nodes[h].left {
		it.stack = append(it.stack, h)
	}
}

func (it *rbIterator[K, V]) Next() bool {
	if len(it.stack) == 0 {
		it.current = leaf
		return false
	}
	it.current = it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(it.tree.nodes[it.current].right)
	return true
}

func (it *rbIterator[K, V]) Key() K { return it.tree.nodes[it.current].key }

func (it *rbIterator[K, V]) Value() V { return it.tree.nodes[it.current].value }
