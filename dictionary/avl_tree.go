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

// AVLTree is a height-balanced binary search tree. Nodes carry no parent
// link; every rebalance happens on the way back up a recursive call.
type AVLTree[K cmp.Ordered, V any] struct {
	root        *avlNode[K, V]
	size        int
	comparisons int64
	rotations   int64
}

var _ Dictionary[string, int] = (*AVLTree[string, int])(nil)

func NewAVLTree[K cmp.Ordered, V any]() *AVLTree[K, V] {
	return &AVLTree[K, V]{}
}

func (tree *AVLTree[K, V]) Kind() Kind { return AVL }

func (tree *AVLTree[K, V]) Len() int { return tree.size }

func (tree *AVLTree[K, V]) Empty() bool { return tree.root == nil }

// Height returns the height of the whole tree (0 when empty).
func (tree *AVLTree[K, V]) Height() int { return tree.getHeight(tree.root) }

func (tree *AVLTree[K, V]) Stats() Stats {
	return Stats{Comparisons: tree.comparisons, Rotations: tree.rotations}
}

func (tree *AVLTree[K, V]) compare(a, b K) int {
	tree.comparisons++
	return cmp.Compare(a, b)
}

func (tree *AVLTree[K, V]) getHeight(node *avlNode[K, V]) int {
	if node == nil {
		return 0
	}
	return node.Height
}

func (tree *AVLTree[K, V]) updateHeight(node *avlNode[K, V]) {
	node.Height = max(tree.getHeight(node.Left), tree.getHeight(node.Right)) + 1
}

// getBalanceFactor is height(right) - height(left).
func (tree *AVLTree[K, V]) getBalanceFactor(node *avlNode[K, V]) int {
	if node == nil {
		return 0
	}
	return tree.getHeight(node.Right) - tree.getHeight(node.Left)
}

func (tree *AVLTree[K, V]) rotateLeft(node *avlNode[K, V]) *avlNode[K, V] {
	tree.rotations++
	pivot := node.Right
	node.Right = pivot.Left
	pivot.Left = node

	tree.updateHeight(node)
	tree.updateHeight(pivot)
	return pivot
}

func (tree *AVLTree[K, V]) rotateRight(node *avlNode[K, V]) *avlNode[K, V] {
	tree.rotations++
	pivot := node.Left
	node.Left = pivot.Right
	pivot.Right = node

	tree.updateHeight(node)
	tree.updateHeight(pivot)
	return pivot
}

// rebalance restores the AVL property at node after one of its subtrees
// changed height by at most one. A heavy child leaning the same way (or
// level) needs a single rotation; leaning the other way needs a double one.
func (tree *AVLTree[K, V]) rebalance(node *avlNode[K, V]) *avlNode[K, V] {
	tree.updateHeight(node)
	switch balanceFactor := tree.getBalanceFactor(node); {
	case balanceFactor > 1:
		if tree.getBalanceFactor(node.Right) < 0 {
			node.Right = tree.rotateRight(node.Right)
		}
		return tree.rotateLeft(node)
	case balanceFactor < -1:
		if tree.getBalanceFactor(node.Left) > 0 {
			node.Left = tree.rotateLeft(node.Left)
		}
		return tree.rotateRight(node)
	}
	return node
}

// Insert adds e unless its key is already present.
func (tree *AVLTree[K, V]) Insert(e Entry[K, V]) error {
	tree.root = tree.insertRecursive(tree.root, e)
	return nil
}

func (tree *AVLTree[K, V]) insertRecursive(node *avlNode[K, V], e Entry[K, V]) *avlNode[K, V] {
	if node == nil {
		tree.size++
		return &avlNode[K, V]{Key: e.Key, Value: e.Value, Height: 1}
	}

	switch c := tree.compare(e.Key, node.Key); {
	case c < 0:
		node.Left = tree.insertRecursive(node.Left, e)
	case c > 0:
		node.Right = tree.insertRecursive(node.Right, e)
	default:
		return node
	}
	return tree.rebalance(node)
}

// Remove deletes key if present.
func (tree *AVLTree[K, V]) Remove(key K) {
	tree.root = tree.deleteRecursive(tree.root, key)
}

func (tree *AVLTree[K, V]) deleteRecursive(node *avlNode[K, V], key K) *avlNode[K, V] {
	if node == nil {
		return nil
	}

	switch c := tree.compare(key, node.Key); {
	case c < 0:
		node.Left = tree.deleteRecursive(node.Left, key)
	case c > 0:
		node.Right = tree.deleteRecursive(node.Right, key)
	default:
		if node.Left == nil || node.Right == nil {
			tree.size--
			if node.Left != nil {
				return node.Left
			}
			return node.Right
		}
		node.Right = tree.removeSuccessor(node, node.Right)
	}
	return tree.rebalance(node)
}

// removeSuccessor unlinks the leftmost node of the subtree rooted at node,
// moves its entry into target and rebalances every node on the way back.
func (tree *AVLTree[K, V]) removeSuccessor(target, node *avlNode[K, V]) *avlNode[K, V] {
	if node.Left == nil {
		target.Key, target.Value = node.Key, node.Value
		tree.size--
		return node.Right
	}
	node.Left = tree.removeSuccessor(target, node.Left)
	return tree.rebalance(node)
}

func (tree *AVLTree[K, V]) search(key K) *avlNode[K, V] {
	node := tree.root
	for node != nil {
		switch c := tree.compare(key, node.Key); {
		case c < 0:
			node = node.Left
		case c > 0:
			node = node.Right
		default:
			return node
		}
	}
	return nil
}

func (tree *AVLTree[K, V]) Contains(key K) bool {
	return tree.search(key) != nil
}

func (tree *AVLTree[K, V]) At(key K) (V, error) {
	if node := tree.search(key); node != nil {
		return node.Value, nil
	}
	var zero V
	return zero, keyNotFound(key, "avl tree")
}

func (tree *AVLTree[K, V]) Update(e Entry[K, V]) error {
	node := tree.search(e.Key)
	if node == nil {
		return keyNotFound(e.Key, "avl tree")
	}
	node.Value = e.Value
	return nil
}

func (tree *AVLTree[K, V]) Index(key K) (*V, error) {
	if node := tree.search(key); node != nil {
		return &node.Value, nil
	}
	var zero V
	tree.root = tree.insertRecursive(tree.root, Entry[K, V]{Key: key, Value: zero})
	return &tree.search(key).Value, nil
}

func (tree *AVLTree[K, V]) Clear() {
	tree.root = nil
	tree.size = 0
}

// Swap exchanges the contents of tree and other.
func (tree *AVLTree[K, V]) Swap(other *AVLTree[K, V]) {
	*tree, *other = *other, *tree
}

func (tree *AVLTree[K, V]) Clone() Dictionary[K, V] {
	return &AVLTree[K, V]{
		root:        tree.root.clone(),
		size:        tree.size,
		comparisons: tree.comparisons,
		rotations:   tree.rotations,
	}
}

// Iterator returns an in-order cursor over the tree.
func (tree *AVLTree[K, V]) Iterator() Iterator[K, V] {
	it := &avlIterator[K, V]{}
	it.pushLeft(tree.root)
	return it
}

func (tree *AVLTree[K, V]) All() iter.Seq2[K, V] {
	return seq(tree.Iterator)
}

func (tree *AVLTree[K, V]) ForEach(fn func(key K, value V)) {
	for it := tree.Iterator(); it.Next(); {
		fn(it.Key(), it.Value())
	}
}

func (tree *AVLTree[K, V]) Print(w io.Writer) {
	tree.ForEach(func(k K, v V) {
		fmt.Fprintf(w, "[%v, %v]\n", k, v)
	})
}

// Render draws the tree sideways, right subtree on top.
func (tree *AVLTree[K, V]) Render(w io.Writer) {
	renderTree(w, tree.root, treeShape[*avlNode[K, V]]{
		isLeaf: func(n *avlNode[K, V]) bool { return n == nil },
		left:   func(n *avlNode[K, V]) *avlNode[K, V] { return n.Left },
		right:  func(n *avlNode[K, V]) *avlNode[K, V] { return n.Right },
		label:  func(n *avlNode[K, V]) string { return fmt.Sprintf("[%v, %v]", n.Key, n.Value) },
	})
}

type avlIterator[K any, V any] struct {
	stack   []*avlNode[K, V]
	current *avlNode[K, V]
}

func (it *avlIterator[K, V]) pushLeft(node *avlNode[K, V]) {
	for ; node != nil; node = node.Left {
		it.stack = append(it.stack, node)
	}
}

func (it *avlIterator[K, V]) Next() bool {
	if len(it.stack) == 0 {
		it.current = nil
		return false
	}
	it.current = it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.pushLeft(it.current.Right)
	return true
}

func (it *avlIterator[K, V]) Key() K { return it.current.Key }

func (it *avlIterator[K, V]) Value() V { return it.current.Value }
