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
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

type AVLTestCase struct {
	Name          string
	InitialKeys   []string
	KeysToInsert  []string
	KeysToDelete  []string
	ExpectedOrder []string // In-order traversal expectation after operations
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []string{"apple", "banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialKeys:   []string{"apple"},
			KeysToInsert:  []string{"banana", "cherry"},
			ExpectedOrder: []string{"apple", "banana", "cherry"},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialKeys:   []string{"cherry", "banana", "apple"},
			KeysToDelete:  []string{"cherry"},
			ExpectedOrder: []string{"apple", "banana"},
		},
		{
			Name:          "Mixed Operations",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"elephant", "bird"},
			KeysToDelete:  []string{"cat"},
			ExpectedOrder: []string{"bird", "dog", "elephant"},
		},
		{
			Name:          "Delete Missing Key",
			InitialKeys:   []string{"dog", "cat"},
			KeysToDelete:  []string{"zebra"},
			ExpectedOrder: []string{"cat", "dog"},
		},
		{
			Name:          "Duplicate Insertion",
			InitialKeys:   []string{"dog", "cat"},
			KeysToInsert:  []string{"dog", "cat"},
			ExpectedOrder: []string{"cat", "dog"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := NewAVLTree[string, int]()
			for _, key := range tc.InitialKeys {
				tree.Insert(E(key, 0))
			}
			for _, key := range tc.KeysToInsert {
				tree.Insert(E(key, 0))
			}
			for _, key := range tc.KeysToDelete {
				tree.Remove(key)
			}
			if !verifyInOrderTraversal(t, tree.root, tc.ExpectedOrder) {
				t.Errorf("In-order traversal mismatch for test case '%s'", tc.Name)
			}
			if tree.Len() != len(tc.ExpectedOrder) {
				t.Errorf("Len() = %d; want %d", tree.Len(), len(tc.ExpectedOrder))
			}
			checkAVL(t, tree)
		})
	}
}

func verifyInOrderTraversal(t *testing.T, node *avlNode[string, int], expected []string) bool {
	var actual []string
	inOrderTraversal(node, &actual)
	if len(actual) != len(expected) {
		t.Logf("Length mismatch. Expected %d elements, got %d", len(expected), len(actual))
		return false
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Logf("Mismatch at index %d. Expected '%s', got '%s'", i, expected[i], actual[i])
			return false
		}
	}
	return true
}

func inOrderTraversal(node *avlNode[string, int], result *[]string) {
	if node == nil {
		return
	}
	inOrderTraversal(node.Left, result)
	*result = append(*result, node.Key)
	inOrderTraversal(node.Right, result)
}

// checkAVL walks the whole tree and fails on any ordering, height or
// balance violation.
func checkAVL[K string | int, V any](t *testing.T, tree *AVLTree[K, V]) {
	t.Helper()
	count := 0
	var walk func(n *avlNode[K, V], lo, hi *K) int
	walk = func(n *avlNode[K, V], lo, hi *K) int {
		if n == nil {
			return 0
		}
		count++
		if lo != nil && n.Key <= *lo {
			t.Fatalf("key %v is not greater than %v", n.Key, *lo)
		}
		if hi != nil && n.Key >= *hi {
			t.Fatalf("key %v is not less than %v", n.Key, *hi)
		}
		lh := walk(n.Left, lo, &n.Key)
		rh := walk(n.Right, &n.Key, hi)
		if d := rh - lh; d < -1 || d > 1 {
			t.Fatalf("node %v has balance factor %d", n.Key, d)
		}
		if want := max(lh, rh) + 1; n.Height != want {
			t.Fatalf("node %v has height %d, want %d", n.Key, n.Height, want)
		}
		return n.Height
	}
	walk(tree.root, nil, nil)
	if count != tree.Len() {
		t.Fatalf("tree holds %d nodes but Len() = %d", count, tree.Len())
	}
}

func TestAVLSingleRotation(t *testing.T) {
	tree := NewAVLTree[int, string]()
	for _, k := range []int{30, 20, 10} {
		tree.Insert(E(k, ""))
	}
	if tree.root.Key != 20 || tree.root.Left.Key != 10 || tree.root.Right.Key != 30 {
		t.Errorf("expected 20 at the root with children 10 and 30, got %v", tree.root.Key)
	}
	if tree.Height() != 2 {
		t.Errorf("Height() = %d; want 2", tree.Height())
	}
	if got := tree.Stats().Rotations; got != 1 {
		t.Errorf("Rotations = %d; want 1", got)
	}
}

func TestAVLDoubleRotation(t *testing.T) {
	tree := NewAVLTree[int, string]()
	for _, k := range []int{10, 30, 20} {
		tree.Insert(E(k, ""))
	}
	if tree.root.Key != 20 {
		t.Errorf("root = %v; want 20", tree.root.Key)
	}
	if got := tree.Stats().Rotations; got != 2 {
		t.Errorf("Rotations = %d; want 2", got)
	}
	checkAVL(t, tree)
}

func TestAVLRemoveRootWithTwoChildren(t *testing.T) {
	tree := NewAVLTree[int, string]()
	for _, k := range []int{20, 10, 30, 5, 15} {
		tree.Insert(E(k, ""))
	}
	tree.Remove(20)

	if tree.Contains(20) {
		t.Errorf("20 still present after Remove")
	}
	var keys []int
	tree.ForEach(func(k int, _ string) { keys = append(keys, k) })
	want := []int{5, 10, 15, 30}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v; want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v; want %v", keys, want)
		}
	}
	checkAVL(t, tree)
}

func TestAVLRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tree := NewAVLTree[int, int]()
	present := map[int]bool{}

	for i := 0; i < 2000; i++ {
		k := r.Intn(300)
		if r.Intn(3) == 0 {
			tree.Remove(k)
			delete(present, k)
		} else {
			tree.Insert(E(k, k*2))
			present[k] = true
		}
		if i%50 == 0 {
			checkAVL(t, tree)
		}
	}
	checkAVL(t, tree)

	for k := 0; k < 300; k++ {
		if tree.Contains(k) != present[k] {
			t.Fatalf("Contains(%d) = %v; want %v", k, tree.Contains(k), present[k])
		}
	}
}

func TestAVLIndexInsertsZeroValue(t *testing.T) {
	tree := NewAVLTree[string, int]()
	p, err := tree.Index("z")
	if err != nil {
		t.Fatalf("Index returned error: %v", err)
	}
	if *p != 0 {
		t.Errorf("new value = %d; want 0", *p)
	}
	*p = 7
	if v, _ := tree.At("z"); v != 7 {
		t.Errorf("At(z) = %d; want 7", v)
	}
	if tree.Len() != 1 {
		t.Errorf("Len() = %d; want 1", tree.Len())
	}
}

func TestAVLSwap(t *testing.T) {
	a := NewAVLTree[string, int]()
	b := NewAVLTree[string, int]()
	a.Insert(E("a", 1))
	b.Insert(E("b", 2))
	b.Insert(E("c", 3))

	a.Swap(b)
	if a.Len() != 2 || !a.Contains("b") || a.Contains("a") {
		t.Errorf("swap did not move b's entries into a")
	}
	if b.Len() != 1 || !b.Contains("a") {
		t.Errorf("swap did not move a's entries into b")
	}
}

func TestAVLRender(t *testing.T) {
	tree := NewAVLTree[int, string]()
	for _, k := range []int{2, 1, 3} {
		tree.Insert(E(k, "v"))
	}
	var buf bytes.Buffer
	tree.Render(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"┌───[3, v]",
		"[2, v]",
		"└───[1, v]",
	}
	if len(lines) != len(want) {
		t.Fatalf("Render output:\n%s", buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q; want %q", i, lines[i], want[i])
		}
	}
}
