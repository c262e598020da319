// Package bst implements an ordered map on top of an unbalanced binary search
// tree. Shape depends only on insertion order; no rebalancing is performed.
//
// A Tree is not safe for concurrent use.
package bst

import (
	"cmp"
	"time"

	"bst_map/pkg/mapping"
	"bst_map/pkg/stack"
	"bst_map/pkg/util"
)

var _ mapping.Map[int, string] = (*Tree[int, string])(nil)

type Tree[K any, V any] struct {
	root *node[K, V]
	size int
	cmp  mapping.Comparator[K]

	// filled by Search only
	lastComparisons int
	lastElapsed     time.Duration
}

// New creates an empty tree ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewWith[K, V](cmp.Compare[K])
}

// NewWith creates an empty tree ordered by c.
func NewWith[K any, V any](c mapping.Comparator[K]) *Tree[K, V] {
	if c == nil {
		panic("bst: nil comparator")
	}
	return &Tree[K, V]{cmp: c}
}

func (tree *Tree[K, V]) Size() int {
	return tree.size
}

func (tree *Tree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

// Clear drops every node of the tree. Instrumentation is left untouched.
func (tree *Tree[K, V]) Clear() {
	tree.root = nil
	tree.size = 0
}

// LastComparisons returns the number of key comparisons made by the most
// recent Search.
func (tree *Tree[K, V]) LastComparisons() int {
	return tree.lastComparisons
}

func (tree *Tree[K, V]) LastElapsed() time.Duration {
	return tree.lastElapsed
}

func (tree *Tree[K, V]) LastElapsedMillis() float64 {
	return util.Millis(tree.lastElapsed)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (tree *Tree[K, V]) Height() int {
	if tree.root == nil {
		return 0
	}

	height := 0
	s := stack.New[depthNode[K, V]](0)
	s.Push(depthNode[K, V]{tree.root, 1})
	for !s.Empty() {
		dn := s.Pop()
		height = max(height, dn.depth)
		if dn.n.left != nil {
			s.Push(depthNode[K, V]{dn.n.left, dn.depth + 1})
		}
		if dn.n.right != nil {
			s.Push(depthNode[K, V]{dn.n.right, dn.depth + 1})
		}
	}
	return height
}

func (tree *Tree[K, V]) Min() (key K, val V, ok bool) {
	if tree.root == nil {
		return key, val, false
	}
	n := tree.root
	for n.left != nil {
		n = n.left
	}
	return n.key, n.val, true
}

func (tree *Tree[K, V]) Max() (key K, val V, ok bool) {
	if tree.root == nil {
		return key, val, false
	}
	n := tree.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.val, true
}

// get descends from the root and returns the node holding key, or nil, with
// the number of comparator calls it took.
func (tree *Tree[K, V]) get(key K) (n *node[K, V], comparisons int) {
	n = tree.root
	for n != nil {
		comparisons++
		switch c := tree.cmp(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n, comparisons
		}
	}
	return nil, comparisons
}
