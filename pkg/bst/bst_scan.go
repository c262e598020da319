package bst

import (
	"fmt"
	"iter"
	"strings"

	"bst_map/pkg/stack"
)

// Scan walks the tree in ascending key order. The walk ends early when fn
// returns stop or a non-nil error; the error is returned to the caller.
//
// The walk is iterative, so degenerate trees built from sorted input do not
// grow the goroutine stack.
func (tree *Tree[K, V]) Scan(fn func(key K, val V) (stop bool, err error)) error {
	s := stack.New[*node[K, V]](0)
	curr := tree.root
	for curr != nil || !s.Empty() {
		for curr != nil {
			s.Push(curr)
			curr = curr.left
		}

		curr = s.Pop()
		stop, err := fn(curr.key, curr.val)
		if stop || err != nil {
			return err
		}
		curr = curr.right
	}
	return nil
}

// All returns an iterator over key/value pairs in ascending key order.
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		tree.Scan(func(key K, val V) (bool, error) {
			return !yield(key, val), nil
		})
	}
}

func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.size)
	for k := range tree.All() {
		keys = append(keys, k)
	}
	return keys
}

func (tree *Tree[K, V]) Values() []V {
	vals := make([]V, 0, tree.size)
	for _, v := range tree.All() {
		vals = append(vals, v)
	}
	return vals
}

// String lists the keys in ascending order separated by single spaces.
func (tree *Tree[K, V]) String() string {
	sb := strings.Builder{}
	for k := range tree.All() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, k)
	}
	return strings.TrimSpace(sb.String())
}
