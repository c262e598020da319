package bst

import (
	"fmt"

	"bst_map/pkg/mapping"
	"bst_map/pkg/util"
)

// Search returns the value stored under key. A missing key yields an error
// wrapping mapping.ErrNotFound. Comparison count and elapsed time of the call
// are kept for LastComparisons and LastElapsed.
func (tree *Tree[K, V]) Search(key K) (V, error) {
	var n *node[K, V]

	tree.lastComparisons = 0
	tree.lastElapsed = util.Measure(func() {
		n, tree.lastComparisons = tree.get(key)
	})

	if n == nil {
		var zero V
		return zero, fmt.Errorf("search %v: %w", key, mapping.ErrNotFound)
	}
	return n.val, nil
}

// Contains reports whether key is present without touching instrumentation.
func (tree *Tree[K, V]) Contains(key K) bool {
	n, _ := tree.get(key)
	return n != nil
}
