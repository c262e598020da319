package bst

// node owns its children exclusively; there is no parent link, callers that
// need the parent track it while descending.
type node[K any, V any] struct {
	key   K
	val   V
	left  *node[K, V]
	right *node[K, V]
}

func newNode[K any, V any](key K, val V) *node[K, V] {
	return &node[K, V]{key: key, val: val}
}

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *node[K, V]) hasBothChildren() bool {
	return n.left != nil && n.right != nil
}

// onlyChild returns the single child of a node with at most one child.
func (n *node[K, V]) onlyChild() *node[K, V] {
	if n.left != nil {
		return n.left
	}
	return n.right
}

type depthNode[K any, V any] struct {
	n     *node[K, V]
	depth int
}
