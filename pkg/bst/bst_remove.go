package bst

// Remove deletes key and returns the value it held. ok is false when the key
// is absent, in which case the tree is left unchanged.
func (tree *Tree[K, V]) Remove(key K) (val V, ok bool) {
	parent, n := tree.locate(key)
	if n == nil {
		return val, false
	}

	val = n.val
	switch {
	case n.isLeaf():
		tree.replace(parent, n, nil)
	case !n.hasBothChildren():
		tree.replace(parent, n, n.onlyChild())
	default:
		// n stays in place and takes over the payload of its in-order
		// successor, which has no left child and is unlinked instead.
		succParent, succ := n, n.right
		for succ.left != nil {
			succParent, succ = succ, succ.left
		}
		tree.replace(succParent, succ, succ.right)
		n.key, n.val = succ.key, succ.val
	}

	tree.size--
	return val, true
}

// locate returns the node holding key and its parent. parent is nil when the
// node is the root; both are nil when the key is absent.
func (tree *Tree[K, V]) locate(key K) (parent, n *node[K, V]) {
	n = tree.root
	for n != nil {
		c := tree.cmp(key, n.key)
		if c == 0 {
			return parent, n
		}

		parent = n
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil, nil
}

// replace puts child where n hangs under parent.
func (tree *Tree[K, V]) replace(parent, n, child *node[K, V]) {
	switch {
	case parent == nil:
		tree.root = child
	case parent.left == n:
		parent.left = child
	default:
		parent.right = child
	}
}
