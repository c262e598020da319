package bst

// Insert stores val under key and returns the size of the tree. An existing
// key keeps its node and gets its value overwritten.
func (tree *Tree[K, V]) Insert(key K, val V) int {
	if tree.root == nil {
		tree.root = newNode(key, val)
		tree.size++
		return tree.size
	}

	n := tree.root
	for {
		switch c := tree.cmp(key, n.key); {
		case c < 0:
			if n.left == nil {
				n.left = newNode(key, val)
				tree.size++
				return tree.size
			}
			n = n.left
		case c > 0:
			if n.right == nil {
				n.right = newNode(key, val)
				tree.size++
				return tree.size
			}
			n = n.right
		default:
			n.val = val
			return tree.size
		}
	}
}
