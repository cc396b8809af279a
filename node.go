package bst

func (n *Node[T]) Value() T {
	return n.value
}

// Left returns the left child, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

func (n *Node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// find the node with the smallest value under n
func (n *Node[T]) minimum() *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// find the node with the largest value under n, the in-order predecessor
// of n's parent when n is a left child
func (n *Node[T]) maximum() *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// height counts the nodes on the longest root-to-leaf path.
func (n *Node[T]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// count walks the subtree, independent of the tree's tracked size.
func (n *Node[T]) count() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.count() + n.right.count()
}
