package bst

import "slices"

func (t *BinarySearchTree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *BinarySearchTree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// Insert stores value and returns its new node. If the value is already
// present the tree is left untouched and a *DuplicateValueError is returned.
func (t *BinarySearchTree[T]) Insert(value T) (*Node[T], error) {
	if t == nil {
		return nil, ErrNilTree
	}
	if t.iterative {
		return t.iterativeInsert(value)
	}
	return t.recursiveInsert(&t.root, value)
}

func (t *BinarySearchTree[T]) recursiveInsert(curNode **Node[T], value T) (*Node[T], error) {
	curr := *curNode
	if curr == nil {
		return t.attach(curNode, value), nil
	}

	switch c := t.cmp(value, curr.value); {
	case c < 0:
		return t.recursiveInsert(&curr.left, value)
	case c > 0:
		return t.recursiveInsert(&curr.right, value)
	}
	return nil, &DuplicateValueError[T]{Value: value}
}

func (t *BinarySearchTree[T]) iterativeInsert(value T) (*Node[T], error) {
	next := &t.root
	for *next != nil {
		curr := *next
		switch c := t.cmp(value, curr.value); {
		case c < 0:
			next = &curr.left
		case c > 0:
			next = &curr.right
		default:
			return nil, &DuplicateValueError[T]{Value: value}
		}
	}
	return t.attach(next, value), nil
}

// attach links a new node into the empty slot ref
func (t *BinarySearchTree[T]) attach(ref **Node[T], value T) *Node[T] {
	n := &Node[T]{value: value}
	*ref = n
	t.size++
	return n
}

// Search returns the node holding value, or nil if there is none.
func (t *BinarySearchTree[T]) Search(value T) *Node[T] {
	if t == nil {
		return nil
	}
	if t.iterative {
		return t.iterativeSearch(value)
	}
	return t.recursiveSearch(t.root, value)
}

func (t *BinarySearchTree[T]) recursiveSearch(curr *Node[T], value T) *Node[T] {
	if curr == nil {
		return nil
	}
	switch c := t.cmp(value, curr.value); {
	case c < 0:
		return t.recursiveSearch(curr.left, value)
	case c > 0:
		return t.recursiveSearch(curr.right, value)
	}
	return curr
}

func (t *BinarySearchTree[T]) iterativeSearch(value T) *Node[T] {
	curr := t.root
	for curr != nil {
		switch c := t.cmp(value, curr.value); {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return curr
		}
	}
	return nil
}

func (t *BinarySearchTree[T]) Contains(value T) bool {
	return t.Search(value) != nil
}

// Remove deletes value and returns the number of nodes left in the tree.
// Removing an absent value is a no-op.
func (t *BinarySearchTree[T]) Remove(value T) int {
	if t == nil {
		return 0
	}
	var removed bool
	if t.iterative {
		removed = t.iterativeRemove(value)
	} else {
		t.root, removed = t.recursiveRemove(t.root, value)
	}
	if removed {
		t.size--
	}
	return t.size
}

// recursiveRemove deletes value from the subtree rooted at curr and returns
// the subtree that takes curr's place in its parent.
func (t *BinarySearchTree[T]) recursiveRemove(curr *Node[T], value T) (*Node[T], bool) {
	if curr == nil {
		return nil, false
	}

	var removed bool
	switch c := t.cmp(value, curr.value); {
	case c < 0:
		curr.left, removed = t.recursiveRemove(curr.left, value)
	case c > 0:
		curr.right, removed = t.recursiveRemove(curr.right, value)
	default:
		return t.detach(curr), true
	}
	return curr, removed
}

func (t *BinarySearchTree[T]) detach(n *Node[T]) *Node[T] {
	if n.isLeaf() {
		return nil
	}
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}

	// two children: take over the predecessor's value and drop its node,
	// which has no right child, from the left subtree
	pred := n.left.maximum()
	n.value = pred.value
	n.left, _ = t.recursiveRemove(n.left, pred.value)
	return n
}

func (t *BinarySearchTree[T]) iterativeRemove(value T) bool {
	next := &t.root
	for *next != nil {
		curr := *next
		switch c := t.cmp(value, curr.value); {
		case c < 0:
			next = &curr.left
		case c > 0:
			next = &curr.right
		default:
			replaceRef(next, detachIterative(curr))
			return true
		}
	}
	return false
}

func detachIterative[T any](n *Node[T]) *Node[T] {
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}

	next := &n.left
	for (*next).right != nil {
		next = &(*next).right
	}
	pred := *next
	n.value = pred.value
	replaceRef(next, pred.left)
	return n
}

func replaceRef[T any](oldNode **Node[T], newNode *Node[T]) {
	*oldNode = newNode
}

// Min returns the smallest value, ok is false for an empty tree.
func (t *BinarySearchTree[T]) Min() (value T, ok bool) {
	if t.Root() == nil {
		return value, false
	}
	return t.root.minimum().value, true
}

// Max returns the largest value, ok is false for an empty tree.
func (t *BinarySearchTree[T]) Max() (value T, ok bool) {
	if t.Root() == nil {
		return value, false
	}
	return t.root.maximum().value, true
}

// Height is the number of nodes on the longest path from the root, and so
// the recursion depth the recursive operations reach.
func (t *BinarySearchTree[T]) Height() int {
	return t.Root().height()
}

func (t *BinarySearchTree[T]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.size = 0
}

// Values returns all values in ascending order.
func (t *BinarySearchTree[T]) Values() []T {
	return slices.AppendSeq(make([]T, 0, t.Len()), InOrder(t.Root()))
}

func (t *BinarySearchTree[T]) Iterator() Iterator[T] {
	it := &iterator[T]{}
	it.pushLeft(t.Root())
	return it
}

func (it *iterator[T]) pushLeft(n *Node[T]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

func (it *iterator[T]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrNoMoreNodes
	}
	last := len(it.stack) - 1
	n := it.stack[last]
	it.stack = it.stack[:last]
	it.pushLeft(n.right)
	return n.value, nil
}
