package bst

import (
	"iter"

	"github.com/e11jah/bst/internal/queue"
	"github.com/e11jah/bst/internal/stack"
)

// Traverse returns the values under root in the given order.
// An unknown order yields nothing.
func Traverse[T any](root *Node[T], order Order) iter.Seq[T] {
	switch order {
	case OrderLevel:
		return LevelOrder(root)
	case OrderDepthFirst:
		return DepthFirst(root)
	case OrderPre:
		return PreOrder(root)
	case OrderIn:
		return InOrder(root)
	case OrderPost:
		return PostOrder(root)
	}
	return func(func(T) bool) {}
}

// LevelOrder yields the values breadth first: the root, then every node of
// depth 1 from left to right, and so on.
func LevelOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		levelOrder[T](root, queue.NewList[*Node[T]](), yield)
	}
}

// LevelOrderWith is LevelOrder using q as the work queue. Anything left in q,
// by an earlier walk that stopped early or by the caller, is dropped first.
func LevelOrderWith[T any](root *Node[T], q Queue[*Node[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		levelOrder(root, q, yield)
	}
}

func levelOrder[T any](root *Node[T], q Queue[*Node[T]], yield func(T) bool) {
	for _, ok := q.Dequeue(); ok; _, ok = q.Dequeue() {
	}
	if root == nil {
		return
	}
	q.Enqueue(root)
	for {
		n, ok := q.Dequeue()
		if !ok {
			return
		}
		if !yield(n.value) {
			return
		}
		if n.left != nil {
			q.Enqueue(n.left)
		}
		if n.right != nil {
			q.Enqueue(n.right)
		}
	}
}

// DepthFirst yields the values depth first without recursion. The order is
// the same as PreOrder.
func DepthFirst[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		depthFirst[T](root, stack.NewArray[*Node[T]](), yield)
	}
}

// DepthFirstWith is DepthFirst using s as the work stack. Anything left in s
// is dropped first.
func DepthFirstWith[T any](root *Node[T], s Stack[*Node[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		depthFirst(root, s, yield)
	}
}

func depthFirst[T any](root *Node[T], s Stack[*Node[T]], yield func(T) bool) {
	for _, ok := s.Pop(); ok; _, ok = s.Pop() {
	}
	if root == nil {
		return
	}
	s.Push(root)
	for {
		n, ok := s.Pop()
		if !ok {
			return
		}
		if !yield(n.value) {
			return
		}
		// right first, so left is popped first
		if n.right != nil {
			s.Push(n.right)
		}
		if n.left != nil {
			s.Push(n.left)
		}
	}
}

// PreOrder yields a node's value before the values of its left and right subtrees.
func PreOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		preOrderRec(root, yield)
	}
}

// InOrder yields the left subtree, the node, then the right subtree. For a
// tree built by this package the values come out strictly ascending.
func InOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		inOrderRec(root, yield)
	}
}

// PostOrder yields both subtrees before the node itself.
func PostOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		postOrderRec(root, yield)
	}
}

// The recursive walkers return false as soon as yield does, and the false
// is propagated upwards to stop the whole walk.

func preOrderRec[T any](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.value) &&
		preOrderRec(n.left, yield) &&
		preOrderRec(n.right, yield)
}

func inOrderRec[T any](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return inOrderRec(n.left, yield) &&
		yield(n.value) &&
		inOrderRec(n.right, yield)
}

func postOrderRec[T any](n *Node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return postOrderRec(n.left, yield) &&
		postOrderRec(n.right, yield) &&
		yield(n.value)
}
