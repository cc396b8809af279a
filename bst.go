// Package bst implements an unbalanced binary search tree over unique,
// totally ordered values and the classic traversals over its nodes.
//
// Insert, Search and Remove descend recursively by default, so they use goroutine
// stack proportional to the tree height. Inserting already sorted input builds a
// tree of height n. Use WithIterative for such input.
//
// PreOrder, InOrder, PostOrder and Values always recurse to the tree height,
// WithIterative or not. Iterator, DepthFirst and LevelOrder keep their work on
// the heap and are the walks to use on a degenerate tree.
//
// A nil *BinarySearchTree reads as an empty tree. Remove and Clear on it are
// no-ops and Insert returns ErrNilTree.
//
// A tree is not safe for concurrent mutation. Readers may share a tree as long
// as no writer runs at the same time.
package bst

import (
	"errors"
	"fmt"
)

const (
	OrderLevel Order = iota
	OrderDepthFirst
	OrderPre
	OrderIn
	OrderPost
)

var (
	ErrDuplicateValue = errors.New("value already exists in the tree")
	ErrNoMoreNodes    = errors.New("there are no more nodes in the tree")
	ErrUnknownOrder   = errors.New("unknown traversal order")
	ErrNilTree        = errors.New("insert into nil tree")
)

var orderNames = []string{"level", "dfs", "pre", "in", "post"}

type (
	// BinarySearchTree owns the root node and the node count.
	BinarySearchTree[T any] struct {
		root      *Node[T]
		size      int
		cmp       func(a, b T) int
		iterative bool
	}

	// Node holds one value and owns up to two children. Every value in the
	// left subtree is smaller and every value in the right subtree is larger.
	Node[T any] struct {
		value T
		left  *Node[T]
		right *Node[T]
	}

	Order int

	Option func(*config)

	config struct {
		iterative bool
	}

	// in-order iterator, the stack holds the path of nodes whose
	// values have not been returned yet
	iterator[T any] struct {
		stack []*Node[T]
	}
)

// DuplicateValueError is returned by Insert when the value is already stored.
type DuplicateValueError[T any] struct {
	Value T
}

func (e *DuplicateValueError[T]) Error() string {
	return fmt.Sprintf("value %v already exists in the tree", e.Value)
}

func (e *DuplicateValueError[T]) Is(target error) bool {
	return target == ErrDuplicateValue
}

// WithIterative makes Insert, Search and Remove walk the tree in a loop
// instead of recursing, so degenerate trees cannot exhaust the stack.
func WithIterative() Option {
	return func(c *config) {
		c.iterative = true
	}
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// ParseOrder maps a name as printed by Order.String back to an Order.
func ParseOrder(s string) (Order, error) {
	for i, name := range orderNames {
		if name == s {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}
