package bst

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

type Tree[T any] interface {
	Insert(value T) (*Node[T], error)
	Search(value T) *Node[T]
	Remove(value T) int
	Len() int
	Root() *Node[T]
	Iterator() Iterator[T]
}

// Iterator walks the values of a tree in ascending order.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// Queue is the FIFO collaborator used by LevelOrderWith.
// Dequeue reports false when the queue is empty.
type Queue[E any] interface {
	Enqueue(v E) int
	Dequeue() (E, bool)
	Len() int
}

// Stack is the LIFO collaborator used by DepthFirstWith.
// Pop reports false when the stack is empty.
type Stack[E any] interface {
	Push(v E) int
	Pop() (E, bool)
	Len() int
}

// New returns an empty tree ordered by cmp.Compare. For floating point
// types NaN sorts before every other value and equals itself.
func New[T constraints.Ordered](opts ...Option) *BinarySearchTree[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc returns an empty tree ordered by compare, which must define a total
// order: negative if a < b, zero if a == b, positive if a > b.
func NewFunc[T any](compare func(a, b T) int, opts ...Option) *BinarySearchTree[T] {
	if compare == nil {
		panic("bst: nil compare func")
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &BinarySearchTree[T]{
		cmp:       compare,
		iterative: c.iterative,
	}
}

var _ Tree[int] = (*BinarySearchTree[int])(nil)
